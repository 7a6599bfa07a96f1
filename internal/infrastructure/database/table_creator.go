// Package database provides content store instantiation
package database

import (
	"database/sql"
	"fmt"

	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
)

// TableCreator handles creation of the content store schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all queries needed to build the tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

// SeedInitialContent adds the default records a fresh install needs.
func (tc *TableCreator) SeedInitialContent(db *sql.DB) error {
	// Idempotently create the default "home" project.
	var projectID string
	err := db.QueryRow("SELECT id FROM projects WHERE slug = 'home'").Scan(&projectID)
	if err == sql.ErrNoRows {
		projectID = security.GenerateULID()
		emptyProject := `{"pages":[{"frames":[]}],"styles":[]}`
		_, err = db.Exec(`INSERT INTO projects (id, slug, title, data) VALUES (?, ?, ?, ?)`,
			projectID, "home", "Home", emptyProject)
		if err != nil {
			return fmt.Errorf("failed to insert default project: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to check for default project: %w", err)
	}

	return nil
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS pages (id TEXT PRIMARY KEY, title TEXT NOT NULL, slug TEXT NOT NULL UNIQUE, meta_title TEXT, meta_description TEXT, meta_image TEXT, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS links (id TEXT PRIMARY KEY, title TEXT NOT NULL, target TEXT NOT NULL, banner TEXT, descriptions TEXT, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS page_tags (id TEXT PRIMARY KEY, page_id TEXT NOT NULL REFERENCES pages(id), tag TEXT NOT NULL, UNIQUE(page_id, tag))`,
	`CREATE TABLE IF NOT EXISTS link_tags (id TEXT PRIMARY KEY, link_id TEXT NOT NULL REFERENCES links(id), tag TEXT NOT NULL, UNIQUE(link_id, tag))`,
	`CREATE TABLE IF NOT EXISTS page_attributes (id TEXT PRIMARY KEY, page_id TEXT NOT NULL REFERENCES pages(id), key TEXT NOT NULL, value TEXT NOT NULL, UNIQUE(page_id, key))`,
	`CREATE TABLE IF NOT EXISTS link_attributes (id TEXT PRIMARY KEY, link_id TEXT NOT NULL REFERENCES links(id), key TEXT NOT NULL, value TEXT NOT NULL, UNIQUE(link_id, key))`,
	`CREATE TABLE IF NOT EXISTS projects (id TEXT PRIMARY KEY, slug TEXT NOT NULL UNIQUE, title TEXT NOT NULL, data TEXT NOT NULL, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, changed_at TIMESTAMP)`,
	`CREATE TABLE IF NOT EXISTS form_submissions (id TEXT PRIMARY KEY, form_id TEXT NOT NULL, fields TEXT NOT NULL, created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_pages_slug ON pages(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_pages_created_at ON pages(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_links_created_at ON links(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_page_tags_page_id ON page_tags(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_page_tags_tag ON page_tags(tag)`,
	`CREATE INDEX IF NOT EXISTS idx_link_tags_link_id ON link_tags(link_id)`,
	`CREATE INDEX IF NOT EXISTS idx_link_tags_tag ON link_tags(tag)`,
	`CREATE INDEX IF NOT EXISTS idx_page_attributes_page_id ON page_attributes(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_link_attributes_link_id ON link_attributes(link_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_slug ON projects(slug)`,
	`CREATE INDEX IF NOT EXISTS idx_form_submissions_form_id ON form_submissions(form_id)`,
}
