package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/internal/domain/entities/widgets"
	"github.com/pagesmith/pagesmith-go/internal/domain/repositories"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/caching"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/presentation/hydration"
	"github.com/pagesmith/pagesmith-go/internal/presentation/templates"
)

// Editor model-change event types.
const (
	EventComponentAdd    = "component:add"
	EventComponentUpdate = "component:update"
	EventComponentRemove = "component:remove"
)

// EditorEvent is one model-change message from an editor client.
type EditorEvent struct {
	Type        string          `json:"type"`
	ComponentID string          `json:"componentId,omitempty"`
	ParentID    string          `json:"parentId,omitempty"`
	Index       int             `json:"index,omitempty"`
	Node        json.RawMessage `json:"node,omitempty"`
}

// EditorReply is the server's answer to one event. For add/update of a
// widget component it carries the freshly rendered fragment; for remove it
// confirms the unmount.
type EditorReply struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// EditorService runs editor websocket sessions. Edits mutate the cached
// project in place; widget responses go through the same config computation
// and renderer the hydration pass uses.
type EditorService struct {
	projects *ProjectService
	registry *hydration.Registry
	querier  repositories.ContentQuerier
	cache    *caching.Manager
	logger   *logging.ChanneledLogger
}

// NewEditorService creates an editor service.
func NewEditorService(projects *ProjectService, registry *hydration.Registry, querier repositories.ContentQuerier, cache *caching.Manager, logger *logging.ChanneledLogger) *EditorService {
	return &EditorService{projects: projects, registry: registry, querier: querier, cache: cache, logger: logger}
}

// HandleSession serves one editor connection until the client disconnects.
// Each event is answered with exactly one reply; a bad event produces an
// error reply, never a dropped connection.
func (s *EditorService) HandleSession(ctx context.Context, conn *websocket.Conn, slug string) error {
	defer conn.Close()

	project, err := s.projects.GetProject(ctx, slug)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	log := s.logger.Editor()
	log.Info("editor session opened", "slug", slug)
	defer log.Info("editor session closed", "slug", slug)

	for {
		var event EditorEvent
		if err := conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("editor connection lost", "slug", slug, "error", err)
			}
			return nil
		}

		reply := s.ApplyEvent(ctx, slug, project, event)
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("editor reply failed", "slug", slug, "error", err)
			return nil
		}
	}
}

// ApplyEvent mutates the project per the event and builds the reply. It is
// exported separately from the connection loop so it can be driven without a
// socket.
func (s *EditorService) ApplyEvent(ctx context.Context, slug string, project *builder.ProjectData, event EditorEvent) EditorReply {
	switch event.Type {
	case EventComponentAdd:
		return s.applyAdd(ctx, slug, project, event)
	case EventComponentUpdate:
		return s.applyUpdate(ctx, slug, project, event)
	case EventComponentRemove:
		return s.applyRemove(slug, project, event)
	}
	return EditorReply{Type: "error", Error: fmt.Sprintf("unknown event type %q", event.Type)}
}

func (s *EditorService) applyAdd(ctx context.Context, slug string, project *builder.ProjectData, event EditorEvent) EditorReply {
	node, err := decodeNode(event.Node)
	if err != nil {
		return EditorReply{Type: "error", Error: err.Error()}
	}
	if !builder.InsertComponent(project, event.ParentID, event.Index, node) {
		return EditorReply{Type: "error", Error: fmt.Sprintf("parent %q not found", event.ParentID)}
	}
	s.cache.InvalidateHTML(slug)
	return s.widgetReply(ctx, slug, project, node)
}

func (s *EditorService) applyUpdate(ctx context.Context, slug string, project *builder.ProjectData, event EditorEvent) EditorReply {
	node, err := decodeNode(event.Node)
	if err != nil {
		return EditorReply{Type: "error", Error: err.Error()}
	}
	if !builder.ReplaceComponent(project, node) {
		return EditorReply{Type: "error", Error: fmt.Sprintf("component %q not found", node.ID())}
	}
	s.cache.InvalidateHTML(slug)
	return s.widgetReply(ctx, slug, project, node)
}

func (s *EditorService) applyRemove(slug string, project *builder.ProjectData, event EditorEvent) EditorReply {
	if !builder.RemoveComponent(project, event.ComponentID) {
		return EditorReply{Type: "error", Error: fmt.Sprintf("component %q not found", event.ComponentID)}
	}
	s.registry.Remove(event.ComponentID)
	s.cache.InvalidateHTML(slug)
	return EditorReply{Type: "removed", ID: event.ComponentID}
}

// widgetReply re-mounts the touched component when it is a widget. Non-widget
// components just acknowledge; the editor re-synthesizes those client-side.
func (s *EditorService) widgetReply(ctx context.Context, slug string, project *builder.ProjectData, node *builder.ComponentNode) EditorReply {
	id := node.Effective().ID()
	if widgets.KindOf(node) == widgets.KindUnknown {
		return EditorReply{Type: "updated", ID: id}
	}

	cfg, err := widgets.ComputeConfig(node)
	if err != nil {
		s.logger.Editor().Error("widget config rejected", "id", id, "error", err)
		return EditorReply{Type: "error", ID: id, Error: err.Error()}
	}

	inst := hydration.NewInstance(id, node, cfg)
	renderer := hydration.NewRenderer(templates.NewSynthesizer(project), s.querier, s.logger.Editor())
	html, err := renderer.Render(ctx, inst)
	if err != nil {
		s.logger.Editor().Error("widget render failed", "id", id, "error", err)
		return EditorReply{Type: "error", ID: id, Error: err.Error()}
	}

	s.registry.Register(inst)
	return EditorReply{Type: "fragment", ID: id, HTML: html}
}

func decodeNode(raw json.RawMessage) (*builder.ComponentNode, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("event carries no node")
	}
	var node builder.ComponentNode
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	return node.Normalize(), nil
}
