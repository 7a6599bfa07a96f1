// Package logging provides structured logging channels for PageSmith
// operations, one slog logger per logical subsystem.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	ChannelAuth    Channel = "auth"    // Authentication and authorization
	ChannelContent Channel = "content" // Content list queries and project persistence
	ChannelRender  Channel = "render"  // HTML synthesis and hydration passes
	ChannelEditor  Channel = "editor"  // Editor websocket sessions
	ChannelCache   Channel = "cache"   // Cache operations and management

	ChannelDatabase Channel = "database" // Database operations and queries
	ChannelEmail    Channel = "email"    // Outbound email delivery
)

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool                   `json:"outputToFile"`
	OutputToConsole bool                   `json:"outputToConsole"`
	LogDirectory    string                 `json:"logDirectory"`
	JSONFormat      bool                   `json:"jsonFormat"`
	DefaultLevel    slog.Level             `json:"defaultLevel"`
	ChannelLevels   map[Channel]slog.Level `json:"channelLevels"`
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		DefaultLevel:    slog.LevelInfo,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
	mu       sync.RWMutex
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	channels := []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelAuth, ChannelContent, ChannelRender, ChannelEditor, ChannelCache,
		ChannelDatabase, ChannelEmail,
	}

	for _, channel := range channels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	var writers []io.Writer

	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}

	if cl.config.OutputToFile {
		logPath := filepath.Join(cl.config.LogDirectory, string(channel)+".log")
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}
		writers = append(writers, file)
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level := cl.config.DefaultLevel
	if channelLevel, exists := cl.config.ChannelLevels[channel]; exists {
		level = channelLevel
	}

	opts := &slog.HandlerOptions{Level: level}
	output := io.MultiWriter(writers...)

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler).With("channel", string(channel)), nil
}

// Channel returns the logger for an arbitrary channel, falling back to system
func (cl *ChanneledLogger) Channel(channel Channel) *slog.Logger {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	if logger, exists := cl.channels[channel]; exists {
		return logger
	}
	return cl.channels[ChannelSystem]
}

// SetChannelLevel overrides the level for one channel at runtime
func (cl *ChanneledLogger) SetChannelLevel(channel Channel, level slog.Level) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.config.ChannelLevels[channel] = level
	channelLogger, err := cl.createChannelLogger(channel)
	if err != nil {
		return err
	}
	cl.channels[channel] = channelLogger
	return nil
}

// Convenience accessors for the channels used throughout the codebase.

func (cl *ChanneledLogger) System() *slog.Logger   { return cl.Channel(ChannelSystem) }
func (cl *ChanneledLogger) Startup() *slog.Logger  { return cl.Channel(ChannelStartup) }
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.Channel(ChannelShutdown) }
func (cl *ChanneledLogger) Auth() *slog.Logger     { return cl.Channel(ChannelAuth) }
func (cl *ChanneledLogger) Content() *slog.Logger  { return cl.Channel(ChannelContent) }
func (cl *ChanneledLogger) Render() *slog.Logger   { return cl.Channel(ChannelRender) }
func (cl *ChanneledLogger) Editor() *slog.Logger   { return cl.Channel(ChannelEditor) }
func (cl *ChanneledLogger) Cache() *slog.Logger    { return cl.Channel(ChannelCache) }
func (cl *ChanneledLogger) Database() *slog.Logger { return cl.Channel(ChannelDatabase) }
func (cl *ChanneledLogger) Email() *slog.Logger    { return cl.Channel(ChannelEmail) }
