package opensearch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/itemdata/pkg/logger"
)

// Connector builds a new handle from the configuration. New is the default.
type Connector func(ctx context.Context, cfg Config) (*Client, error)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConnector replaces the function used to build handles.
func WithConnector(fn Connector) ManagerOption {
	return func(m *Manager) {
		if fn != nil {
			m.connect = fn
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager owns at most one live Client at a time.
//
// Acquire lazily connects and hands the same Client to every caller until
// Release closes it. Both methods are serialized, so concurrent callers never
// build separate handles: whoever loses the race gets the winner's Client.
type Manager struct {
	cfg     Config
	connect Connector
	logger  *slog.Logger

	mu     sync.Mutex
	client *Client
}

// NewManager creates a Manager for the given configuration. No connection is
// made until the first Acquire.
func NewManager(cfg Config, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:     cfg,
		connect: New,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Acquire returns the current handle, connecting first if there is none.
// A failed connection leaves the manager without a handle.
func (m *Manager) Acquire(ctx context.Context) (*Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}

	client, err := m.connect(ctx, m.cfg)
	if err != nil {
		m.logger.ErrorContext(ctx, "opensearch connect failed",
			slog.Any("addresses", m.cfg.Addresses),
			logger.Error(err),
		)
		return nil, err
	}

	m.client = client
	m.logger.InfoContext(ctx, "opensearch connected", slog.Any("addresses", m.cfg.Addresses))
	return client, nil
}

// Release closes the current handle and forgets it, so the next Acquire
// builds a fresh one. It returns ErrNotConnected when nothing is held.
func (m *Manager) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return ErrNotConnected
	}

	err := m.client.Close()
	m.client = nil
	m.logger.Info("opensearch connection released")
	return err
}

// Connected reports whether a handle is currently held.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client != nil
}
