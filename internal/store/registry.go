package store

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// SessionGauge tracks how many stores are live.
type SessionGauge interface {
	SetOpenSessions(n int)
}

// Registry keeps one store per open session. Stores are created on login,
// looked up per request, and dropped on logout so no collection outlives its
// session.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store

	validator *validator.Validate
	logger    *zap.Logger
	fallbacks FallbackObserver
	gauge     SessionGauge
}

// NewRegistry constructs an empty registry. The gauge may be nil.
func NewRegistry(validate *validator.Validate, logger *zap.Logger, fallbacks FallbackObserver, gauge SessionGauge) *Registry {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		stores:    make(map[string]*Store),
		validator: validate,
		logger:    logger,
		fallbacks: fallbacks,
		gauge:     gauge,
	}
}

// Obtain returns the session's store, creating it on first use.
func (r *Registry) Obtain(sessionID string, identity models.Identity, gw dataGateway) *Store {
	r.mu.RLock()
	st, ok := r.stores[sessionID]
	r.mu.RUnlock()
	if ok {
		return st
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok = r.stores[sessionID]; ok {
		return st
	}
	st = New(identity, gw, r.validator, r.logger.With(zap.String("session_id", sessionID)), r.fallbacks)
	r.stores[sessionID] = st
	if r.gauge != nil {
		r.gauge.SetOpenSessions(len(r.stores))
	}
	return st
}

// Lookup returns the session's store without creating one.
func (r *Registry) Lookup(sessionID string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.stores[sessionID]
	return st, ok
}

// Drop removes the session's store. Idempotent.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
	if r.gauge != nil {
		r.gauge.SetOpenSessions(len(r.stores))
	}
}

// Len reports the number of live stores.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}
