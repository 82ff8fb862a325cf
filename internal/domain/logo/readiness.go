package logo

import "sync"

// ReadinessStatus is the load state of the shape catalog.
type ReadinessStatus int

const (
	NotLoaded ReadinessStatus = iota
	Loaded
	Failed
)

func (s ReadinessStatus) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// CatalogProvider yields the loaded catalog or explains why none is available.
type CatalogProvider interface {
	Catalog() (*Catalog, error)
}

// Readiness is a one-shot state machine: NotLoaded moves to Loaded or Failed
// exactly once. A new load attempt needs a new Readiness.
type Readiness struct {
	mu      sync.RWMutex
	status  ReadinessStatus
	catalog *Catalog
	reason  string
}

// NewReadiness returns a Readiness in the NotLoaded state.
func NewReadiness() *Readiness {
	return &Readiness{}
}

// MarkLoaded records a successful load.
func (r *Readiness) MarkLoaded(c *Catalog) error {
	if c == nil {
		return NewConfigurationError("loaded catalog is nil", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != NotLoaded {
		return newStateError("catalog readiness already settled", map[string]interface{}{"status": r.status.String()})
	}
	r.status = Loaded
	r.catalog = c
	return nil
}

// MarkFailed records a failed load with a human-readable reason.
func (r *Readiness) MarkFailed(reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != NotLoaded {
		return newStateError("catalog readiness already settled", map[string]interface{}{"status": r.status.String()})
	}
	r.status = Failed
	r.reason = reason
	return nil
}

// Status returns the current state.
func (r *Readiness) Status() ReadinessStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Reason returns the failure reason, empty unless Failed.
func (r *Readiness) Reason() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reason
}

// Catalog implements CatalogProvider.
func (r *Readiness) Catalog() (*Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch r.status {
	case Loaded:
		return r.catalog, nil
	case Failed:
		return nil, NewAssetLoadError(r.reason, nil)
	default:
		return nil, newDomainError(ErrCodeNotReady, "shape catalog is not loaded", nil, nil)
	}
}
