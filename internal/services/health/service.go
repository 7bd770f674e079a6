package health

// Counter reports how many services are loaded.
type Counter interface {
	Len() int
}

// Service encapsulates health-related checks.
type Service struct {
	Catalog Counter
}

// NewService constructs a new health service.
func NewService(cat Counter) *Service {
	return &Service{Catalog: cat}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	n := 0
	if s != nil && s.Catalog != nil {
		n = s.Catalog.Len()
	}
	return map[string]any{"ok": true, "services": n}
}
