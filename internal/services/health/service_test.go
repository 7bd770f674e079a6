package health

import "testing"

type fixedCount int

func (f fixedCount) Len() int { return int(f) }

func TestStatusReportsServiceCount(t *testing.T) {
	got := NewService(fixedCount(4)).Status()
	if got["ok"] != true || got["services"] != 4 {
		t.Fatalf("unexpected status: %v", got)
	}
}

func TestStatusWithoutCatalog(t *testing.T) {
	var s *Service
	if got := s.Status(); got["services"] != 0 {
		t.Fatalf("expected 0 services, got %v", got["services"])
	}
}
