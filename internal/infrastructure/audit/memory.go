package audit

import (
	"context"
	"sync"

	"github.com/lensmatch/backend/internal/domain"
)

// MemorySink is a thread-safe in-memory audit sink used in development and
// tests when no Postgres DSN is configured.
type MemorySink struct {
	mutex   sync.Mutex
	records []domain.ResolutionAudit
}

// NewMemorySink creates an empty in-memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Record appends one audit entry
func (s *MemorySink) Record(ctx context.Context, audit *domain.ResolutionAudit) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.records = append(s.records, *audit)
	return nil
}

// Records returns a copy of everything recorded so far
func (s *MemorySink) Records() []domain.ResolutionAudit {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]domain.ResolutionAudit, len(s.records))
	copy(out, s.records)
	return out
}

// Size returns the number of recorded entries
func (s *MemorySink) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.records)
}
