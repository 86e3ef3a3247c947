package health

import (
	"context"
	"time"

	"upload-gateway/core/metrics"
	"upload-gateway/core/storage"

	"go.uber.org/zap"
)

// Service probes the storage backend.
type Service struct {
	session  *storage.Session
	logger   *zap.Logger
	observer metrics.Observer
}

// NewService creates a new health service.
func NewService(session *storage.Session, logger *zap.Logger, observer metrics.Observer) *Service {
	if observer == nil {
		observer = metrics.Nop()
	}
	return &Service{
		session:  session,
		logger:   logger,
		observer: observer,
	}
}

// Check issues a reachability probe against the configured bucket. Results
// are never cached; every call hits the backend.
func (s *Service) Check(ctx context.Context) error {
	start := time.Now()
	err := s.session.Probe(ctx)
	s.observer.RecordProbe(time.Since(start), err)
	return err
}
