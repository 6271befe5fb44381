package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// healthPingTimeout bounds the database ping of a health check.
const healthPingTimeout = 2 * time.Second

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// Check pings the database. OK mirrors DB since the database is the only
// dependency.
func (s *healthService) Check(ctx context.Context) models.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return models.HealthResponse{OK: false, DB: false}
	}

	return models.HealthResponse{OK: true, DB: true}
}
