package service

import (
	"context"
)

// MonitoringService serves read-only dashboard frames.
type MonitoringService struct {
	session *Session
}

func NewMonitoringService(session *Session) *MonitoringService {
	return &MonitoringService{session: session}
}

// Snapshot returns the newest limit records plus alerts and counts.
func (s *MonitoringService) Snapshot(ctx context.Context, limit int) (DashboardSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return DashboardSnapshot{}, err
	}
	return s.session.View(limit), nil
}
