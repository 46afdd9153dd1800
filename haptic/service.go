package haptic

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/logger"
)

const startupChirp = 80 * time.Millisecond

// Service wraps Motor as a service.Service
// A missing audio backend leaves the motor silent rather than failing startup
type Service struct {
	motor   *Motor
	enabled bool
	log     *zap.Logger
}

// NewService wraps motor; enabled=false skips opening the speaker
func NewService(motor *Motor, enabled bool, lg *zap.Logger) *Service {
	return &Service{motor: motor, enabled: enabled, log: logger.OrNop(lg)}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "haptic"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *Service) Init() error {
	if !s.enabled {
		s.log.Info("haptic audio disabled by config")
		return nil
	}
	if err := s.motor.Initialize(); err != nil {
		s.log.Warn("haptic audio unavailable, rumble will be silent", zap.Error(err))
		return nil
	}
	if err := s.motor.Chirp(startupChirp); err != nil {
		s.log.Debug("startup chirp failed", zap.Error(err))
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.motor.Cleanup()
	return nil
}

// Motor returns the wrapped motor
func (s *Service) Motor() *Motor {
	return s.motor
}
