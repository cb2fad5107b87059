package cache

import (
	"fmt"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SubmissionGuardFactory creates submission guards based on configuration
type SubmissionGuardFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SubmissionGuardFactoryOption is a functional option for configuring the factory
type SubmissionGuardFactoryOption func(*SubmissionGuardFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SubmissionGuardFactoryOption {
	return func(f *SubmissionGuardFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls the fallback to an in-memory guard when
// Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) SubmissionGuardFactoryOption {
	return func(f *SubmissionGuardFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSubmissionGuardFactory creates a new factory
func NewSubmissionGuardFactory(cfg config.RedisConfig, opts ...SubmissionGuardFactoryOption) *SubmissionGuardFactory {
	f := &SubmissionGuardFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateGuard creates a submission guard based on the Redis configuration.
// When Redis is disabled it returns the in-memory guard directly; when Redis
// is enabled but unreachable it falls back to in-memory unless the fallback
// has been disabled.
func (f *SubmissionGuardFactory) CreateGuard() (shared.SubmissionGuard, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("using in-memory submission guard")
		return NewInMemorySubmissionGuard(), nil
	}

	guard, err := NewRedisSubmissionGuard(&f.redisConfig)
	if err == nil {
		f.logger.Info("using Redis submission guard")
		return guard, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for submission guard but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory submission guard. "+
		"Duplicate submissions may slip through across instances.",
		zap.Error(err),
	)
	return NewInMemorySubmissionGuard(), nil
}
