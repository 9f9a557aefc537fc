package middleware

import (
	"chief-of-staff-api/config"
	"chief-of-staff-api/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	cfg     config.RateLimitConfig
}

// New creates the middleware bundle.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.PerMinute, cfg.Burst),
		cfg:     cfg,
	}
}
