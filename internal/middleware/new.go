package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"care-coordination/config"
	"care-coordination/pkg/log"
)

// Middleware bundles the gin middlewares shared by all domains.
type Middleware struct {
	l        log.Logger
	apiKey   string
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set from config.
func New(l log.Logger, cfg *config.Config) Middleware {
	perMin := cfg.HTTPServer.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l:      l,
		apiKey: cfg.Auth.APIKey,
		// One limiter per client, dropped after idle TTL.
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}
