// Package throttle rate-limits abusable endpoints.
package throttle

import (
	"sync"

	"github.com/Laisky/errors/v2"
	"golang.org/x/time/rate"
)

// Cfg configuration for Throttle
type Cfg struct {
	// TotalNPerSec, TotalBurst the cap shared by all keys
	TotalNPerSec, TotalBurst int
	// EachKeyNPerSec, EachKeyBurst the cap per individual key
	EachKeyNPerSec, EachKeyBurst int
}

// Throttle a two-level limiter: every key has its own budget, and all
// keys together share a total budget. Used to keep one caller from
// hammering login while still bounding the endpoint as a whole.
type Throttle struct {
	mu     sync.Mutex
	cfg    *Cfg
	total  *rate.Limiter
	perKey map[string]*rate.Limiter
}

// New create a new throttle
func New(cfg *Cfg) (*Throttle, error) {
	if cfg.TotalNPerSec <= 0 || cfg.EachKeyNPerSec <= 0 {
		return nil, errors.New("NPerSec must be bigger than 0")
	}
	if cfg.TotalBurst < cfg.TotalNPerSec || cfg.EachKeyBurst < cfg.EachKeyNPerSec {
		return nil, errors.New("burst must be bigger than NPerSec")
	}

	return &Throttle{
		cfg:    cfg,
		total:  rate.NewLimiter(rate.Limit(cfg.TotalNPerSec), cfg.TotalBurst),
		perKey: map[string]*rate.Limiter{},
	}, nil
}

// Allow whether key may proceed right now
func (t *Throttle) Allow(key string) bool {
	t.mu.Lock()
	limiter, ok := t.perKey[key]
	if !ok {
		limiter = rate.NewLimiter(
			rate.Limit(t.cfg.EachKeyNPerSec), t.cfg.EachKeyBurst)
		t.perKey[key] = limiter
	}
	t.mu.Unlock()

	return limiter.Allow() && t.total.Allow()
}
