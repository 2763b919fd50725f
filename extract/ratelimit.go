package extract

import (
	"context"
	"sync"

	"github.com/jbetz/lessonforge"
	"golang.org/x/time/rate"
)

// Ensure DomainLimiter implements lessonforge.DomainLimiter.
var _ lessonforge.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out fetches per host so repeated extractions from the
// same educational site stay polite. Hosts are limited independently.
type DomainLimiter struct {
	rps float64

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter returns a limiter allowing rps fetches per second to any
// single host, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:   rps,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a fetch to the host is allowed or ctx is canceled.
func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	return l.limiterFor(host).Wait(ctx)
}

func (l *DomainLimiter) limiterFor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.hosts[host]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.hosts[host] = lim
	}
	return lim
}
