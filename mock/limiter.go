package mock

import (
	"context"

	"github.com/jbetz/lessonforge"
)

var _ lessonforge.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of lessonforge.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
