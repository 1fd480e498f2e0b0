package health

import (
	"context"
	"time"

	"github.com/stackpad-dev/stackpad/core/stack"
)

// Poller runs the fixed-interval polling loop. Exactly one poll is in
// flight at a time: the next interval starts only after the previous
// cycle's callback has returned. The interval deliberately does not
// back off on failure; this targets a handful of local services.
type Poller struct {
	client   *Client
	interval time.Duration
}

func NewPoller(client *Client, interval time.Duration) *Poller {
	return &Poller{client: client, interval: interval}
}

// Run polls immediately, then on every interval, invoking fn with each
// report. It returns when ctx is cancelled; the result of a poll that
// completes after cancellation is discarded, and no further poll fires.
func (p *Poller) Run(ctx context.Context, fn func(stack.Report)) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		report := p.client.Fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		fn(report)
		timer.Reset(p.interval)
	}
}
