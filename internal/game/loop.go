package game

import (
	"context"
	"time"
)

// Run drives the session at TickHz until ctx is cancelled. Cancellation is
// immediate with respect to side effects: once Run returns no further tick
// touches the session. Front ends that own a display-refresh callback (the
// desktop client) call Tick themselves instead.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(TickHz))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// startLoop is the hub's default runner: one goroutine per session, stopped
// via the returned cancel func.
func startLoop(s *Session) func() {
	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)
	return cancel
}
