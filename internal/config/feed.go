package config

import "context"

// Feed hands tunables from the settings loop to the simulation loop.
// There is one writer (Post) and one reader (Drain); the reader picks up
// pending values at the start of a frame, so a frame never sees a half-applied update.
type Feed struct {
	ch chan Tunables
}

func NewFeed() *Feed {
	return &Feed{ch: make(chan Tunables, 8)}
}

// Post queues t, blocking while the queue is full until ctx is done.
func (f *Feed) Post(ctx context.Context, t Tunables) error {
	select {
	case f.ch <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain returns the most recently posted tunables, or cur when nothing is pending.
func (f *Feed) Drain(cur Tunables) Tunables {
	for {
		select {
		case t := <-f.ch:
			cur = t
		default:
			return cur
		}
	}
}
