package terminal

import (
	"context"
	"io"
	"time"
)

// Keys is a stream of key events with a push-back buffer.
// Pacing waits (Pause, Pressed) never lose keys typed while they run.
type Keys struct {
	events  <-chan Event
	pending []Event
	closed  bool
}

// NewKeys wraps a channel of events. Closing the channel ends input.
func NewKeys(events <-chan Event) *Keys {
	return &Keys{events: events}
}

// Next returns the next key, waiting indefinitely. It returns io.EOF once
// input is closed and nothing is buffered.
func (k *Keys) Next(ctx context.Context) (Event, error) {
	if ev, ok := k.pop(); ok {
		return ev, nil
	}
	if k.closed {
		return Event{}, io.EOF
	}
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case ev, ok := <-k.events:
		if !ok {
			k.closed = true
			return Event{}, io.EOF
		}
		return ev, nil
	}
}

// Pause waits for d. Keys typed meanwhile are kept for Next, except an
// interrupt, which ends the pause early and is discarded.
// It reports whether the pause was cut short by an interrupt.
func (k *Keys) Pause(ctx context.Context, d time.Duration) (bool, error) {
	if d <= 0 {
		return k.drain(), ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
			return false, nil
		case ev, ok := <-k.source():
			if !ok {
				k.closed = true
				continue
			}
			if ev.Key == KeyInterrupt {
				return true, nil
			}
			k.pending = append(k.pending, ev)
		}
	}
}

// Pressed consumes one key if one is available without waiting.
// Closed input counts as pressed so callers waiting on a key always move on.
func (k *Keys) Pressed() bool {
	if _, ok := k.pop(); ok {
		return true
	}
	if k.closed {
		return true
	}
	select {
	case _, ok := <-k.events:
		if !ok {
			k.closed = true
		}
		return true
	default:
		return false
	}
}

// drain moves every immediately available key into the buffer,
// dropping interrupts. It reports whether an interrupt was seen.
func (k *Keys) drain() bool {
	interrupted := false
	for !k.closed {
		select {
		case ev, ok := <-k.events:
			if !ok {
				k.closed = true
				return interrupted
			}
			if ev.Key == KeyInterrupt {
				interrupted = true
				continue
			}
			k.pending = append(k.pending, ev)
		default:
			return interrupted
		}
	}
	return interrupted
}

func (k *Keys) pop() (Event, bool) {
	if len(k.pending) == 0 {
		return Event{}, false
	}
	ev := k.pending[0]
	k.pending = k.pending[1:]
	return ev, true
}

// source returns nil once closed so a select on it blocks instead of spinning.
func (k *Keys) source() <-chan Event {
	if k.closed {
		return nil
	}
	return k.events
}
