package terminal

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func scripted(evs ...Event) *Keys {
	ch := make(chan Event, len(evs))
	for _, ev := range evs {
		ch <- ev
	}
	close(ch)
	return NewKeys(ch)
}

func TestKeysNextThenEOF(t *testing.T) {
	ctx := context.Background()
	k := scripted(Rune('a'), Event{Key: KeyEnter})
	for _, want := range []Event{Rune('a'), {Key: KeyEnter}} {
		got, err := k.Next(ctx)
		if err != nil || got != want {
			t.Fatalf("Next = %v, %v; want %v", got, err, want)
		}
	}
	if _, err := k.Next(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestKeysNextHonoursContext(t *testing.T) {
	k := NewKeys(make(chan Event))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := k.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPauseKeepsKeysAndSwallowsInterrupt(t *testing.T) {
	ctx := context.Background()
	ch := make(chan Event, 4)
	ch <- Rune('x')
	ch <- Event{Key: KeyInterrupt}
	ch <- Rune('y')
	k := NewKeys(ch)

	start := time.Now()
	interrupted, err := k.Pause(ctx, time.Minute)
	if err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if !interrupted {
		t.Fatal("expected the interrupt to end the pause")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("pause was not cut short")
	}

	got, _ := k.Next(ctx)
	if got != Rune('x') {
		t.Errorf("buffered key = %v, want x", got)
	}
	got, _ = k.Next(ctx)
	if got != Rune('y') {
		t.Errorf("next key = %v, want y", got)
	}
}

func TestPauseElapses(t *testing.T) {
	k := NewKeys(make(chan Event))
	interrupted, err := k.Pause(context.Background(), 10*time.Millisecond)
	if err != nil || interrupted {
		t.Fatalf("Pause = %v, %v", interrupted, err)
	}
}

func TestPauseZeroDrains(t *testing.T) {
	k := scripted(Rune('a'), Event{Key: KeyInterrupt})
	interrupted, err := k.Pause(context.Background(), 0)
	if err != nil || !interrupted {
		t.Fatalf("Pause(0) = %v, %v; want interrupted", interrupted, err)
	}
	if got, _ := k.Next(context.Background()); got != Rune('a') {
		t.Errorf("key lost: got %v", got)
	}
}

func TestPressed(t *testing.T) {
	ch := make(chan Event, 1)
	k := NewKeys(ch)
	if k.Pressed() {
		t.Fatal("Pressed with no input")
	}
	ch <- Rune('q')
	if !k.Pressed() {
		t.Fatal("Pressed missed a key")
	}
	if k.Pressed() {
		t.Fatal("Pressed did not consume the key")
	}
	close(ch)
	if !k.Pressed() {
		t.Fatal("closed input should count as pressed")
	}
}
