package driver

import (
	"context"
	"testing"
	"time"
)

type countingManager struct {
	ticks int
}

func (m *countingManager) Tick(ctx context.Context) error {
	m.ticks++
	return nil
}

func TestDriver_Tick(t *testing.T) {
	m1 := &countingManager{}
	m2 := &countingManager{}
	d := NewDriver([]Manager{m1, m2})

	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m1.ticks != 1 || m2.ticks != 1 {
		t.Errorf("ticks = %d/%d, expected 1/1", m1.ticks, m2.ticks)
	}
}

func TestDriver_StartStopsOnShutdown(t *testing.T) {
	shutdown := make(chan struct{})
	d := NewDriver(nil, WithTickLength(time.Millisecond), WithShutdown(shutdown))

	done := make(chan error, 1)
	go func() {
		done <- d.Start(context.Background())
	}()

	close(shutdown)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop on shutdown")
	}
}

func TestDriver_StartStopsOnContext(t *testing.T) {
	d := NewDriver(nil, WithTickLength(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop on context cancellation")
	}
}
