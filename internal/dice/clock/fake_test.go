package clock

import (
	"testing"
	"time"
)

func TestFakeAdvanceFiresDueTimersInOrder(t *testing.T) {
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	var fired []string
	fake.AfterFunc(30*time.Millisecond, func() { fired = append(fired, "late") })
	fake.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "early") })
	fake.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "early-second") })

	fake.Advance(20 * time.Millisecond)
	if len(fired) != 2 || fired[0] != "early" || fired[1] != "early-second" {
		t.Fatalf("fired = %v, want [early early-second]", fired)
	}
	if fake.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", fake.Pending())
	}
	if got := fake.Now(); !got.Equal(start.Add(20 * time.Millisecond)) {
		t.Fatalf("now = %v, want %v", got, start.Add(20*time.Millisecond))
	}

	fake.Advance(10 * time.Millisecond)
	if len(fired) != 3 || fired[2] != "late" {
		t.Fatalf("fired = %v, want late last", fired)
	}
}

func TestFakeStopCancelsTimer(t *testing.T) {
	fake := NewFake(time.Time{})
	called := false
	timer := fake.AfterFunc(time.Second, func() { called = true })

	if !timer.Stop() {
		t.Fatal("expected first stop to report true")
	}
	if timer.Stop() {
		t.Fatal("expected second stop to report false")
	}
	fake.Advance(2 * time.Second)
	if called {
		t.Fatal("stopped timer fired")
	}
}

func TestFakeCallbacksMayScheduleWithinWindow(t *testing.T) {
	fake := NewFake(time.Time{})
	count := 0
	fake.AfterFunc(10*time.Millisecond, func() {
		count++
		fake.AfterFunc(10*time.Millisecond, func() { count++ })
	})

	fake.Advance(25 * time.Millisecond)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if fake.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", fake.Pending())
	}
}

func TestOrRealDefaultsNil(t *testing.T) {
	if OrReal(nil) == nil {
		t.Fatal("expected real clock")
	}
	fake := NewFake(time.Time{})
	if OrReal(fake) != Clock(fake) {
		t.Fatal("expected provided clock to be kept")
	}
}
