package app

import "testing"

func demoOptions() Options {
	return Options{NearRSSI: -45, MagAlert: 90, MaxRange: 30, Mute: true}
}

func TestSessionStartStopTransitions(t *testing.T) {
	s := NewSession(true, demoOptions())

	if s.State() != StateIdle {
		t.Fatalf("fresh session state = %v, want IDLE", s.State())
	}

	s.Start(nil)
	if s.State() != StateActive {
		t.Fatalf("state after Start = %v, want ACTIVE", s.State())
	}
	if !s.Active() {
		t.Error("Active() false after Start")
	}

	s.Stop()
	if s.State() != StateIdle {
		t.Fatalf("state after Stop = %v, want IDLE", s.State())
	}
}

func TestSessionStartIdempotent(t *testing.T) {
	s := NewSession(true, demoOptions())
	defer s.Stop()

	s.Start(nil)
	first := s.mock
	s.Start(nil) // no-op while active
	if s.mock != first {
		t.Error("second Start replaced the running sensor feed")
	}
	if s.State() != StateActive {
		t.Errorf("state = %v after double Start", s.State())
	}
}

func TestSessionStopWhenIdleIsSafe(t *testing.T) {
	s := NewSession(true, demoOptions())

	// Never started: Stop must be a harmless no-op.
	s.Stop()
	s.Stop()
	if s.State() != StateIdle {
		t.Fatalf("state = %v, want IDLE", s.State())
	}

	// Started then stopped twice.
	s.Start(nil)
	s.Stop()
	s.Stop()
	if s.State() != StateIdle {
		t.Fatalf("state = %v after double Stop, want IDLE", s.State())
	}
	if s.mock != nil {
		t.Error("sensor handle not released on Stop")
	}
}

func TestSessionRestartAcquiresFreshFeeds(t *testing.T) {
	s := NewSession(true, demoOptions())
	defer s.Stop()

	s.Start(nil)
	first := s.mock
	s.Stop()
	s.Start(nil)
	if s.mock == nil {
		t.Fatal("restart did not acquire a sensor feed")
	}
	if s.mock == first {
		t.Error("restart reused a released sensor handle")
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "IDLE" || StateActive.String() != "ACTIVE" {
		t.Errorf("state strings = %q, %q", StateIdle.String(), StateActive.String())
	}
}
