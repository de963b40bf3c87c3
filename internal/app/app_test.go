package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oddlab/anomaly-radar/internal/sensor"
	"github.com/oddlab/anomaly-radar/internal/spectro"
)

func newSizedModel(t *testing.T) Model {
	t.Helper()
	m := New(true, demoOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestTickDoesNotAdvanceSweepWhileIdle(t *testing.T) {
	m := newSizedModel(t)

	before := m.shared.sweep.Angle
	_, cmd := m.Update(TickMsg(time.Now()))

	if m.shared.sweep.Angle != before {
		t.Error("sweep advanced while session is idle")
	}
	if cmd != nil {
		t.Error("idle tick rescheduled itself")
	}
}

func TestTickAdvancesSweepWhileActive(t *testing.T) {
	m := newSizedModel(t)
	m.shared.session.Start(nil)
	defer m.shared.session.Stop()

	before := m.shared.sweep.Angle
	_, cmd := m.Update(TickMsg(time.Now()))

	if m.shared.sweep.Angle == before {
		t.Error("sweep did not advance on an active tick")
	}
	if cmd == nil {
		t.Error("active tick did not reschedule")
	}
}

func TestFrameIgnoredWhileIdle(t *testing.T) {
	m := newSizedModel(t)

	frame := make([]byte, 64)
	for i := range frame {
		frame[i] = 200
	}
	m.Update(sensor.FrameMsg{Bins: frame})

	fb := m.shared.fb
	x := fb.Width() - 1
	if fb.Alpha(x, 0) != 0 {
		t.Error("idle session pushed a frame into the framebuffer")
	}
}

func TestFramePushedWhileActive(t *testing.T) {
	m := newSizedModel(t)
	m.shared.session.Start(nil)
	defer m.shared.session.Stop()

	frame := make([]byte, 64)
	for i := range frame {
		frame[i] = 200
	}
	updated, _ := m.Update(sensor.FrameMsg{Bins: frame})
	m = updated.(Model)

	fb := m.shared.fb
	if fb.Alpha(fb.Width()-1, 0) != 0xFF {
		t.Error("active session did not render the frame")
	}
	if m.lastMag != 200 {
		t.Errorf("lastMag = %d, want 200", m.lastMag)
	}
	if m.echo <= 0 {
		t.Error("echo strength not updated")
	}
}

func TestProximityEventsCounted(t *testing.T) {
	m := newSizedModel(t)
	m.shared.session.Start(nil)
	defer m.shared.session.Stop()

	m.Update(sensor.ProximityMsg{ID: "AA:BB", Name: "keyfob", RSSI: -40})
	m.Update(sensor.ProximityMsg{ID: "AA:BB", Name: "keyfob", RSSI: -42})
	m.Update(sensor.ProximityMsg{ID: "CC:DD", Name: "", RSSI: -44})

	if got := m.shared.store.Events(); got != 2 {
		t.Errorf("events = %d, want 2 (refresh is not an event)", got)
	}
	if got := m.shared.store.Count(); got != 2 {
		t.Errorf("contacts = %d, want 2", got)
	}
}

func TestResizeRecreatesZeroedFramebuffer(t *testing.T) {
	m := newSizedModel(t)
	m.shared.session.Start(nil)
	defer m.shared.session.Stop()

	m.Update(sensor.FrameMsg{Bins: []byte{255}})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	fb := m.shared.fb
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.At(x, y) != (spectro.Color{}) {
				t.Fatal("resized framebuffer not zeroed")
			}
		}
	}
}
