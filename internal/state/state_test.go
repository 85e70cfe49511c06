package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()             { *r.log = append(*r.log, r.name+".enter") }
func (r *recordingState) Update(float64)     { *r.log = append(*r.log, r.name+".update") }
func (r *recordingState) Draw(*ebiten.Image) {}
func (r *recordingState) Exit()              { *r.log = append(*r.log, r.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016) // без состояния ничего не происходит

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)

	want := []string{"a.enter", "a.update", "a.exit", "b.enter"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if sm.Current() != b {
		t.Error("Current() is not the last state set")
	}
}

func TestDragTrackerInvertsY(t *testing.T) {
	var d dragTracker

	if dx, dy := d.move(10, 10); dx != 0 || dy != 0 {
		t.Errorf("move before press = (%v, %v), want (0, 0)", dx, dy)
	}

	d.press(100, 200)
	dx, dy := d.move(110, 180)
	if dx != 10 || dy != 20 {
		t.Errorf("move = (%v, %v), want (10, 20)", dx, dy)
	}
	dx, dy = d.move(105, 190)
	if dx != -5 || dy != -10 {
		t.Errorf("second move = (%v, %v), want (-5, -10)", dx, dy)
	}

	if !d.release() {
		t.Error("release after press returned false")
	}
	if d.release() {
		t.Error("second release returned true")
	}
}
