// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		delta float64
		want  Decision
	}{
		{60, Approve},
		{-60, Skip},
		{0, Undecided},
		{50, Undecided},
		{-50, Undecided},
		{50.5, Approve},
		{-51, Skip},
		{1000, Approve},
	}

	for _, tt := range tests {
		if got := Classify(tt.delta); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

func TestTracker_CommitsLastClassification(t *testing.T) {
	var tr Tracker
	if tr.State() != Idle {
		t.Fatalf("new tracker should be idle, got %v", tr.State())
	}

	tr.Start(100)
	if tr.State() != Dragging {
		t.Fatalf("expected dragging after Start, got %v", tr.State())
	}

	if d := tr.Move(180); d != Approve {
		t.Errorf("Move(180) = %v, want approve", d)
	}
	if tr.Offset() != 80 {
		t.Errorf("Offset() = %v, want 80", tr.Offset())
	}

	if d := tr.End(); d != Approve {
		t.Errorf("End() = %v, want approve", d)
	}
	if tr.State() != Idle {
		t.Errorf("expected idle after End, got %v", tr.State())
	}
}

func TestTracker_DragBackResets(t *testing.T) {
	var tr Tracker
	tr.Start(0)
	tr.Move(-70)
	tr.Move(-20)

	if d := tr.End(); d != Undecided {
		t.Errorf("release inside threshold should be undecided, got %v", d)
	}
}

func TestTracker_EndWithoutStart(t *testing.T) {
	var tr Tracker
	if d := tr.Move(500); d != Undecided {
		t.Errorf("Move while idle = %v, want undecided", d)
	}
	if d := tr.End(); d != Undecided {
		t.Errorf("End while idle = %v, want undecided", d)
	}
}

func TestTracker_GesturesAreIndependent(t *testing.T) {
	var tr Tracker
	tr.Start(0)
	tr.Move(90)
	tr.End()

	// Second gesture with no movement must not inherit Approve.
	tr.Start(0)
	if d := tr.End(); d != Undecided {
		t.Errorf("second gesture inherited %v", d)
	}
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name  string
		trace []float64
		want  Decision
	}{
		{"empty", nil, Undecided},
		{"tap", []float64{200}, Undecided},
		{"swipe right", []float64{200, 230, 260, 300}, Approve},
		{"swipe left", []float64{200, 170, 140}, Skip},
		{"right then back", []float64{200, 300, 210}, Undecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replay(tt.trace); got != tt.want {
				t.Errorf("Replay(%v) = %v, want %v", tt.trace, got, tt.want)
			}
		})
	}
}

func TestDecisionJSON(t *testing.T) {
	var payload struct {
		Decision Decision `json:"decision"`
	}
	if err := json.Unmarshal([]byte(`{"decision":"skip"}`), &payload); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if payload.Decision != Skip {
		t.Errorf("expected skip, got %v", payload.Decision)
	}

	out, _ := json.Marshal(payload)
	if string(out) != `{"decision":"skip"}` {
		t.Errorf("unexpected JSON %s", out)
	}

	if err := json.Unmarshal([]byte(`{"decision":"maybe"}`), &payload); err == nil {
		t.Error("expected error for unknown decision")
	}
}
