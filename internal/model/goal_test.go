package model

import (
	"errors"
	"testing"
)

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{name: "valid goal", goal: Goal{Title: "Vacation", TargetAmount: 5000}},
		{name: "missing title", goal: Goal{TargetAmount: 5000}, wantErr: true},
		{name: "zero target", goal: Goal{Title: "X"}, wantErr: true},
		{name: "negative target", goal: Goal{Title: "X", TargetAmount: -1}, wantErr: true},
		{name: "negative current", goal: Goal{Title: "X", TargetAmount: 100, CurrentAmount: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGoal) {
					t.Errorf("Validate() error = %v, want ErrInvalidGoal", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestGoal_ApplyProgress(t *testing.T) {
	goal := Goal{Title: "Emergency fund", TargetAmount: 1000, Status: GoalActive}

	goal.ApplyProgress(400)
	if goal.Status != GoalActive {
		t.Errorf("status = %q, want active below target", goal.Status)
	}
	if goal.CurrentAmount != 400 {
		t.Errorf("current = %v, want 400", goal.CurrentAmount)
	}

	goal.ApplyProgress(1000)
	if goal.Status != GoalCompleted {
		t.Errorf("status = %q, want completed at target", goal.Status)
	}

	// Walking progress back reopens the goal.
	goal.ApplyProgress(900)
	if goal.Status != GoalActive {
		t.Errorf("status = %q, want active after regression", goal.Status)
	}

	// Cancelled goals stay cancelled.
	goal.Status = GoalCancelled
	goal.ApplyProgress(2000)
	if goal.Status != GoalCancelled {
		t.Errorf("status = %q, want cancelled to stick", goal.Status)
	}
	if goal.CurrentAmount != 900 {
		t.Errorf("cancelled goal amount changed to %v", goal.CurrentAmount)
	}
}

func TestGoal_Progress(t *testing.T) {
	goal := Goal{Title: "X", TargetAmount: 200, CurrentAmount: 50}
	if got := goal.Progress(); got != 25 {
		t.Errorf("Progress() = %v, want 25", got)
	}

	goal.CurrentAmount = 500
	if got := goal.Progress(); got != 100 {
		t.Errorf("Progress() = %v, want capped at 100", got)
	}

	empty := Goal{Title: "X"}
	if got := empty.Progress(); got != 0 {
		t.Errorf("Progress() with zero target = %v, want 0", got)
	}
}
