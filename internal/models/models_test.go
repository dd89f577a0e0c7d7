package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("name", "is required"), ErrValidation},
		{"not found", NotFound("board", 7), ErrNotFound},
		{"store", &StoreError{Op: "create board", Err: errors.New("disk full")}, ErrStore},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("service: %w", tt.err)
		if !errors.Is(wrapped, tt.sentinel) {
			t.Errorf("%s: expected errors.Is to match sentinel", tt.name)
		}
	}
}

func TestErrors_Distinct(t *testing.T) {
	if errors.Is(NotFound("task", 1), ErrValidation) {
		t.Error("NotFoundError should not match ErrValidation")
	}
	if errors.Is(NewValidationError("text", "is required"), ErrNotFound) {
		t.Error("ValidationError should not match ErrNotFound")
	}
}

func TestErrors_Messages(t *testing.T) {
	if got := NotFound("list", 3).Error(); got != "list 3 not found" {
		t.Errorf("unexpected message %q", got)
	}
	if got := NewValidationError("name", "must not be empty").Error(); got != "name: must not be empty" {
		t.Errorf("unexpected message %q", got)
	}
	cause := errors.New("connection refused")
	storeErr := &StoreError{Op: "delete list", Err: cause}
	if !errors.Is(storeErr, cause) {
		t.Error("StoreError should unwrap to its cause")
	}
}

// ============================================================================
// Date Tests
// ============================================================================

func TestDate_JSONUsesCalendarFormat(t *testing.T) {
	d, err := ParseDate("2026-03-09")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	out, err := json.Marshal(Task{ID: 1, Title: "Fix bug", DueDate: &d})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if raw["dueDate"] != "2026-03-09" {
		t.Errorf("expected dueDate 2026-03-09, got %v", raw["dueDate"])
	}
	if raw["assignedTo"] != nil {
		t.Errorf("expected null assignedTo, got %v", raw["assignedTo"])
	}
	if raw["taskName"] != "Fix bug" {
		t.Errorf("expected taskName Fix bug, got %v", raw["taskName"])
	}
}

func TestDate_RejectsTimestamps(t *testing.T) {
	if _, err := ParseDate("2026-03-09T10:00:00Z"); err == nil {
		t.Error("expected error for timestamp input")
	}
	if _, err := ParseDate("09/03/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date
	if err := d.Scan([]byte("2025-12-31")); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.String() != "2025-12-31" {
		t.Errorf("expected 2025-12-31, got %s", d)
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

// ============================================================================
// Board Details Tests
// ============================================================================

func TestBoardDetails_Lookups(t *testing.T) {
	b := &BoardDetails{
		ID:   1,
		Name: "Sprint 1",
		Lists: []*ListDetails{
			{ID: 10, Name: "Todo", Tasks: []*Task{{ID: 100}, {ID: 101}}},
			{ID: 11, Name: "Done"},
		},
	}

	if got := b.ListIDs(); len(got) != 2 || got[0] != 10 || got[1] != 11 {
		t.Errorf("unexpected list ids %v", got)
	}
	if l := b.FindList(10); l == nil || len(l.TaskIDs()) != 2 {
		t.Errorf("expected Todo with two tasks, got %+v", l)
	}
	if b.FindList(99) != nil {
		t.Error("expected nil for unknown list")
	}
	var nilBoard *BoardDetails
	if nilBoard.FindList(10) != nil || nilBoard.ListIDs() != nil {
		t.Error("nil board lookups should be empty")
	}
}

func TestTaskFields_Empty(t *testing.T) {
	if !(TaskFields{}).Empty() {
		t.Error("zero TaskFields should be empty")
	}
	title := "X"
	if (TaskFields{Title: &title}).Empty() {
		t.Error("TaskFields with title should not be empty")
	}
}
