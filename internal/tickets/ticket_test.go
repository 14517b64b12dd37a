package tickets

import "testing"

func TestStatusLabelsAndRank(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		rank   int
	}{
		{StatusTodo, "To Do", 0},
		{StatusInProgress, "In Progress", 1},
		{StatusDone, "Done", 2},
		{StatusCanceled, "Canceled", 3},
		{Status("backlog"), "backlog", -1},
		{StatusUnknown, "(none)", -1},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("%q.Label() = %q, want %q", tt.status, got, tt.label)
		}
		if got := tt.status.Rank(); got != tt.rank {
			t.Errorf("%q.Rank() = %d, want %d", tt.status, got, tt.rank)
		}
	}
}

func TestPriorityLabels(t *testing.T) {
	tests := []struct {
		priority Priority
		label    string
		valid    bool
	}{
		{PriorityUrgent, "Urgent", true},
		{PriorityHigh, "High", true},
		{PriorityMedium, "Medium", true},
		{PriorityLow, "Low", true},
		{PriorityNone, "No priority", true},
		{Priority(9), "9", false},
		{PriorityUnset, "(none)", false},
	}
	for _, tt := range tests {
		if got := tt.priority.Label(); got != tt.label {
			t.Errorf("Priority(%d).Label() = %q, want %q", tt.priority, got, tt.label)
		}
		if got := tt.priority.Valid(); got != tt.valid {
			t.Errorf("Priority(%d).Valid() = %v, want %v", tt.priority, got, tt.valid)
		}
	}
}

func TestStatusesReturnsCopy(t *testing.T) {
	s := Statuses()
	s[0] = "mutated"
	if Statuses()[0] != StatusTodo {
		t.Fatal("Statuses must return a copy")
	}
}
