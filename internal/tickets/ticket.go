// Package tickets models the support tickets served by the remote feed and
// provides the Source used to fetch them.
package tickets

import "strconv"

// Status is the workflow state reported by the feed.
type Status string

const (
	StatusUnknown    Status = ""
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
	StatusCanceled   Status = "canceled"
)

// statusOrder is the canonical board order for known statuses.
var statusOrder = []Status{StatusTodo, StatusInProgress, StatusDone, StatusCanceled}

var statusLabels = map[Status]string{
	StatusTodo:       "To Do",
	StatusInProgress: "In Progress",
	StatusDone:       "Done",
	StatusCanceled:   "Canceled",
}

// Statuses returns the known statuses in canonical order.
func Statuses() []Status {
	return append([]Status(nil), statusOrder...)
}

// Rank returns the canonical position of s, or -1 when s is not a known status.
func (s Status) Rank() int {
	for i, known := range statusOrder {
		if s == known {
			return i
		}
	}
	return -1
}

// Label returns the display label, falling back to the raw value.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	if s == StatusUnknown {
		return "(none)"
	}
	return string(s)
}

// Priority expresses urgency with higher numbers being more urgent.
type Priority int

const (
	// PriorityUnset marks a ticket whose payload carried no usable priority.
	// It sorts below every real priority.
	PriorityUnset  Priority = -1
	PriorityNone   Priority = 0
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

var priorityLabels = map[Priority]string{
	PriorityUrgent: "Urgent",
	PriorityHigh:   "High",
	PriorityMedium: "Medium",
	PriorityLow:    "Low",
	PriorityNone:   "No priority",
}

// Valid reports whether p falls within the feed's 0..4 range.
func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityUrgent
}

// Label returns the display label. Out-of-range values render as their number.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	if p == PriorityUnset {
		return "(none)"
	}
	return strconv.Itoa(int(p))
}

// Ticket is an immutable snapshot of one feed entry.
type Ticket struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	User     string   `json:"user"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}
