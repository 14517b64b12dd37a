// Package board derives the grouped, ordered columns shown on the kanban
// board from a flat ticket collection.
package board

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"tickboard/internal/tickets"
)

// GroupBy selects the ticket field used to partition the board.
type GroupBy string

const (
	GroupByStatus   GroupBy = "status"
	GroupByPriority GroupBy = "priority"
	GroupByUser     GroupBy = "user"
)

// DefaultGroupBy applies when nothing usable was stored.
const DefaultGroupBy = GroupByStatus

var groupByModes = []GroupBy{GroupByStatus, GroupByPriority, GroupByUser}

// GroupByModes returns the selectable grouping modes in cycle order.
func GroupByModes() []GroupBy {
	return append([]GroupBy(nil), groupByModes...)
}

// ParseGroupBy resolves a stored value. Unknown or blank values fall back to
// DefaultGroupBy with ok=false.
func ParseGroupBy(raw string) (GroupBy, bool) {
	value := GroupBy(strings.TrimSpace(raw))
	for _, mode := range groupByModes {
		if value == mode {
			return mode, true
		}
	}
	return DefaultGroupBy, false
}

// Next returns the following mode in cycle order.
func (g GroupBy) Next() GroupBy {
	return cycle(groupByModes, g)
}

// Label is the human-readable name used in menus.
func (g GroupBy) Label() string {
	switch g {
	case GroupByStatus:
		return "Status"
	case GroupByPriority:
		return "Priority"
	case GroupByUser:
		return "User"
	default:
		return string(g)
	}
}

// SortBy selects the ordering applied inside each group.
type SortBy string

const (
	SortByPriority SortBy = "priority"
	SortByTitle    SortBy = "title"
)

// DefaultSortBy applies when nothing was stored.
const DefaultSortBy = SortByPriority

var sortByModes = []SortBy{SortByPriority, SortByTitle}

// SortByModes returns the selectable ordering modes in cycle order.
func SortByModes() []SortBy {
	return append([]SortBy(nil), sortByModes...)
}

// ParseSortBy resolves a stored value. Blank falls back to DefaultSortBy.
// Any other value is kept verbatim so that Derive applies identity ordering;
// ok reports whether the value is one of the known modes.
func ParseSortBy(raw string) (SortBy, bool) {
	value := SortBy(strings.TrimSpace(raw))
	if value == "" {
		return DefaultSortBy, false
	}
	for _, mode := range sortByModes {
		if value == mode {
			return mode, true
		}
	}
	return value, false
}

// Next returns the following mode in cycle order. Unknown values restart at
// the first mode.
func (s SortBy) Next() SortBy {
	return cycle(sortByModes, s)
}

// Label is the human-readable name used in menus.
func (s SortBy) Label() string {
	switch s {
	case SortByPriority:
		return "Priority"
	case SortByTitle:
		return "Title"
	default:
		return string(s)
	}
}

func cycle[T comparable](modes []T, current T) T {
	for i, mode := range modes {
		if mode == current {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

// Preferences are the two persisted board modes.
type Preferences struct {
	GroupBy GroupBy `json:"groupBy"`
	SortBy  SortBy  `json:"sortBy"`
}

// DefaultPreferences returns status/priority.
func DefaultPreferences() Preferences {
	return Preferences{GroupBy: DefaultGroupBy, SortBy: DefaultSortBy}
}

// GroupKey is the raw field value a group was bucketed on: a string for
// status and user, an integer for priority.
type GroupKey struct {
	Text    string
	Number  int
	Numeric bool
}

// TextKey builds a string-valued key.
func TextKey(s string) GroupKey { return GroupKey{Text: s} }

// NumberKey builds an integer-valued key.
func NumberKey(n int) GroupKey { return GroupKey{Number: n, Numeric: true} }

// Value returns the underlying string or int.
func (k GroupKey) Value() any {
	if k.Numeric {
		return k.Number
	}
	return k.Text
}

func (k GroupKey) String() string {
	if k.Numeric {
		return strconv.Itoa(k.Number)
	}
	return k.Text
}

// MarshalJSON encodes the key as a bare JSON string or number.
func (k GroupKey) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(k.Value())
}

// Group is one board column.
type Group struct {
	Key     GroupKey         `json:"key"`
	Label   string           `json:"label"`
	Tickets []tickets.Ticket `json:"tickets"`
}

// View is the ordered set of columns derived from a ticket collection.
type View struct {
	GroupBy GroupBy `json:"groupBy"`
	SortBy  SortBy  `json:"sortBy"`
	Groups  []Group `json:"groups"`
}

// Tickets flattens the view in display order.
func (v View) Tickets() []tickets.Ticket {
	out := make([]tickets.Ticket, 0, v.Count())
	for _, g := range v.Groups {
		out = append(out, g.Tickets...)
	}
	return out
}

// Count returns the number of tickets across all groups.
func (v View) Count() int {
	n := 0
	for _, g := range v.Groups {
		n += len(g.Tickets)
	}
	return n
}

// Empty reports whether the view has no groups.
func (v View) Empty() bool {
	return len(v.Groups) == 0
}

// Summary counts tickets per status.
type Summary struct {
	Total    int
	ByStatus map[tickets.Status]int
}

// Summarize tallies tickets by status for the header line.
func Summarize(items []tickets.Ticket) Summary {
	s := Summary{Total: len(items), ByStatus: make(map[tickets.Status]int)}
	for _, t := range items {
		s.ByStatus[t.Status]++
	}
	return s
}
