package board

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tickboard/internal/tickets"
)

// DefaultLocale is used for title and user collation when none is configured.
const DefaultLocale = "en"

const unassignedLabel = "(unassigned)"

type options struct {
	locale language.Tag
}

// Option configures Derive.
type Option func(*options)

// WithLocale sets the collation locale for title and user ordering. Tags that
// fail to parse fall back to DefaultLocale.
func WithLocale(tag string) Option {
	return func(o *options) {
		parsed, err := language.Parse(strings.TrimSpace(tag))
		if err != nil {
			parsed = language.Make(DefaultLocale)
		}
		o.locale = parsed
	}
}

// Derive partitions items by groupBy, orders each group by sortBy and orders
// the groups themselves. The input slice is never modified. A nil collection
// yields a view with zero groups.
//
// Buckets are created in first-seen order before group ordering is applied,
// and every input ticket lands in exactly one group.
func Derive(items []tickets.Ticket, groupBy GroupBy, sortBy SortBy, opts ...Option) View {
	cfg := options{locale: language.Make(DefaultLocale)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := ParseGroupBy(string(groupBy)); !ok {
		groupBy = DefaultGroupBy
	}

	view := View{GroupBy: groupBy, SortBy: sortBy}
	if items == nil {
		return view
	}

	// collate.Collator keeps internal buffers, so each derivation gets its own.
	col := collate.New(cfg.locale)

	index := make(map[GroupKey]int)
	for _, t := range items {
		key := keyFor(t, groupBy)
		i, ok := index[key]
		if !ok {
			i = len(view.Groups)
			index[key] = i
			view.Groups = append(view.Groups, Group{Key: key, Label: labelFor(key, groupBy)})
		}
		view.Groups[i].Tickets = append(view.Groups[i].Tickets, t)
	}

	for i := range view.Groups {
		sortTickets(view.Groups[i].Tickets, sortBy, col)
	}
	sortGroups(view.Groups, groupBy, col)
	return view
}

func keyFor(t tickets.Ticket, groupBy GroupBy) GroupKey {
	switch groupBy {
	case GroupByPriority:
		return NumberKey(int(t.Priority))
	case GroupByUser:
		return TextKey(t.User)
	default:
		return TextKey(string(t.Status))
	}
}

// labelFor resolves a group key to its column heading.
func labelFor(key GroupKey, groupBy GroupBy) string {
	switch groupBy {
	case GroupByPriority:
		return tickets.Priority(key.Number).Label()
	case GroupByUser:
		if key.Text == "" {
			return unassignedLabel
		}
		return key.Text
	default:
		return tickets.Status(key.Text).Label()
	}
}

func sortTickets(items []tickets.Ticket, sortBy SortBy, col *collate.Collator) {
	switch sortBy {
	case SortByPriority:
		// PriorityUnset is -1, so descending order already puts it last.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Priority > items[j].Priority
		})
	case SortByTitle:
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) < 0
		})
	}
}

func sortGroups(groups []Group, groupBy GroupBy, col *collate.Collator) {
	switch groupBy {
	case GroupByPriority:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Key.Number > groups[j].Key.Number
		})
	case GroupByUser:
		sort.SliceStable(groups, func(i, j int) bool {
			return lessUser(groups[i].Key.Text, groups[j].Key.Text, col)
		})
	default:
		sort.SliceStable(groups, func(i, j int) bool {
			return lessStatus(tickets.Status(groups[i].Key.Text), tickets.Status(groups[j].Key.Text))
		})
	}
}

// lessStatus orders known statuses canonically, then unknown statuses
// ascending, with the empty status last.
func lessStatus(a, b tickets.Status) bool {
	if (a == tickets.StatusUnknown) != (b == tickets.StatusUnknown) {
		return b == tickets.StatusUnknown
	}
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra >= 0 && rb >= 0:
		return ra < rb
	case ra >= 0:
		return true
	case rb >= 0:
		return false
	default:
		return a < b
	}
}

// lessUser orders assignees by collation with the unassigned group last.
func lessUser(a, b string, col *collate.Collator) bool {
	if (a == "") != (b == "") {
		return b == ""
	}
	if c := col.CompareString(a, b); c != 0 {
		return c < 0
	}
	return a < b
}
