package billing

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/hourbill/hourbill/internal/domain/timeentry"
)

// WeekGroups maps a 1-indexed week number within the billing month to the
// time entries that fall in that week. Entries within a group carry no
// ordering guarantee; renderers sort by date before use.
type WeekGroups map[int][]*timeentry.TimeEntry

// GroupByWeek partitions a billing month's entries by their week number.
// Entries are expected to be pre-filtered to a single month's date range.
func GroupByWeek(entries []*timeentry.TimeEntry) (WeekGroups, error) {
	weeks := make(WeekGroups)
	for _, entry := range entries {
		date, err := ParseDate(entry.Date)
		if err != nil {
			return nil, err
		}
		num := WeekNumber(date)
		weeks[num] = append(weeks[num], entry)
	}
	return weeks, nil
}

// SortedWeekNumbers returns the week numbers in ascending order.
func (w WeekGroups) SortedWeekNumbers() []int {
	nums := lo.Keys(w)
	sort.Ints(nums)
	return nums
}

// Total sums the hours across all weeks.
func (w WeekGroups) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entries := range w {
		total = total.Add(WeekTotal(entries))
	}
	return total
}

// WeekTotal sums the hours within one week group.
func WeekTotal(entries []*timeentry.TimeEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Hours)
	}
	return total
}

// MonthTotal sums the hours across a month's entries.
func MonthTotal(entries []*timeentry.TimeEntry) decimal.Decimal {
	return WeekTotal(entries)
}

// SortByDate returns a copy of the entries ordered ascending by date.
func SortByDate(entries []*timeentry.TimeEntry) []*timeentry.TimeEntry {
	sorted := make([]*timeentry.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
