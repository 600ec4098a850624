package calendar

import (
	"time"

	"github.com/rozsival/tyr-worklog-creator/pkg/dateutil"
)

// WorkDay is a calendar date eligible for worklog creation, normalized to
// midnight in its location. The time-of-day carries no meaning; worklog
// start times are derived from it separately.
type WorkDay struct {
	time.Time
}

// NewWorkDay normalizes a timestamp to the containing calendar date.
func NewWorkDay(date time.Time) WorkDay {
	return WorkDay{dateutil.StartOfDay(date)}
}

// WorkdaysThrough returns all workdays of today's month from the first of
// the month through today inclusive, ascending. Saturdays, Sundays and any
// date in the holiday set are excluded. If today is itself a weekend or
// holiday it is excluded too; earlier workdays of the month still appear.
func WorkdaysThrough(today time.Time, holidays HolidaySet) []WorkDay {
	today = dateutil.StartOfDay(today)

	var days []WorkDay
	for d := dateutil.MonthStart(today); !d.After(today); d = d.AddDate(0, 0, 1) {
		if dateutil.IsWeekend(d) || holidays.Contains(d) {
			continue
		}
		days = append(days, WorkDay{d})
	}

	return days
}

// WeekGroup is a contiguous run of workdays within one Monday-Friday span.
type WeekGroup []WorkDay

// GroupByWeek partitions the workday sequence into week groups. A new group
// starts exactly when a Monday is met and the current group is non-empty, so
// the first group may begin mid-week when the month does. Concatenating the
// groups in order reproduces the input exactly.
func GroupByWeek(days []WorkDay) []WeekGroup {
	var groups []WeekGroup
	var current WeekGroup

	for _, day := range days {
		if day.Weekday() == time.Monday && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, day)
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}
