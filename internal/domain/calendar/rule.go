package calendar

import "fmt"

// RepeatRule describes the recurrence cadence of an event or reminder.
type RepeatRule string

const (
	RepeatNone         RepeatRule = "none"
	RepeatDaily        RepeatRule = "daily"
	RepeatEvery2Days   RepeatRule = "every_2_days"
	RepeatWeekly       RepeatRule = "weekly"
	RepeatEvery2Weeks  RepeatRule = "every_2_weeks"
	RepeatMonthly      RepeatRule = "monthly"
	RepeatEvery2Months RepeatRule = "every_2_months"
	RepeatYearly       RepeatRule = "yearly"
	RepeatEvery2Years  RepeatRule = "every_2_years"
)

// ParseRepeatRule validates a rule string against the closed enumeration.
// An empty string parses as RepeatNone.
func ParseRepeatRule(value string) (RepeatRule, error) {
	switch RepeatRule(value) {
	case RepeatNone, RepeatDaily, RepeatEvery2Days, RepeatWeekly, RepeatEvery2Weeks,
		RepeatMonthly, RepeatEvery2Months, RepeatYearly, RepeatEvery2Years:
		return RepeatRule(value), nil
	case "":
		return RepeatNone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRepeatRule, value)
}
