package calendar

import "time"

// maxExpansionSteps bounds the recurrence walk so pathological inputs (a
// daily rule across decades, or an anchor far before the query range)
// terminate with a truncated result instead of looping. This is a defensive
// bound, not a behavioral contract.
const maxExpansionSteps = 1000

// ExpandInstants returns the instants of a recurring anchor that fall inside
// [rangeStart, rangeEnd], inclusive on both ends. Results are ascending and
// deterministic for the same inputs.
func ExpandInstants(anchor time.Time, rule RepeatRule, rangeStart, rangeEnd time.Time) []time.Time {
	if anchor.After(rangeEnd) {
		return nil
	}
	if rule == RepeatNone {
		if anchor.Before(rangeStart) {
			return nil
		}
		return []time.Time{anchor}
	}

	var out []time.Time
	cursor := anchor
	for steps := 0; steps < maxExpansionSteps; steps++ {
		if cursor.After(rangeEnd) {
			break
		}
		if !cursor.Before(rangeStart) {
			out = append(out, cursor)
		}
		cursor = advance(cursor, rule)
	}
	return out
}

// ExpandWindows returns the {start, end} occurrences of a recurring window
// that overlap [rangeStart, rangeEnd]. Every occurrence preserves the
// anchor's exact duration, including across month and year boundaries. The
// inclusion test is interval overlap, so windows spanning into or out of the
// range boundaries are returned.
func ExpandWindows(anchorStart, anchorEnd time.Time, rule RepeatRule, rangeStart, rangeEnd time.Time) []Window {
	duration := anchorEnd.Sub(anchorStart)

	if rule == RepeatNone {
		if overlaps(anchorStart, anchorEnd, rangeStart, rangeEnd) {
			return []Window{{Start: anchorStart, End: anchorEnd}}
		}
		return nil
	}
	if anchorStart.After(rangeEnd) {
		return nil
	}

	var out []Window
	cursor := anchorStart
	for steps := 0; steps < maxExpansionSteps; steps++ {
		if cursor.After(rangeEnd) {
			break
		}
		end := cursor.Add(duration)
		if overlaps(cursor, end, rangeStart, rangeEnd) {
			out = append(out, Window{Start: cursor, End: end})
		}
		cursor = advance(cursor, rule)
	}
	return out
}

// advance moves the cursor one step forward by the rule's cadence. Monthly
// and yearly steps use calendar arithmetic; AddDate normalizes month-end
// overflow by rolling into the following month (Jan 31 + 1 month lands on
// Mar 2 or Mar 3).
func advance(t time.Time, rule RepeatRule) time.Time {
	switch rule {
	case RepeatDaily:
		return t.AddDate(0, 0, 1)
	case RepeatEvery2Days:
		return t.AddDate(0, 0, 2)
	case RepeatWeekly:
		return t.AddDate(0, 0, 7)
	case RepeatEvery2Weeks:
		return t.AddDate(0, 0, 14)
	case RepeatMonthly:
		return t.AddDate(0, 1, 0)
	case RepeatEvery2Months:
		return t.AddDate(0, 2, 0)
	case RepeatYearly:
		return t.AddDate(1, 0, 0)
	case RepeatEvery2Years:
		return t.AddDate(2, 0, 0)
	}
	// Unknown rules advance daily so a bad stored value degrades to extra
	// occurrences instead of a stuck loop. Writers validate via ParseRepeatRule.
	return t.AddDate(0, 0, 1)
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !aStart.After(bEnd)
}
