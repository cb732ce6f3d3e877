package datemath

import "time"

// DaysPerWeek is the length of a week-scope plan.
const DaysPerWeek = 7

// NextWeekStart returns midnight of the first Monday strictly after base.
func (p *Parser) NextWeekStart(base time.Time) time.Time {
	day := p.StartOfDay(base)
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

// Days returns n consecutive midnights starting at start's day.
func (p *Parser) Days(start time.Time, n int) []time.Time {
	first := p.StartOfDay(start)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}
