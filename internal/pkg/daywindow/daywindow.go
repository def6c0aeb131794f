package daywindow

import "time"

// Window is an inclusive [Start, End] pair of timestamps bounding a local
// calendar day or month. End sits at 23:59:59.999 so that timestamp columns
// compared with <= never leak into the next day.
type Window struct {
	Start time.Time
	End   time.Time
}

// DateString formats the window start as YYYY-MM-DD, the representation used
// for DATE column comparisons.
func (w Window) DateString() string {
	return w.Start.Format("2006-01-02")
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Day returns the local calendar-day window containing t.
func Day(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Millisecond),
	}
}

// Month returns the local calendar-month window containing t.
func Month(t time.Time) Window {
	return MonthOf(t.Year(), int(t.Month()), t.Location())
}

// MonthOf returns the window for a specific year and month (1-12).
func MonthOf(year, month int, loc *time.Location) Window {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}
