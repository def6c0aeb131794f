package daywindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay_Boundaries(t *testing.T) {
	in := time.Date(2025, 11, 30, 14, 23, 5, 0, time.UTC)
	w := Day(in)

	assert.Equal(t, time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 11, 30, 23, 59, 59, 999000000, time.UTC), w.End)
	assert.Equal(t, "2025-11-30", w.DateString())
}

func TestDay_MidnightInput(t *testing.T) {
	in := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	w := Day(in)

	assert.Equal(t, in, w.Start)
	assert.Equal(t, time.Date(2025, 1, 1, 23, 59, 59, 999000000, time.UTC), w.End)
}

func TestMonthOf_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		start time.Time
		end   time.Time
	}{
		{
			name:  "thirty day month",
			year:  2025,
			month: 11,
			start: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 11, 30, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:  "february leap year",
			year:  2024,
			month: 2,
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:  "december rolls into next year",
			year:  2025,
			month: 12,
			start: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MonthOf(tt.year, tt.month, time.UTC)
			assert.Equal(t, tt.start, w.Start)
			assert.Equal(t, tt.end, w.End)
		})
	}
}

func TestMonth_MatchesMonthOf(t *testing.T) {
	in := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, MonthOf(2025, 11, time.UTC), Month(in))
}

func TestWindow_Contains(t *testing.T) {
	w := Day(time.Date(2025, 11, 30, 12, 0, 0, 0, time.UTC))

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Millisecond)))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}
