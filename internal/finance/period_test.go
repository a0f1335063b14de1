package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowFor(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		kind      PeriodKind
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "month covers the calendar month",
			ref:       time.Date(2025, 2, 14, 18, 30, 0, 0, time.UTC),
			kind:      PeriodMonth,
			wantStart: day(2025, 2, 1),
			wantEnd:   day(2025, 2, 28),
		},
		{
			name:      "leap year february",
			ref:       day(2024, 2, 1),
			kind:      PeriodMonth,
			wantStart: day(2024, 2, 1),
			wantEnd:   day(2024, 2, 29),
		},
		{
			name:      "december rolls into the same year",
			ref:       day(2025, 12, 31),
			kind:      PeriodMonth,
			wantStart: day(2025, 12, 1),
			wantEnd:   day(2025, 12, 31),
		},
		{
			name:      "week is the trailing seven days",
			ref:       time.Date(2025, 3, 3, 9, 15, 0, 0, time.UTC),
			kind:      PeriodWeek,
			wantStart: day(2025, 2, 24),
			wantEnd:   day(2025, 3, 3),
		},
		{
			name:      "unknown kind falls back to month",
			ref:       day(2025, 4, 10),
			kind:      PeriodKind("quarter"),
			wantStart: day(2025, 4, 1),
			wantEnd:   day(2025, 4, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowFor(tt.ref, tt.kind)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := WindowFor(day(2025, 5, 20), PeriodMonth)

	assert.True(t, w.Contains(day(2025, 5, 1)))
	assert.True(t, w.Contains(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(day(2025, 4, 30)))
	assert.False(t, w.Contains(day(2025, 6, 1)))
	assert.Equal(t, 31, w.Days())

	week := WindowFor(day(2025, 5, 20), PeriodWeek)
	assert.True(t, week.Contains(day(2025, 5, 13)))
	assert.False(t, week.Contains(day(2025, 5, 12)))
	assert.Equal(t, 8, week.Days())
}

func TestParsePeriodKind(t *testing.T) {
	assert.Equal(t, PeriodWeek, ParsePeriodKind("week"))
	assert.Equal(t, PeriodWeek, ParsePeriodKind(" WEEK "))
	assert.Equal(t, PeriodMonth, ParsePeriodKind("month"))
	assert.Equal(t, PeriodMonth, ParsePeriodKind(""))
}

func TestMonthHelpers(t *testing.T) {
	assert.Equal(t, "2025-03", MonthKey(day(2025, 3, 9)))
	assert.Equal(t, 30, DaysInMonth(day(2025, 11, 5)))
	assert.True(t, SameMonth(day(2025, 3, 1), day(2025, 3, 31)))
	assert.False(t, SameMonth(day(2025, 3, 1), day(2024, 3, 1)))
}
