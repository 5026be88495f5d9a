package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		weeks int
		first time.Time
		last  time.Time
	}{
		{"leap february", 2024, time.February, 5, date(2024, time.January, 28), date(2024, time.March, 2)},
		{"starts on sunday", 2026, time.February, 4, date(2026, time.February, 1), date(2026, time.February, 28)},
		{"six weeks", 2025, time.March, 6, date(2025, time.February, 23), date(2025, time.April, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.year, tt.month, time.UTC)
			require.Len(t, grid, tt.weeks)
			assert.Equal(t, tt.first, grid[0][0].Date)
			assert.Equal(t, tt.last, grid[len(grid)-1][6].Date)

			inMonth := 0
			for _, w := range grid {
				assert.Equal(t, time.Sunday, w[0].Date.Weekday())
				for _, d := range w {
					assert.Equal(t, d.Date.Month() == tt.month, d.InMonth)
					if d.InMonth {
						inMonth++
					}
				}
			}
			assert.Equal(t, DaysIn(tt.year, tt.month, time.UTC), inMonth)
		})
	}
}

func TestPrevNext(t *testing.T) {
	y, m := Prev(2025, time.January)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)
	y, m = Next(2025, time.December)
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.January, m)
	y, m = Next(2025, time.May)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.June, m)
}

func TestValidate(t *testing.T) {
	start := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, Event{Title: " ", Start: start, End: start}.Validate(), ErrNoTitle)
	assert.ErrorIs(t, Event{Title: "x", Start: start, End: start.Add(-time.Minute)}.Validate(), ErrEndBefore)
	assert.NoError(t, Event{Title: "x", Start: start, End: start}.Validate())
}

func TestFormBuild(t *testing.T) {
	ev, err := Form{Title: "Run", StartDate: "2025-05-03", StartTime: "09:30", EndTime: "11:00"}.Build(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.May, 3, 9, 30, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2025, time.May, 3, 11, 0, 0, 0, time.UTC), ev.End)

	ev, err = Form{Title: "Fair", StartDate: "2025-05-03", StartTime: "09:30", EndDate: "2025-05-04", AllDay: true}.Build(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.May, 3), ev.Start)
	assert.Equal(t, time.Date(2025, time.May, 4, 23, 59, 59, int(999*time.Millisecond), time.UTC), ev.End)

	_, err = Form{Title: "x", StartDate: "3 May"}.Build(time.UTC)
	assert.ErrorIs(t, err, ErrBadDate)
	_, err = Form{Title: "x", StartDate: "2025-05-03", StartTime: "25:00"}.Build(time.UTC)
	assert.ErrorIs(t, err, ErrBadDate)
	_, err = Form{Title: "x", StartDate: "2025-05-03", StartTime: "12:00", EndTime: "11:00"}.Build(time.UTC)
	assert.ErrorIs(t, err, ErrEndBefore)
}

func TestInMonthAndByDay(t *testing.T) {
	now := time.Date(2025, time.May, 2, 8, 0, 0, 0, time.UTC)
	events := SampleEvents(now)
	require.Len(t, events, 5)
	for _, e := range events {
		require.NoError(t, e.Validate())
	}

	may := InMonth(events, 2025, time.May, time.UTC)
	require.Len(t, may, 3)
	for i := 1; i < len(may); i++ {
		assert.False(t, may[i].Start.Before(may[i-1].Start))
	}

	days := ByDay(events, 2025, time.May, time.UTC)
	assert.Len(t, days, 3)
	assert.Equal(t, "Health lecture", days[15][0].Title)
	assert.Len(t, days[25], 1)

	june := ByDay(events, 2025, time.June, time.UTC)
	assert.Len(t, june[5], 1)
	assert.True(t, june[10][0].AllDay)

	// spans into the month but started before it
	long := Event{Title: "expo", Start: date(2025, time.April, 28), End: date(2025, time.May, 3)}
	assert.Len(t, InMonth([]Event{long}, 2025, time.May, time.UTC), 1)
	assert.Empty(t, ByDay([]Event{long}, 2025, time.May, time.UTC))
	assert.Empty(t, InMonth([]Event{long}, 2025, time.June, time.UTC))
}

func TestSampleEventsDecember(t *testing.T) {
	events := SampleEvents(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))
	jan := InMonth(events, 2026, time.January, time.UTC)
	assert.Len(t, jan, 2)
}

func TestReadEvents(t *testing.T) {
	in := `[{"id":1,"title":"Lecture","start":"2025-05-15T10:00:00Z","end":"2025-05-15T12:00:00Z","type":{"name":"Public lecture","color":"#4CAF50"}}]`
	events, err := ReadEvents(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "#4CAF50", events[0].Type.Color)

	_, err = ReadEvents(strings.NewReader(`[{"title":"","start":"2025-05-15T10:00:00Z","end":"2025-05-15T12:00:00Z"}]`))
	assert.ErrorIs(t, err, ErrNoTitle)
	_, err = ReadEvents(strings.NewReader(`{`))
	assert.Error(t, err)
}
