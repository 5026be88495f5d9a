package calendar

import (
	"time"
)

type Day struct {
	Date    time.Time
	InMonth bool
}

type Week [7]Day

// MonthGrid lays out the month in Sunday-first weeks. Cells before the 1st
// and after the last day are filled from the neighbouring months.
func MonthGrid(year int, month time.Month, loc *time.Location) []Week {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := int(first.Weekday())
	days := DaysIn(year, month, loc)
	weeks := (days + offset + 6) / 7

	out := make([]Week, weeks)
	for i := 0; i < weeks*7; i++ {
		// time.Date normalises day 0 and negatives into the previous month
		d := time.Date(year, month, 1+i-offset, 0, 0, 0, 0, loc)
		out[i/7][i%7] = Day{Date: d, InMonth: d.Month() == month}
	}
	return out
}

func DaysIn(year int, month time.Month, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Prev and Next wrap around the year.
func Prev(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func Next(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// monthRange is [first day, first day of next month)
func monthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}
