package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoTitle   = errors.New("event title is required")
	ErrEndBefore = errors.New("event ends before it starts")
	ErrBadDate   = errors.New("bad date")
)

type EventType struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	Type        EventType `json:"type"`
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrNoTitle
	}
	if e.End.Before(e.Start) {
		return fmt.Errorf("%w: %s < %s", ErrEndBefore, e.End.Format(time.DateTime), e.Start.Format(time.DateTime))
	}
	return nil
}

// Form holds the raw fields of the new-event form.
type Form struct {
	Title       string
	Description string
	Location    string
	StartDate   string // 2006-01-02
	StartTime   string // 15:04, ignored for all-day events
	EndDate     string // defaults to StartDate
	EndTime     string
	AllDay      bool
	Type        EventType
}

// Build turns the form into a validated event. All-day events run from
// midnight to the last millisecond of the end date.
func (f Form) Build(loc *time.Location) (Event, error) {
	if loc == nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation(time.DateOnly, f.StartDate, loc)
	if err != nil {
		return Event{}, fmt.Errorf("%w: start %q", ErrBadDate, f.StartDate)
	}
	endDate := f.EndDate
	if endDate == "" {
		endDate = f.StartDate
	}
	end, err := time.ParseInLocation(time.DateOnly, endDate, loc)
	if err != nil {
		return Event{}, fmt.Errorf("%w: end %q", ErrBadDate, endDate)
	}

	switch {
	case f.AllDay:
		end = end.Add(24*time.Hour - time.Millisecond)
	default:
		if start, err = withClock(start, f.StartTime); err != nil {
			return Event{}, err
		}
		if end, err = withClock(end, f.EndTime); err != nil {
			return Event{}, err
		}
	}

	ev := Event{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Location:    f.Location,
		Start:       start,
		End:         end,
		AllDay:      f.AllDay,
		Type:        f.Type,
	}
	return ev, ev.Validate()
}

func withClock(day time.Time, clock string) (time.Time, error) {
	if clock == "" {
		return day, nil
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return day, fmt.Errorf("%w: time %q", ErrBadDate, clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// InMonth keeps events that start, end or run through the month, sorted by
// start time.
func InMonth(events []Event, year int, month time.Month, loc *time.Location) []Event {
	from, to := monthRange(year, month, loc)
	var out []Event
	for _, e := range events {
		if e.Start.Before(to) && !e.End.Before(from) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// ByDay groups the month's events by the day they start on. Events that
// started in an earlier month are left out.
func ByDay(events []Event, year int, month time.Month, loc *time.Location) map[int][]Event {
	if loc == nil {
		loc = time.Local
	}
	out := make(map[int][]Event)
	for _, e := range InMonth(events, year, month, loc) {
		s := e.Start.In(loc)
		if s.Year() == year && s.Month() == month {
			out[s.Day()] = append(out[s.Day()], e)
		}
	}
	return out
}

func DefaultTypes() []EventType {
	return []EventType{
		{ID: 1, Name: "Public lecture", Color: "#4CAF50", Icon: "school"},
		{ID: 2, Name: "Festival", Color: "#FF5722", Icon: "celebration"},
		{ID: 3, Name: "Sports", Color: "#2196F3", Icon: "sports"},
		{ID: 4, Name: "Culture", Color: "#9C27B0", Icon: "theater"},
		{ID: 5, Name: "Health", Color: "#F44336", Icon: "health"},
	}
}

// SampleEvents builds a demo set around now: two events this month, a two
// day event, and two next month including an all-day one.
func SampleEvents(now time.Time) []Event {
	y, m, loc := now.Year(), now.Month(), now.Location()
	at := func(month time.Month, day, hour, min int) time.Time {
		return time.Date(y, month, day, hour, min, 0, 0, loc)
	}
	types := DefaultTypes()
	events := []Event{
		{Title: "Health lecture", Description: "Habits for a healthy life", Location: "City hall",
			Start: at(m, 15, 10, 0), End: at(m, 15, 12, 0), Type: types[0]},
		{Title: "Spring festival", Description: "Food stalls and dances", Location: "Central park",
			Start: at(m, 20, 10, 0), End: at(m, 20, 18, 0), Type: types[1]},
		{Title: "City marathon", Description: "5km run through the city", Location: "City hall",
			Start: at(m+1, 5, 9, 0), End: at(m+1, 5, 12, 0), Type: types[2]},
		{Title: "Culture festival", Description: "Exhibitions and performances", Location: "Culture center",
			Start: at(m, 25, 10, 0), End: at(m, 26, 16, 0), Type: types[3]},
		{Title: "Health check", Description: "Free health check", Location: "Health center",
			Start: at(m+1, 10, 0, 0), End: at(m+1, 10, 23, 59), AllDay: true, Type: types[4]},
	}
	for i := range events {
		events[i].ID = i + 1
	}
	return events
}

func ReadEvents(r io.Reader) ([]Event, error) {
	var events []Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	for i, e := range events {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return events, nil
}

func LoadEvents(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEvents(f)
}
