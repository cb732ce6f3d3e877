package gcalendar

import "time"

// PrimaryCalendarID is used when a request leaves CalendarID empty.
const PrimaryCalendarID = "primary"

// Config locates the Google credentials. TokenFile is only read for OAuth
// desktop-app credentials; service accounts do not need it.
type Config struct {
	CredentialsFile string
	TokenFile       string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// FreeBusyRequest asks for the busy periods of one calendar.
type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Timezone   string
}

// BusyPeriod is one occupied interval.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}
