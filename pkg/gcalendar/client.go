package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultTokenFile = "token.json"

// ErrMissingToken is returned for desktop-app credentials without a stored token.
var ErrMissingToken = errors.New("google credentials are OAuth desktop type but no token file was found")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// New builds a client from the files named in cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, cfg.TokenFile)
}

// NewClientFromCredentialsJSON accepts either a service account key or OAuth
// "installed" credentials paired with a token file.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenFile string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	if tokenFile == "" {
		tokenFile = defaultTokenFile
	}
	tokenData, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, ErrMissingToken
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenFile, err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a client on top of a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns single (expanded) events in [TimeMin, TimeMax) ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		start, allDay := parseEventTime(item.Start)
		end, _ := parseEventTime(item.End)
		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			StartTime:   start,
			EndTime:     end,
			AllDay:      allDay,
		})
	}
	return events, nil
}

// FreeBusy returns the busy periods of one calendar between TimeMin and TimeMax.
func (c *Client) FreeBusy(ctx context.Context, req FreeBusyRequest) ([]BusyPeriod, error) {
	id := calendarID(req.CalendarID)
	resp, err := c.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin:  req.TimeMin.Format(time.RFC3339),
		TimeMax:  req.TimeMax.Format(time.RFC3339),
		TimeZone: req.Timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: id}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	cal, ok := resp.Calendars[id]
	if !ok {
		return nil, nil
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("free/busy error for %s: %s", id, cal.Errors[0].Reason)
	}

	periods := make([]BusyPeriod, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			continue
		}
		periods = append(periods, BusyPeriod{Start: start, End: end})
	}
	return periods, nil
}

func calendarID(id string) string {
	if id == "" {
		return PrimaryCalendarID
	}
	return id
}

// parseEventTime reads either a timed or an all-day boundary.
func parseEventTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t, false
	}
	t, _ := time.Parse("2006-01-02", dt.Date)
	return t, true
}
