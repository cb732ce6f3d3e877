// Command gcal-auth authorizes Google Calendar access for OAuth desktop
// credentials and writes the token file the scheduler reads on startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth [-credentials google-credentials.json] [-token token.json]
//
// Paths default to google_calendar.credentials_path and google_calendar.token_path.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"chat-task-scheduler/config"
	"chat-task-scheduler/pkg/gcalendar"
	"chat-task-scheduler/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: "development", Encoding: "console", ColorEnabled: true})

	credsPath, tokenPath, calendarID := "google-credentials.json", "token.json", gcalendar.PrimaryCalendarID
	if cfg, err := config.Load(); err == nil {
		if cfg.GoogleCalendar.CredentialsPath != "" {
			credsPath = cfg.GoogleCalendar.CredentialsPath
		}
		if cfg.GoogleCalendar.TokenPath != "" {
			tokenPath = cfg.GoogleCalendar.TokenPath
		}
		if cfg.GoogleCalendar.CalendarID != "" {
			calendarID = cfg.GoogleCalendar.CalendarID
		}
	}
	flag.StringVar(&credsPath, "credentials", credsPath, "OAuth desktop credentials file")
	flag.StringVar(&tokenPath, "token", tokenPath, "where to write the token")
	flag.Parse()

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		logger.Fatalf(ctx, "%q is not an OAuth desktop credentials file: %v", credsPath, err)
	}

	fmt.Println("BƯỚC 1: Mở URL sau trong trình duyệt và đăng nhập Google Account:")
	fmt.Println()
	fmt.Println(oauthCfg.AuthCodeURL("gcal-auth", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("BƯỚC 2: Dán authorization code vào đây rồi Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}
	if err := writeToken(tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", tokenPath, err)
	}
	logger.Infof(ctx, "Token saved to %s", tokenPath)

	// Round-trip through the same loader the server uses.
	client, err := gcalendar.NewClientFromCredentialsJSON(ctx, data, tokenPath)
	if err != nil {
		logger.Fatalf(ctx, "Token written but the calendar client rejected it: %v", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    now,
		TimeMax:    now.Add(24 * time.Hour),
	})
	if err != nil {
		logger.Fatalf(ctx, "Calendar check failed: %v", err)
	}
	logger.Infof(ctx, "✅ Calendar %q reachable, %d event(s) in the next 24h", calendarID, len(events))
}

func writeToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
