// Package format renders timestamps according to the display settings.
package format

import (
	"strings"
	"time"
)

// Defaults of the display_date and display_time settings.
const (
	DefaultDate = "yyyy-mm-dd"
	DefaultTime = "24h"
)

// Formatter renders times with a fixed date and clock style.
type Formatter struct {
	date string
	time string
}

// New returns a Formatter for the given display_date and display_time values.
// Empty values select the defaults.
func New(displayDate, displayTime string) Formatter {
	if strings.TrimSpace(displayDate) == "" {
		displayDate = DefaultDate
	}
	if strings.TrimSpace(displayTime) == "" {
		displayTime = DefaultTime
	}
	return Formatter{date: displayDate, time: displayTime}
}

// FromConfig reads display_date and display_time from merged config values.
func FromConfig(values map[string]string) Formatter {
	return New(values["display_date"], values["display_time"])
}

// DateTime formats a time with both date and time.
// Example output: "2024-01-23 15:04" or "01/23/2024 3:04 PM"
func (f Formatter) DateTime(t time.Time) string {
	return f.Date(t) + " " + f.Time(t)
}

// Full formats with full date and time with seconds.
// Example output: "2024-01-23 15:04:05"
func (f Formatter) Full(t time.Time) string {
	return f.Date(t) + " " + f.TimeFull(t)
}

// Date formats only the date portion.
func (f Formatter) Date(t time.Time) string {
	return t.Format(f.dateLayout())
}

// Time formats only the time portion.
// Example output: "15:04" or "3:04 PM"
func (f Formatter) Time(t time.Time) string {
	if f.time == "12h" {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// TimeFull formats time with seconds.
func (f Formatter) TimeFull(t time.Time) string {
	if f.time == "12h" {
		return t.Format("3:04:05 PM")
	}
	return t.Format("15:04:05")
}

func (f Formatter) dateLayout() string {
	switch f.date {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// Assume it's a custom Go time format (e.g., "Jan 02")
		return f.date
	}
}
