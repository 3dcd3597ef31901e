// Package availability decides whether a requested instant falls inside a
// business's recurring weekly opening hours.
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookify/models"
)

const (
	// ReasonClosedDay is returned when the requested weekday is marked closed.
	ReasonClosedDay = "closed on requested day"
	// ReasonBadHours is returned when the day's hours are missing or malformed.
	ReasonBadHours = "hours not available (treated as closed)"

	rangeClosed = "closed"
)

// Decision is the outcome of an availability check. When Allowed is false,
// Reason and AllowedRange describe the denial for user display.
type Decision struct {
	Allowed      bool   `json:"allowed"`
	Reason       string `json:"reason,omitempty"`
	AllowedRange string `json:"allowedRange,omitempty"`
}

// Check tests the instant's local wall-clock time against the schedule.
// The instant's own clock components are used as-is; no zone conversion
// happens here. Check is pure and never fails for a non-nil schedule.
func Check(schedule *models.WeeklySchedule, at time.Time) Decision {
	day := schedule.Day(at.Weekday())

	if day.Closed {
		return Decision{Reason: ReasonClosedDay, AllowedRange: rangeClosed}
	}

	open, err := parseClock(day.Open)
	if err != nil {
		return Decision{Reason: ReasonBadHours, AllowedRange: rangeClosed}
	}
	close, err := parseClock(day.Close)
	if err != nil {
		return Decision{Reason: ReasonBadHours, AllowedRange: rangeClosed}
	}

	minutes := at.Hour()*60 + at.Minute()

	var inWindow bool
	if close > open {
		inWindow = minutes >= open && minutes < close
	} else {
		// Overnight window, e.g. 22:00-02:00.
		inWindow = minutes >= open || minutes < close
	}
	if inWindow {
		return Decision{Allowed: true}
	}

	return Decision{
		Reason:       fmt.Sprintf("requested time %02d:%02d is outside business hours", at.Hour(), at.Minute()),
		AllowedRange: fmt.Sprintf("%s-%s", formatClock(open), formatClock(close)),
	}
}

// parseClock converts "HH:mm" or "HH:mm:ss" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hour*60 + minute, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
