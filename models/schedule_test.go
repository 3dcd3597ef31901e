package models

import (
	"testing"
	"time"
)

func TestWeeklyScheduleDayAccessor(t *testing.T) {
	w := &WeeklySchedule{
		Sun: DaySchedule{Open: "10:00", Close: "14:00"},
		Mon: DaySchedule{Open: "09:00", Close: "17:00"},
		Sat: DaySchedule{Closed: true},
	}

	if d := w.Day(time.Monday); d.Open != "09:00" {
		t.Errorf("Monday open = %q, want 09:00", d.Open)
	}
	if d := w.Day(time.Sunday); d.Close != "14:00" {
		t.Errorf("Sunday close = %q, want 14:00", d.Close)
	}
	if d := w.Day(time.Saturday); !d.Closed {
		t.Error("Saturday should be closed")
	}
}

func TestWeeklyScheduleValidate(t *testing.T) {
	open := DaySchedule{Open: "09:00", Close: "17:00"}
	closed := DaySchedule{Closed: true}

	full := &WeeklySchedule{Sun: closed, Mon: open, Tue: open, Wed: open, Thu: open, Fri: open, Sat: closed}
	if err := full.Validate(); err != nil {
		t.Fatalf("complete schedule should validate: %v", err)
	}

	halfConfigured := &WeeklySchedule{Sun: closed, Mon: open, Tue: DaySchedule{Open: "09:00"}, Wed: open, Thu: open, Fri: open, Sat: closed}
	if err := halfConfigured.Validate(); err == nil {
		t.Fatal("day with open but no close must fail validation")
	}

	missingDay := &WeeklySchedule{Mon: open, Tue: open, Wed: open, Thu: open, Fri: open, Sat: closed}
	if err := missingDay.Validate(); err == nil {
		t.Fatal("unconfigured day must fail validation")
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	terminal := []BookingStatus{BookingCancelled, BookingCompleted, BookingRejected}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%q should be terminal", s)
		}
	}
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed} {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
}

func TestCompletedLabel(t *testing.T) {
	for _, label := range []string{"completed", "Completed", "COMPLETED", "  completed  "} {
		if !CompletedLabel(label) {
			t.Errorf("CompletedLabel(%q) = false", label)
		}
	}
	for _, label := range []string{"complete", "done", ""} {
		if CompletedLabel(label) {
			t.Errorf("CompletedLabel(%q) = true", label)
		}
	}
}
