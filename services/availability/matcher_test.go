package availability

import (
	"testing"
	"time"

	"bookify/models"
)

func weekOf(t *testing.T) map[time.Weekday]time.Time {
	t.Helper()
	// 2025-06-01 is a Sunday.
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	days := make(map[time.Weekday]time.Time, 7)
	for i := 0; i < 7; i++ {
		d := base.AddDate(0, 0, i)
		days[d.Weekday()] = d
	}
	return days
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func allDays(d models.DaySchedule) *models.WeeklySchedule {
	return &models.WeeklySchedule{Sun: d, Mon: d, Tue: d, Wed: d, Thu: d, Fri: d, Sat: d}
}

func TestCheckSameDayWindow(t *testing.T) {
	days := weekOf(t)
	sched := allDays(models.DaySchedule{Open: "09:00", Close: "17:00"})
	mon := days[time.Monday]

	cases := []struct {
		name    string
		hour    int
		minute  int
		allowed bool
	}{
		{"at open", 9, 0, true},
		{"mid window", 12, 30, true},
		{"last minute", 16, 59, true},
		{"just before open", 8, 59, false},
		{"at close", 17, 0, false},
		{"after close", 20, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Check(sched, at(mon, tc.hour, tc.minute))
			if d.Allowed != tc.allowed {
				t.Fatalf("Check(%02d:%02d) allowed = %v, want %v", tc.hour, tc.minute, d.Allowed, tc.allowed)
			}
			if !tc.allowed && d.AllowedRange != "09:00-17:00" {
				t.Errorf("allowed range = %q, want 09:00-17:00", d.AllowedRange)
			}
		})
	}
}

func TestCheckOvernightWindow(t *testing.T) {
	days := weekOf(t)
	sched := allDays(models.DaySchedule{Open: "22:00", Close: "02:00"})
	fri := days[time.Friday]

	cases := []struct {
		name    string
		hour    int
		minute  int
		allowed bool
	}{
		{"late evening", 23, 30, true},
		{"past midnight", 1, 0, true},
		{"at open", 22, 0, true},
		{"at close", 2, 0, false},
		{"midday", 12, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Check(sched, at(fri, tc.hour, tc.minute))
			if d.Allowed != tc.allowed {
				t.Fatalf("Check(%02d:%02d) allowed = %v, want %v", tc.hour, tc.minute, d.Allowed, tc.allowed)
			}
		})
	}
}

func TestCheckClosedDayDeniesEverything(t *testing.T) {
	days := weekOf(t)
	sched := allDays(models.DaySchedule{Open: "09:00", Close: "17:00", Closed: true})

	for h := 0; h < 24; h += 3 {
		d := Check(sched, at(days[time.Wednesday], h, 15))
		if d.Allowed {
			t.Fatalf("closed day allowed booking at %02d:15", h)
		}
		if d.Reason != ReasonClosedDay {
			t.Fatalf("reason = %q, want %q", d.Reason, ReasonClosedDay)
		}
		if d.AllowedRange != "closed" {
			t.Fatalf("allowed range = %q, want closed", d.AllowedRange)
		}
	}
}

func TestCheckMalformedHours(t *testing.T) {
	days := weekOf(t)
	cases := []struct {
		name string
		day  models.DaySchedule
	}{
		{"missing open", models.DaySchedule{Close: "17:00"}},
		{"missing close", models.DaySchedule{Open: "09:00"}},
		{"garbage open", models.DaySchedule{Open: "nine", Close: "17:00"}},
		{"out of range", models.DaySchedule{Open: "25:00", Close: "17:00"}},
		{"single field", models.DaySchedule{Open: "0900", Close: "17:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Check(allDays(tc.day), at(days[time.Monday], 10, 0))
			if d.Allowed {
				t.Fatal("malformed hours should deny")
			}
			if d.Reason != ReasonBadHours {
				t.Errorf("reason = %q, want %q", d.Reason, ReasonBadHours)
			}
		})
	}
}

func TestCheckAcceptsSecondsInClock(t *testing.T) {
	days := weekOf(t)
	sched := allDays(models.DaySchedule{Open: "09:00:00", Close: "17:00:00"})
	d := Check(sched, at(days[time.Tuesday], 10, 0))
	if !d.Allowed {
		t.Fatalf("HH:mm:ss hours should parse, got denial %q", d.Reason)
	}
}

func TestCheckUsesWeekdayOfInstant(t *testing.T) {
	days := weekOf(t)
	sched := allDays(models.DaySchedule{Open: "09:00", Close: "17:00"})
	sched.Tue = models.DaySchedule{Closed: true}

	if d := Check(sched, at(days[time.Tuesday], 10, 0)); d.Allowed {
		t.Fatal("Tuesday is closed, booking should be denied")
	}
	if d := Check(sched, at(days[time.Wednesday], 10, 0)); !d.Allowed {
		t.Fatalf("Wednesday is open, got denial %q", d.Reason)
	}
}
