package models

import (
	"fmt"
	"time"
)

// DaySchedule holds one weekday's opening window. Open and Close are local
// wall-clock strings ("HH:mm" or "HH:mm:ss"). A closed day may still carry
// leftover open/close values; Closed wins.
type DaySchedule struct {
	Open   string `bson:"open,omitempty" json:"open,omitempty"`
	Close  string `bson:"close,omitempty" json:"close,omitempty"`
	Closed bool   `bson:"closed" json:"closed"`
}

// WeeklySchedule is a business's recurring weekly availability. Days are
// explicit fields rather than a string-keyed map so a typo in a day key is a
// compile error, not a silently-closed weekday.
type WeeklySchedule struct {
	Sun DaySchedule `bson:"sun" json:"sun"`
	Mon DaySchedule `bson:"mon" json:"mon"`
	Tue DaySchedule `bson:"tue" json:"tue"`
	Wed DaySchedule `bson:"wed" json:"wed"`
	Thu DaySchedule `bson:"thu" json:"thu"`
	Fri DaySchedule `bson:"fri" json:"fri"`
	Sat DaySchedule `bson:"sat" json:"sat"`
}

// Day returns the schedule for the given weekday.
func (w *WeeklySchedule) Day(d time.Weekday) DaySchedule {
	switch d {
	case time.Sunday:
		return w.Sun
	case time.Monday:
		return w.Mon
	case time.Tuesday:
		return w.Tue
	case time.Wednesday:
		return w.Wed
	case time.Thursday:
		return w.Thu
	case time.Friday:
		return w.Fri
	default:
		return w.Sat
	}
}

// Validate checks that every day is configured: either marked closed or
// carrying both open and close values. Run at load time so a half-configured
// schedule is caught once, not on every booking request.
func (w *WeeklySchedule) Validate() error {
	days := []struct {
		name string
		day  DaySchedule
	}{
		{"sun", w.Sun}, {"mon", w.Mon}, {"tue", w.Tue}, {"wed", w.Wed},
		{"thu", w.Thu}, {"fri", w.Fri}, {"sat", w.Sat},
	}
	for _, d := range days {
		if d.day.Closed {
			continue
		}
		if d.day.Open == "" || d.day.Close == "" {
			return fmt.Errorf("schedule day %s: missing open/close hours and not marked closed", d.name)
		}
	}
	return nil
}
