// Package export renders chosen combinations for external consumption: an
// ICS calendar for the student's calendar app and an XLSX workbook with one
// timetable grid per combination.
package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/saladstik/schedulebuilder/pkg/engine"
)

// WriteICS writes one weekly-recurring calendar event per meeting of the
// combination, starting at the first matching weekday on or after
// semesterStart and recurring until semesterEnd. Meetings whose first
// occurrence would fall after the semester end are skipped.
func WriteICS(w io.Writer, combination engine.Combination, semesterStart, semesterEnd time.Time) error {
	if semesterEnd.Before(semesterStart) {
		return fmt.Errorf("semester end %v precedes start %v", semesterEnd.Format("2006-01-02"), semesterStart.Format("2006-01-02"))
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schedulebuilder//EN")

	until := semesterEnd.UTC().Format("20060102T000000Z")

	for _, section := range combination {
		for _, meeting := range section.Meetings {
			first := firstOnOrAfter(semesterStart, meeting.Day.Weekday())
			if first.After(semesterEnd) {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%v@schedulebuilder", uuid.NewString()))
			event.SetSummary(fmt.Sprintf("%v - Section %v", section.Course, section.ID))
			event.SetLocation(meeting.Location)
			event.SetStartAt(at(first, meeting.Start))
			event.SetEndAt(at(first, meeting.End))
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%v", until))
			if section.Instructor != "" && section.Instructor != "TBA" {
				event.SetOrganizer(section.Instructor)
			}
		}
	}

	return cal.SerializeTo(w)
}

// firstOnOrAfter returns the first date with the given weekday, counting
// from start itself.
func firstOnOrAfter(start time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, offset)
}

func at(date time.Time, clock engine.ClockTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hours(), clock.Minutes(), 0, 0, date.Location())
}
