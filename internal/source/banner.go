// Package source feeds the engine with section records decoded from the
// student registration system's search responses. Everything the engine must
// not know about (seat filtering, military times, per-day flags, "TBA"
// fallbacks) is normalized here.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/saladstik/schedulebuilder/pkg/engine"
)

type searchResponse struct {
	Success bool           `mapstructure:"success"`
	Message string         `mapstructure:"message"`
	Data    []courseRecord `mapstructure:"data"`
}

type courseRecord struct {
	Subject               string          `mapstructure:"subject"`
	CourseNumber          string          `mapstructure:"courseNumber"`
	SequenceNumber        string          `mapstructure:"sequenceNumber"`
	SeatsAvailable        int             `mapstructure:"seatsAvailable"`
	MaximumEnrollment     int             `mapstructure:"maximumEnrollment"`
	CourseReferenceNumber string          `mapstructure:"courseReferenceNumber"`
	Faculty               []facultyRecord `mapstructure:"faculty"`
	MeetingsFaculty       []meetingRecord `mapstructure:"meetingsFaculty"`
}

type facultyRecord struct {
	DisplayName string `mapstructure:"displayName"`
}

type meetingRecord struct {
	MeetingTime meetingTime `mapstructure:"meetingTime"`
}

type meetingTime struct {
	BeginTime string `mapstructure:"beginTime"`
	EndTime   string `mapstructure:"endTime"`
	Building  string `mapstructure:"building"`
	Room      string `mapstructure:"room"`
	Monday    bool   `mapstructure:"monday"`
	Tuesday   bool   `mapstructure:"tuesday"`
	Wednesday bool   `mapstructure:"wednesday"`
	Thursday  bool   `mapstructure:"thursday"`
	Friday    bool   `mapstructure:"friday"`
	Saturday  bool   `mapstructure:"saturday"`
	Sunday    bool   `mapstructure:"sunday"`
}

func (m meetingTime) days() []engine.Day {
	flags := []struct {
		day engine.Day
		set bool
	}{
		{engine.Monday, m.Monday},
		{engine.Tuesday, m.Tuesday},
		{engine.Wednesday, m.Wednesday},
		{engine.Thursday, m.Thursday},
		{engine.Friday, m.Friday},
		{engine.Saturday, m.Saturday},
		{engine.Sunday, m.Sunday},
	}

	var days []engine.Day
	for _, flag := range flags {
		if flag.set {
			days = append(days, flag.day)
		}
	}
	return days
}

// LoadFile reads and parses a search response from disk.
func LoadFile(path string, openOnly bool) ([]engine.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sections file: %w", err)
	}
	return Parse(data, openOnly)
}

// Parse converts a raw search response into engine sections. With openOnly
// set, courses without available seats are dropped, so the engine never sees
// them. Courses without any usable meeting are skipped entirely, as are
// meetings with missing or inverted times.
func Parse(data []byte, openOnly bool) ([]engine.Section, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	var response searchResponse
	if err := mapstructure.Decode(raw, &response); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if !response.Success {
		return nil, fmt.Errorf("search response reported failure: %v", response.Message)
	}

	var sections []engine.Section
	for _, record := range response.Data {
		if openOnly && record.SeatsAvailable <= 0 {
			continue
		}

		meetings := recordMeetings(record)
		if len(meetings) == 0 {
			continue
		}

		instructor := "TBA"
		if len(record.Faculty) > 0 && record.Faculty[0].DisplayName != "" {
			instructor = record.Faculty[0].DisplayName
		}

		sections = append(sections, engine.Section{
			Course:         fmt.Sprintf("%v %v", record.Subject, record.CourseNumber),
			ID:             sectionID(record.SequenceNumber),
			Meetings:       meetings,
			Instructor:     instructor,
			CRN:            record.CourseReferenceNumber,
			SeatsAvailable: record.SeatsAvailable,
			MaxEnrollment:  record.MaximumEnrollment,
		})
	}
	return sections, nil
}

func sectionID(sequenceNumber string) string {
	if sequenceNumber == "" {
		return "A"
	}
	return sequenceNumber
}

func recordMeetings(record courseRecord) []engine.Meeting {
	var meetings []engine.Meeting
	for _, meeting := range record.MeetingsFaculty {
		mt := meeting.MeetingTime
		if mt.BeginTime == "" || mt.EndTime == "" {
			continue
		}

		start, err := parseMilitary(mt.BeginTime)
		if err != nil {
			continue
		}
		end, err := parseMilitary(mt.EndTime)
		if err != nil {
			continue
		}

		location := mt.Building + mt.Room

		for _, day := range mt.days() {
			built, err := engine.NewMeeting(day, start, end, location)
			if err != nil {
				// Inverted interval from upstream; the engine must never
				// see it.
				continue
			}
			meetings = append(meetings, built)
		}
	}
	return meetings
}

// parseMilitary parses the registration system's "HHMM" time form.
func parseMilitary(s string) (engine.ClockTime, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%q is not a valid military time", s)
	}
	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid military time: %w", s, err)
	}
	minutes, err := strconv.Atoi(s[2:])
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid military time: %w", s, err)
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%q is not a valid military time", s)
	}
	return engine.ClockTime(hours*60 + minutes), nil
}

// FilterCourses keeps only the sections of the given courses. The CLI uses
// it to narrow the pool to the user's selection before enumeration.
func FilterCourses(sections []engine.Section, courses []string) []engine.Section {
	if len(courses) == 0 {
		return sections
	}
	return lo.Filter(sections, func(s engine.Section, _ int) bool {
		return lo.Contains(courses, s.Course)
	})
}
