package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saladstik/schedulebuilder/pkg/engine"
)

const sampleResponse = `{
	"success": true,
	"data": [
		{
			"subject": "ITSC",
			"courseNumber": "320",
			"sequenceNumber": "A",
			"seatsAvailable": 5,
			"maximumEnrollment": 40,
			"courseReferenceNumber": "10234",
			"faculty": [{"displayName": "Morgan Hale"}],
			"meetingsFaculty": [
				{
					"meetingTime": {
						"beginTime": "0800",
						"endTime": "0950",
						"building": "NN",
						"room": "108",
						"monday": true,
						"wednesday": true
					}
				}
			]
		},
		{
			"subject": "CPSY",
			"courseNumber": "300",
			"sequenceNumber": "B",
			"seatsAvailable": 0,
			"maximumEnrollment": 35,
			"courseReferenceNumber": "10456",
			"faculty": [],
			"meetingsFaculty": [
				{
					"meetingTime": {
						"beginTime": "1300",
						"endTime": "1450",
						"tuesday": true
					}
				}
			]
		},
		{
			"subject": "INTP",
			"courseNumber": "302",
			"sequenceNumber": "",
			"seatsAvailable": 12,
			"maximumEnrollment": 30,
			"courseReferenceNumber": "10789",
			"meetingsFaculty": [
				{"meetingTime": {"beginTime": "", "endTime": ""}}
			]
		}
	]
}`

func TestParse(t *testing.T) {
	t.Run("Open-only drops full and meetingless courses", func(t *testing.T) {
		// Act
		sections, err := Parse([]byte(sampleResponse), true)

		// Assert: CPSY 300 has no seats, INTP 302 has no usable meeting.
		assert.Nil(t, err)
		assert.Len(t, sections, 1)

		section := sections[0]
		assert.Equal(t, "ITSC 320", section.Course)
		assert.Equal(t, "A", section.ID)
		assert.Equal(t, "Morgan Hale", section.Instructor)
		assert.Equal(t, "10234", section.CRN)
		assert.Equal(t, 5, section.SeatsAvailable)
		assert.Equal(t, 40, section.MaxEnrollment)
	})

	t.Run("Day flags expand to one meeting per day", func(t *testing.T) {
		// Act
		sections, err := Parse([]byte(sampleResponse), true)
		assert.Nil(t, err)

		// Assert
		meetings := sections[0].Meetings
		assert.Len(t, meetings, 2)
		assert.Equal(t, engine.Monday, meetings[0].Day)
		assert.Equal(t, engine.Wednesday, meetings[1].Day)
		for _, meeting := range meetings {
			assert.Equal(t, "08:00", meeting.Start.String())
			assert.Equal(t, "09:50", meeting.End.String())
			assert.Equal(t, "NN108", meeting.Location)
		}
	})

	t.Run("Without open-only the full course is kept", func(t *testing.T) {
		// Act
		sections, err := Parse([]byte(sampleResponse), false)
		assert.Nil(t, err)

		// Assert
		assert.Len(t, sections, 2)
		assert.Equal(t, "CPSY 300", sections[1].Course)
		// Empty faculty and room fall back to TBA.
		assert.Equal(t, "TBA", sections[1].Instructor)
		assert.Equal(t, "TBA", sections[1].Meetings[0].Location)
	})

	t.Run("Failure responses are surfaced", func(t *testing.T) {
		_, err := Parse([]byte(`{"success": false, "message": "session expired"}`), true)
		assert.ErrorContains(t, err, "session expired")
	})

	t.Run("Malformed payloads are surfaced", func(t *testing.T) {
		_, err := Parse([]byte(`not json`), true)
		assert.NotNil(t, err)
	})
}

func TestParseMilitary(t *testing.T) {
	// Arrange
	valid := map[string]string{
		"0000": "00:00",
		"0800": "08:00",
		"1359": "13:59",
		"2330": "23:30",
	}

	for input, expected := range valid {
		// Act
		parsed, err := parseMilitary(input)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, expected, parsed.String())
	}

	for _, input := range []string{"", "800", "2400", "1260", "ab00"} {
		_, err := parseMilitary(input)
		assert.NotNil(t, err, "expected %q to be rejected", input)
	}
}

func TestFilterCourses(t *testing.T) {
	// Arrange
	sections := []engine.Section{
		{Course: "ITSC 320", ID: "A"},
		{Course: "CPSY 300", ID: "A"},
		{Course: "ITSC 320", ID: "B"},
	}

	// Act
	filtered := FilterCourses(sections, []string{"ITSC 320"})

	// Assert
	assert.Len(t, filtered, 2)
	for _, section := range filtered {
		assert.Equal(t, "ITSC 320", section.Course)
	}

	// An empty selection keeps the whole pool.
	assert.Len(t, FilterCourses(sections, nil), 3)
}
