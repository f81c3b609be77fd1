package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/saladstik/schedulebuilder/pkg/engine"
)

func testCombination(t *testing.T) engine.Combination {
	t.Helper()

	meeting := func(day engine.Day, start, end string) engine.Meeting {
		startTime, err := engine.ParseClock(start)
		assert.Nil(t, err)
		endTime, err := engine.ParseClock(end)
		assert.Nil(t, err)
		built, err := engine.NewMeeting(day, startTime, endTime, "NN108")
		assert.Nil(t, err)
		return built
	}

	return engine.Combination{
		{
			Course:     "ITSC 320",
			ID:         "A",
			Instructor: "Morgan Hale",
			Meetings: []engine.Meeting{
				meeting(engine.Monday, "08:00", "09:50"),
				meeting(engine.Wednesday, "08:00", "09:50"),
			},
		},
		{
			Course:     "CPSY 300",
			ID:         "B",
			Instructor: "TBA",
			Meetings: []engine.Meeting{
				meeting(engine.Tuesday, "13:00", "14:50"),
			},
		},
	}
}

func TestWriteICS(t *testing.T) {
	// Arrange
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC) // a Monday
	end := time.Date(2026, time.April, 24, 0, 0, 0, 0, time.UTC)

	// Act
	var buf bytes.Buffer
	err := WriteICS(&buf, testCombination(t), start, end)

	// Assert
	assert.Nil(t, err)
	serialized := buf.String()
	assert.Equal(t, 3, strings.Count(serialized, "BEGIN:VEVENT"))
	assert.Contains(t, serialized, "SUMMARY:ITSC 320 - Section A")
	assert.Contains(t, serialized, "SUMMARY:CPSY 300 - Section B")
	assert.Contains(t, serialized, "RRULE:FREQ=WEEKLY;UNTIL=20260424T000000Z")
	assert.Contains(t, serialized, "LOCATION:NN108")
	// A TBA instructor must not become an organizer.
	assert.Equal(t, 2, strings.Count(serialized, "ORGANIZER"))
}

func TestWriteICSSkipsMeetingsBeyondSemester(t *testing.T) {
	// Arrange: a window covering Monday and Tuesday only, so the Wednesday
	// meeting never occurs.
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC)

	// Act
	var buf bytes.Buffer
	err := WriteICS(&buf, testCombination(t), start, end)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "BEGIN:VEVENT"))
}

func TestWriteICSRejectsInvertedWindow(t *testing.T) {
	start := time.Date(2026, time.April, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	assert.NotNil(t, WriteICS(&buf, testCombination(t), start, end))
}

func TestWriteWorkbook(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "schedules.xlsx")
	results := []engine.ScoredResult{
		{Score: 2800, Size: 2, Combination: testCombination(t)},
	}

	// Act
	err := WriteWorkbook(path, results)

	// Assert
	assert.Nil(t, err)

	f, err := excelize.OpenFile(path)
	assert.Nil(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	assert.Nil(t, err)
	assert.Equal(t, "Schedule: 2 classes, score 2800", title)

	header, err := f.GetCellValue(sheetName, "B2")
	assert.Nil(t, err)
	assert.Equal(t, "Monday", header)

	// 08:00 row, Monday column.
	cell, err := f.GetCellValue(sheetName, "B3")
	assert.Nil(t, err)
	assert.Contains(t, cell, "ITSC 320")
}

func TestCourseColorDeterministic(t *testing.T) {
	// Act
	first := courseColor("ITSC 320")
	second := courseColor("ITSC 320")
	other := courseColor("CPSY 300")

	// Assert
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 6)
}
