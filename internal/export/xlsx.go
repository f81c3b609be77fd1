package export

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/saladstik/schedulebuilder/pkg/engine"
)

const sheetName = "Schedules"

// interval is one grid row: a start/end pair shared across day columns.
type interval struct {
	Start engine.ClockTime
	End   engine.ClockTime
}

// WriteWorkbook writes one timetable grid per scored result into a single
// sheet, best-ranked first, mirroring the weekly layout students read their
// schedules in. Weekend columns appear only when a combination occupies
// them.
func WriteWorkbook(path string, results []engine.ScoredResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return fmt.Errorf("build styles: %w", err)
	}

	row := 1
	for _, result := range results {
		row, err = writeGrid(f, styles, row, result)
		if err != nil {
			return fmt.Errorf("write grid: %w", err)
		}
		// Blank rows between combinations.
		row += 3
	}

	if err := f.SetColWidth(sheetName, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "H", 25); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeGrid(f *excelize.File, styles styleSet, topRow int, result engine.ScoredResult) (int, error) {
	slots := engine.Slots(result.Combination)
	days := gridDays(slots)
	intervals := gridIntervals(slots)

	row := topRow
	title := fmt.Sprintf("Schedule: %d classes, score %d", result.Size, result.Score)
	if err := setCell(f, 1, row, title, styles.title); err != nil {
		return 0, err
	}
	row++

	// Header: Time column followed by the day columns.
	if err := setCell(f, 1, row, "Time", styles.header); err != nil {
		return 0, err
	}
	for i, day := range days {
		if err := setCell(f, i+2, row, day.String(), styles.header); err != nil {
			return 0, err
		}
	}

	for _, iv := range intervals {
		row++
		label := fmt.Sprintf("%v - %v", iv.Start, iv.End)
		if err := setCell(f, 1, row, label, styles.header); err != nil {
			return 0, err
		}

		for col, day := range days {
			section, meeting, occupied := sectionAt(result.Combination, day, iv)
			if !occupied {
				if err := setCell(f, col+2, row, "", styles.empty); err != nil {
					return 0, err
				}
				continue
			}

			content := fmt.Sprintf("%v\n(Section %v\nRoom: %v)", section.Course, section.ID, meeting.Location)
			style, err := styles.course(f, section.Course)
			if err != nil {
				return 0, err
			}
			if err := setCell(f, col+2, row, content, style); err != nil {
				return 0, err
			}
		}
	}

	return row + 1, nil
}

// gridDays returns the weekday columns: Monday through Friday always, the
// weekend days only when occupied.
func gridDays(slots []engine.Slot) []engine.Day {
	days := []engine.Day{engine.Monday, engine.Tuesday, engine.Wednesday, engine.Thursday, engine.Friday}
	for _, weekend := range []engine.Day{engine.Saturday, engine.Sunday} {
		if lo.SomeBy(slots, func(s engine.Slot) bool { return s.Day == weekend }) {
			days = append(days, weekend)
		}
	}
	return days
}

// gridIntervals collapses the slots into distinct start/end rows sorted by
// start time.
func gridIntervals(slots []engine.Slot) []interval {
	intervals := lo.Uniq(lo.Map(slots, func(s engine.Slot, _ int) interval {
		return interval{Start: s.Start, End: s.End}
	}))
	slices.SortFunc(intervals, func(a, b interval) int {
		if a.Start != b.Start {
			return int(a.Start) - int(b.Start)
		}
		return int(a.End) - int(b.End)
	})
	return intervals
}

func sectionAt(c engine.Combination, day engine.Day, iv interval) (engine.Section, engine.Meeting, bool) {
	for _, section := range c {
		for _, meeting := range section.Meetings {
			if meeting.Day == day && meeting.Start == iv.Start && meeting.End == iv.End {
				return section, meeting, true
			}
		}
	}
	return engine.Section{}, engine.Meeting{}, false
}

func setCell(f *excelize.File, col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, style)
}

type styleSet struct {
	title  int
	header int
	empty  int

	courseStyles map[string]int
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	border := []excelize.Border{
		{Type: "left", Color: "404040", Style: 1},
		{Type: "right", Color: "404040", Style: 1},
		{Type: "top", Color: "404040", Style: 1},
		{Type: "bottom", Color: "404040", Style: 1},
	}

	title, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return styleSet{}, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFD700"}, Pattern: 1},
		Border:    border,
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styleSet{}, err
	}

	empty, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return styleSet{}, err
	}

	return styleSet{title: title, header: header, empty: empty, courseStyles: map[string]int{}}, nil
}

// course returns a bordered, wrap-text style filled with the course's
// deterministic color, built once per course.
func (s styleSet) course(f *excelize.File, course string) (int, error) {
	if style, ok := s.courseStyles[course]; ok {
		return style, nil
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{courseColor(course)}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "404040", Style: 1},
			{Type: "right", Color: "404040", Style: 1},
			{Type: "top", Color: "404040", Style: 1},
			{Type: "bottom", Color: "404040", Style: 1},
		},
		Alignment: &excelize.Alignment{WrapText: true, Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, err
	}
	s.courseStyles[course] = style
	return style, nil
}
