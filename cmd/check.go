package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saladstik/schedulebuilder/internal/source"
	"github.com/saladstik/schedulebuilder/pkg/engine"
)

var (
	checkInput    string
	checkOpenOnly bool
)

var checkCmd = &cobra.Command{
	Use:   `check "COURSE SECTION"...`,
	Short: "Explain time conflicts between specific sections",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "sections file: a registration-system search response (json)")
	checkCmd.Flags().BoolVar(&checkOpenOnly, "open-only", false, "only consider sections with available seats")
	_ = checkCmd.MarkFlagRequired("input")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pool, err := source.LoadFile(checkInput, checkOpenOnly)
	if err != nil {
		return fmt.Errorf("load sections: %w", err)
	}

	selected := make([]engine.Section, 0, len(args))
	for _, arg := range args {
		section, err := resolveSection(pool, arg)
		if err != nil {
			return err
		}
		selected = append(selected, section)
	}

	clean := true

	duplicates := duplicateCourses(selected)
	for _, course := range duplicates {
		clean = false
		fmt.Printf("Duplicate course: %v appears more than once.\n", course)
	}

	for _, pair := range engine.Explain(selected) {
		clean = false
		fmt.Printf("Conflict: %v vs %v\n", pair.A.Label(), pair.B.Label())
		for _, overlap := range pair.Overlaps {
			fmt.Printf("  %v overlaps %v\n", overlap.A, overlap.B)
		}
	}

	if clean {
		fmt.Printf("No conflicts among %d sections.\n", len(selected))
		return nil
	}
	return fmt.Errorf("the selected sections do not form a valid schedule")
}

// resolveSection splits "ITSC 320 A" on its last space into a course and a
// section identifier and looks the pair up in the pool.
func resolveSection(pool []engine.Section, arg string) (engine.Section, error) {
	cut := strings.LastIndex(strings.TrimSpace(arg), " ")
	if cut < 0 {
		return engine.Section{}, fmt.Errorf("%q is not of the form \"COURSE SECTION\"", arg)
	}
	course, id := strings.TrimSpace(arg)[:cut], strings.TrimSpace(arg)[cut+1:]

	for _, section := range pool {
		if section.Course == course && section.ID == id {
			return section, nil
		}
	}
	return engine.Section{}, fmt.Errorf("section %v-%v not found in %v", course, id, checkInput)
}

func duplicateCourses(sections []engine.Section) []string {
	seen := make(map[string]int)
	var duplicates []string
	for _, section := range sections {
		seen[section.Course]++
		if seen[section.Course] == 2 {
			duplicates = append(duplicates, section.Course)
		}
	}
	return duplicates
}
