package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/saladstik/schedulebuilder/internal/export"
	"github.com/saladstik/schedulebuilder/internal/logger"
	"github.com/saladstik/schedulebuilder/internal/source"
	"github.com/saladstik/schedulebuilder/pkg/engine"
)

var (
	generateInput    string
	generateMandatory []string
	generateFreeDays []string
	generateMaxSize  int
	generateOpenOnly bool
	generateTop      int
	generateForce    bool
	generateICS      string
	generateXLSX     string
	semesterStart    string
	semesterEnd      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Enumerate, rank and export schedule combinations",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "sections file: a registration-system search response (json)")
	generateCmd.Flags().StringSliceVarP(&generateMandatory, "mandatory", "m", nil, `courses that must appear, e.g. "ITSC 320"; also narrows the pool to these courses`)
	generateCmd.Flags().StringSliceVarP(&generateFreeDays, "free-days", "d", nil, "days that should carry no classes, e.g. Friday")
	generateCmd.Flags().IntVar(&generateMaxSize, "max-size", 0, "maximum classes per combination (0 = distinct courses, capped)")
	generateCmd.Flags().BoolVar(&generateOpenOnly, "open-only", true, "only consider sections with available seats")
	generateCmd.Flags().IntVarP(&generateTop, "top", "t", 5, "number of ranked combinations to print")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "enumerate even when the pool exceeds the configured guard")
	generateCmd.Flags().StringVar(&generateICS, "ics", "", "write the best combination as an ICS calendar to this path")
	generateCmd.Flags().StringVar(&generateXLSX, "xlsx", "", "write all ranked combinations as an XLSX workbook to this path")
	generateCmd.Flags().StringVar(&semesterStart, "semester-start", "", "first day of the semester (2006-01-02), for the ICS export")
	generateCmd.Flags().StringVar(&semesterEnd, "semester-end", "", "last day of the semester (2006-01-02), for the ICS export")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("generate")
	runID := uuid.NewString()

	sections, err := source.LoadFile(generateInput, generateOpenOnly)
	if err != nil {
		return fmt.Errorf("load sections: %w", err)
	}

	pool := source.FilterCourses(sections, generateMandatory)
	if len(pool) == 0 {
		fmt.Println("No candidate sections to enumerate; nothing to do.")
		return nil
	}
	// Exhaustive enumeration is exponential in the pool; refuse oversized
	// pools unless explicitly forced.
	if len(pool) > cfg.Pool.MaxSections && !generateForce {
		return fmt.Errorf("pool has %d sections, above the guard of %d; narrow the pool or rerun with --force", len(pool), cfg.Pool.MaxSections)
	}

	freeDays, err := parseDays(generateFreeDays)
	if err != nil {
		return err
	}

	maxSize := generateMaxSize
	if maxSize == 0 {
		maxSize = cfg.Pool.MaxSize
	}
	constraints := engine.ConstraintSet{
		MandatoryCourses: generateMandatory,
		FreeDays:         freeDays,
		MaxSize:          maxSize,
	}

	log.Infof("run %v: enumerating %d sections (max size %d)", runID, len(pool), constraints.EffectiveMaxSize(pool))
	started := time.Now()
	enumerator := engine.NewEnumerator(engine.NewScorer(cfg.Weights.Engine()))
	results := enumerator.Enumerate(pool, constraints)
	log.Infof("run %v: examined %d subsets in %v", runID, results.Stats.Examined, time.Since(started))

	if results.Empty() {
		fmt.Println("No valid schedule combinations found.")
		fmt.Printf("Examined %d subsets: %d rejected for time conflicts, %d for duplicate courses.\n",
			results.Stats.Examined, results.Stats.ConflictRejected, results.Stats.DuplicateRejected)
		fmt.Println("Try adding sections with different time slots.")
		return nil
	}

	printSummary(results)

	browser := engine.NewBrowser(results)
	for i := 0; i < min(generateTop, results.Len()); i++ {
		if err := browser.JumpTo(i); err != nil {
			return err
		}
		current, err := browser.Current()
		if err != nil {
			return err
		}
		printResult(i, current)
	}

	if generateXLSX != "" {
		if err := export.WriteWorkbook(generateXLSX, results.Results); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		log.Infof("run %v: workbook written to %v", runID, generateXLSX)
	}

	if generateICS != "" {
		if err := writeBestICS(cfg.Export.SemesterStart, cfg.Export.SemesterEnd, browser); err != nil {
			return err
		}
		log.Infof("run %v: calendar written to %v", runID, generateICS)
	}

	return nil
}

func printSummary(results engine.ResultSet) {
	fmt.Printf("Found %d possible schedule combinations.\n", results.Len())
	fmt.Printf("Best schedules have %d classes.\n", results.Results[0].Size)
	if perfect := results.PerfectMatches(); perfect > 0 {
		fmt.Printf("%d schedules match all criteria (mandatory courses + free days).\n", perfect)
	} else if mandatory := results.MandatoryMatches(); mandatory > 0 {
		fmt.Printf("%d schedules include all mandatory courses but break a free day.\n", mandatory)
	} else {
		fmt.Println("No schedule includes all mandatory courses; showing best available options.")
	}
	fmt.Println()
}

func printResult(index int, result engine.ScoredResult) {
	fmt.Printf("#%d  score %d, %d classes", index+1, result.Score, result.Size)
	var marks []string
	if result.AllMandatory {
		marks = append(marks, "all mandatory")
	}
	if result.FreeDaysKept {
		marks = append(marks, "free days kept")
	}
	if len(marks) > 0 {
		fmt.Printf("  (%v)", strings.Join(marks, ", "))
	}
	fmt.Println()

	for _, section := range result.Combination {
		fmt.Printf("  %v  %v\n", section.Label(), section.Instructor)
		for _, meeting := range section.Meetings {
			fmt.Printf("    %v\n", meeting)
		}
	}
	fmt.Println()
}

func writeBestICS(cfgStart, cfgEnd string, browser *engine.Browser) error {
	// Flags win over the config file.
	start := semesterStart
	if start == "" {
		start = cfgStart
	}
	end := semesterEnd
	if end == "" {
		end = cfgEnd
	}
	if start == "" || end == "" {
		return fmt.Errorf("the ICS export needs --semester-start and --semester-end (or the export config section)")
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("parse semester start: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return fmt.Errorf("parse semester end: %w", err)
	}

	browser.First()
	best, err := browser.Current()
	if err != nil {
		return err
	}

	file, err := os.Create(generateICS)
	if err != nil {
		return fmt.Errorf("create calendar file: %w", err)
	}
	defer file.Close()
	return export.WriteICS(file, best.Combination, startDate, endDate)
}

func parseDays(names []string) ([]engine.Day, error) {
	days := make([]engine.Day, 0, len(names))
	for _, name := range names {
		day, err := engine.ParseDay(name)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return lo.Uniq(days), nil
}
