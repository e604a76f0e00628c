package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "chromabot.db", "path to the session database")
	showState := flag.Bool("state", false, "print the stored session state")
	showEvents := flag.Bool("events", false, "print the session event log")
	showResults := flag.Bool("results", false, "print saved lesson results")
	student := flag.String("student", "", "filter events by student id")
	limit := flag.Int("limit", 50, "maximum rows to print")
	flag.Parse()

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(2)
	}
	defer st.Close()

	// No selector prints everything.
	all := !*showState && !*showEvents && !*showResults

	exitCode := 0
	if *showState || all {
		if err := printState(st); err != nil {
			fmt.Fprintf(os.Stderr, "state: %v\n", err)
			exitCode = 1
		}
	}
	if *showEvents || all {
		if err := printEvents(st, *student, *limit); err != nil {
			fmt.Fprintf(os.Stderr, "events: %v\n", err)
			exitCode = 1
		}
	}
	if *showResults || all {
		if err := printResults(st, *limit); err != nil {
			fmt.Fprintf(os.Stderr, "results: %v\n", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// #endregion main

// #region state

func printState(st *store.Store) error {
	data, ok, err := st.LoadSlot()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("== Session ==")
		fmt.Println("(no stored session)")
		return nil
	}

	s := session.Restore(data)
	fmt.Println("== Session ==")
	fmt.Printf("student        %s\n", s.StudentID)
	fmt.Printf("current step   %s\n", s.CurrentStep)
	fmt.Printf("progress       %.0f%%\n", s.Progress())
	fmt.Printf("completed      %v\n", s.CompletedSteps)
	fmt.Printf("robot          (%d, %d, %d)\n", s.RobotCoordinates.X, s.RobotCoordinates.Y, s.RobotCoordinates.Z)
	if s.UploadedImage != nil {
		fmt.Printf("upload         %s\n", *s.UploadedImage)
	}
	if s.CVResult != nil {
		fmt.Printf("cv accuracy    %.1f\n", s.CVResult.Accuracy)
	}
	if s.AIRGB != nil {
		fmt.Printf("prediction     %s vs AI %s\n", swatch(s.StudentRGB), swatch(*s.AIRGB))
	}
	fmt.Printf("chat messages  %d\n", len(s.ChatHistory))
	return nil
}

// #endregion state

// #region events

func printEvents(st *store.Store, student string, limit int) error {
	events, err := st.ListEvents(student, limit)
	if err != nil {
		return err
	}

	fmt.Println("\n== Events ==")
	if len(events) == 0 {
		fmt.Println("(none)")
		return nil
	}
	fmt.Printf("%-28s| %-26s| %s\n", "Time", "Action", "Detail")
	for _, ev := range events {
		detail := ev.DetailJSON
		if detail != "" {
			detail = compactDetail(detail)
		}
		fmt.Printf("%-28s| %-26s| %s\n", ev.CreatedAt.Format(time.RFC3339), ev.Action, detail)
	}
	return nil
}

// compactDetail re-renders a detail blob on one line, passing through
// anything that is not valid JSON.
func compactDetail(detail string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(detail), &v); err != nil {
		return detail
	}
	out, err := json.Marshal(v)
	if err != nil {
		return detail
	}
	return string(out)
}

// #endregion events

// #region results

func printResults(st *store.Store, limit int) error {
	results, err := st.ListResults(limit)
	if err != nil {
		return err
	}

	fmt.Println("\n== Results ==")
	if len(results) == 0 {
		fmt.Println("(none)")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%s  %s\n", r.CreatedAt.Format(time.RFC3339), r.ResultID)
		fmt.Printf("  student  %s\n", r.StudentID)
		fmt.Printf("  robot    (%d, %d, %d)\n", r.RobotCoordinates.X, r.RobotCoordinates.Y, r.RobotCoordinates.Z)
		line := fmt.Sprintf("  guess    %s", swatch(environ.RGB{R: r.StudentRGB.R, G: r.StudentRGB.G, B: r.StudentRGB.B}))
		if r.AIRGB != nil {
			line += fmt.Sprintf(" vs AI %s", swatch(environ.RGB{R: r.AIRGB.R, G: r.AIRGB.G, B: r.AIRGB.B}))
		}
		fmt.Println(line)
		fmt.Printf("  accuracy %.1f, plant %s\n", r.Accuracy, r.PlantState)
	}
	return nil
}

// #endregion results

// #region helpers

func swatch(c environ.RGB) string {
	block := color.RGB(c.R, c.G, c.B).Sprint("███")
	return fmt.Sprintf("%s (%d, %d, %d)", block, c.R, c.G, c.B)
}

// #endregion helpers
