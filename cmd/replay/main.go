package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/luminfarm/chromabot/internal/replay"
	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to chromabot.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/chromabot.db")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	summary, mismatches, err := replay.RunFixture(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay fixture: %v\n", err)
		return 2
	}

	if f.Description != "" {
		fmt.Printf("fixture: %s\n", f.Description)
	}
	fmt.Printf("replayed %d actions, final step %s, progress %.0f%%\n",
		summary.TotalActions, summary.FinalStep, summary.FinalState.Progress())
	if summary.ChatMessages > 0 {
		fmt.Printf("chat messages: %d\n", summary.ChatMessages)
	}

	if len(mismatches) == 0 {
		fmt.Println("\nall expectations met")
		return 0
	}
	fmt.Printf("\n%d expectation(s) failed:\n", len(mismatches))
	for _, m := range mismatches {
		fmt.Printf("  - %s\n", m)
	}
	return 1
}

// #endregion fixture-mode

// #region db-mode

// eventDetail mirrors the progress snapshot stored with each event.
type eventDetail struct {
	CurrentStep string  `json:"currentStep"`
	Progress    float64 `json:"progress"`
}

// runDBMode prints the event timeline and checks that the last recorded
// snapshot agrees with the stored session slot.
func runDBMode(dbPath string) int {
	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer st.Close()

	events, err := st.ListEvents("", 1000)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list events: %v\n", err)
		return 2
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stderr, "no events recorded")
		return 2
	}

	fmt.Printf("%-4s| %-26s| %-12s| %s\n", "#", "Action", "Step", "Progress")
	var last *eventDetail
	for i, ev := range events {
		step, progress := "-", "-"
		if ev.DetailJSON != "" {
			var d eventDetail
			if err := json.Unmarshal([]byte(ev.DetailJSON), &d); err == nil {
				step = d.CurrentStep
				progress = fmt.Sprintf("%.0f%%", d.Progress)
				last = &d
			}
		}
		fmt.Printf("%-4d| %-26s| %-12s| %s\n", i+1, ev.Action, step, progress)
	}

	data, ok, err := st.LoadSlot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load slot: %v\n", err)
		return 2
	}
	if !ok || last == nil {
		fmt.Println("\nno stored slot to check against")
		return 0
	}

	s := session.Restore(data)
	fmt.Printf("\nslot: step %s, progress %.0f%%\n", s.CurrentStep, s.Progress())
	if string(s.CurrentStep) != last.CurrentStep || s.Progress() != last.Progress {
		fmt.Println("slot diverges from the last event snapshot")
		return 1
	}
	fmt.Println("slot agrees with the event log")
	return 0
}

// #endregion db-mode
