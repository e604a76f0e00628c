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

// fixture-export snapshots the stored session into a replay fixture. The
// expected block is filled from the snapshot itself, so the exported file
// passes with an empty action list; edit actions in from there.
func main() {
	dbPath := flag.String("db", "chromabot.db", "path to the session database")
	outPath := flag.String("out", "fixture.json", "output fixture path")
	description := flag.String("description", "", "fixture description")
	flag.Parse()

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(2)
	}
	defer st.Close()

	data, ok, err := st.LoadSlot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load slot: %v\n", err)
		os.Exit(2)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "no stored session to export")
		os.Exit(2)
	}

	f := buildFixture(data, *description)

	out, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode fixture: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*outPath, append(out, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(2)
	}

	s := session.Restore(data)
	fmt.Printf("exported %s (student %s, step %s) to %s\n",
		*dbPath, s.StudentID, s.CurrentStep, *outPath)
}

// #endregion main

// #region build

func buildFixture(slot []byte, description string) replay.Fixture {
	s := session.Restore(slot)

	progress := s.Progress()
	chats := len(s.ChatHistory)
	completed := make([]string, len(s.CompletedSteps))
	for i, id := range s.CompletedSteps {
		completed[i] = string(id)
	}

	f := replay.Fixture{
		Description: description,
		StartState:  json.RawMessage(slot),
		Actions:     []replay.FixtureAction{},
		Expected: replay.FixtureExpected{
			CurrentStep:    string(s.CurrentStep),
			CompletedSteps: completed,
			Progress:       &progress,
			RobotCoordinates: &replay.FixtureCoords{
				X: s.RobotCoordinates.X,
				Y: s.RobotCoordinates.Y,
				Z: s.RobotCoordinates.Z,
			},
			ChatMessages: &chats,
		},
	}
	if s.AIRGB != nil {
		f.Expected.StudentRGB = &replay.FixtureRGB{
			R: s.StudentRGB.R,
			G: s.StudentRGB.G,
			B: s.StudentRGB.B,
		}
	}
	return f
}

// #endregion build
