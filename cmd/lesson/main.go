package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/luminfarm/chromabot/internal/collab"
	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/lesson"
	"github.com/luminfarm/chromabot/internal/session"
	"github.com/luminfarm/chromabot/internal/store"
	"github.com/luminfarm/chromabot/internal/workflow"
)

// #region main
func main() {
	dbPath := envOr("CHROMABOT_DB", "chromabot.db")

	st, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	mgr, err := session.NewManager(st)
	if err != nil {
		log.Fatalf("failed to load session: %v", err)
	}
	client := collab.NewStubClient(collab.DefaultConfig())
	l := lesson.New(mgr, client, st)

	fmt.Println("Chromabot lesson console ready.")
	fmt.Printf("  DB: %s | Student: %s\n", dbPath, l.State().StudentID)
	fmt.Println("Type 'help' for commands, 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		runCommand(l, line)
	}
}

// #endregion main

// #region commands

func runCommand(l *lesson.Lesson, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "help":
		printHelp()
	case "status":
		printStatus(l)
	case "scan":
		printScan(l)
	case "hour":
		if len(args) != 1 {
			fmt.Println("usage: hour <0-23.9>")
			return
		}
		h, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Printf("bad hour %q\n", args[0])
			return
		}
		l.SetHour(h)
		fmt.Printf("clock set to %.1f (%s)\n", l.Hour(), environ.TimeOfDay(l.Hour()))
	case "place":
		coords, ok := parseTriple(args)
		if !ok {
			fmt.Println("usage: place <x> <y> <z>")
			return
		}
		report(l.PlaceRobot(coords), func() {
			fmt.Printf("robot placed at (%d, %d, %d)\n", coords.X, coords.Y, coords.Z)
		})
	case "upload":
		if len(args) != 1 {
			fmt.Println("usage: upload <image-ref>")
			return
		}
		report(l.Upload(args[0]), func() {
			fmt.Printf("drawing %s recorded\n", args[0])
		})
	case "verify":
		cv, err := l.Verify(ctx)
		report(err, func() {
			fmt.Printf("vision check: accuracy %.1f, confidence %.1f\n", cv.Accuracy, cv.Confidence)
			if len(cv.DetectedObjects) > 0 {
				fmt.Printf("detected: %s\n", strings.Join(cv.DetectedObjects, ", "))
			}
		})
	case "coords":
		coords, ok := parseTriple(args)
		if !ok {
			fmt.Println("usage: coords <x> <y> <z>")
			return
		}
		report(l.SubmitCoordinates(coords), func() {
			fmt.Printf("coordinates (%d, %d, %d) recorded\n", coords.X, coords.Y, coords.Z)
		})
	case "predict":
		c, ok := parseTriple(args)
		if !ok {
			fmt.Println("usage: predict <r> <g> <b>")
			return
		}
		guess := environ.RGB{R: c.X, G: c.Y, B: c.Z}
		report(l.SubmitPrediction(ctx, guess), func() {
			fmt.Printf("prediction %s recorded\n", swatch(guess))
		})
	case "compare":
		cmp, err := l.Compare()
		report(err, func() { printComparison(cmp) })
	case "chat":
		if len(args) == 0 {
			fmt.Println("usage: chat <question>")
			return
		}
		reply, err := l.Chat(ctx, strings.Join(args, " "))
		report(err, func() {
			fmt.Printf("tutor: %s\n", reply)
		})
	case "finish":
		rec, err := l.Finish(ctx)
		report(err, func() {
			fmt.Printf("run saved: result %s, accuracy %.1f, plant %s\n", rec.ResultID, rec.Accuracy, rec.PlantState)
		})
	case "reset":
		report(l.Reset(), func() {
			fmt.Printf("fresh session: %s\n", l.State().StudentID)
		})
	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
}

func printHelp() {
	fmt.Println("commands:")
	fmt.Println("  status                  show workflow progress")
	fmt.Println("  scan                    environmental scan at the robot")
	fmt.Println("  hour <h>                set the simulated time of day")
	fmt.Println("  place <x> <y> <z>       step 1: place the robot (0-255 each)")
	fmt.Println("  upload <ref>            step 2: record your drawing")
	fmt.Println("  verify                  step 3: run the vision check")
	fmt.Println("  coords <x> <y> <z>      step 4: read back the coordinates")
	fmt.Println("  predict <r> <g> <b>     step 5: guess the color")
	fmt.Println("  compare                 step 6: score your guess")
	fmt.Println("  chat <question>         step 7: ask the tutor")
	fmt.Println("  finish                  save the completed run")
	fmt.Println("  reset                   start over with a new identity")
}

// #endregion commands

// #region output

func printStatus(l *lesson.Lesson) {
	st := l.State()
	fmt.Printf("student %s, progress %.0f%%\n", st.StudentID, st.Progress())
	for _, step := range workflow.Steps {
		mark := " "
		if st.StepCompleted(step.ID) {
			mark = color.GreenString("x")
		}
		cursor := " "
		if step.ID == st.CurrentStep {
			cursor = ">"
		}
		fmt.Printf(" %s [%s] %s - %s\n", cursor, mark, step.ID, step.Title)
	}
}

func printScan(l *lesson.Lesson) {
	res := l.Scan()
	fmt.Printf("scan at (%.2f, %.2f, %.2f), hour %.1f (%s)\n",
		res.Position.X, res.Position.Y, res.Position.Z, res.Hour, res.TimeOfDay)
	fmt.Printf("  soil: %s (quality %.2f)  sunlight %.2f  water %.2f  temp %.1fC\n",
		res.Terrain.SoilName, res.Terrain.SoilQuality, res.Terrain.Sunlight, res.Terrain.Water, res.Terrain.Temperature)
	fmt.Printf("  plant: %s (health %.2f) %s  growth %.2f\n",
		res.Plant.State, res.Plant.Health, swatch(res.Plant.Color), res.GrowthPotential)
	for _, r := range res.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
}

func printComparison(cmp lesson.Comparison) {
	fmt.Printf("yours %s (%s) vs AI %s (%s)\n",
		swatch(cmp.StudentRGB), cmp.StudentState, swatch(cmp.AIRGB), cmp.AIState)
	for _, m := range cmp.Metrics {
		mark := color.RedString("FAIL")
		if m.Pass {
			mark = color.GreenString("PASS")
		}
		fmt.Printf("  %-10s %6.1f  %s\n", m.Name, m.Value, mark)
	}
	verdict := color.YellowString("close, but not a match")
	if cmp.Matched {
		verdict = color.GreenString("match!")
	}
	fmt.Printf("overall %.1f - %s\n", cmp.Overall, verdict)
}

// swatch renders an RGB triple as a true-color block plus its values.
func swatch(c environ.RGB) string {
	block := color.RGB(c.R, c.G, c.B).Sprint("███")
	return fmt.Sprintf("%s (%d, %d, %d)", block, c.R, c.G, c.B)
}

// report prints the error from a step, or runs onSuccess.
func report(err error, onSuccess func()) {
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	onSuccess()
}

// #endregion output

// #region helpers

func parseTriple(args []string) (session.Coordinates, bool) {
	if len(args) != 3 {
		return session.Coordinates{}, false
	}
	vals := make([]int, 3)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return session.Coordinates{}, false
		}
		vals[i] = v
	}
	return session.Coordinates{X: vals[0], Y: vals[1], Z: vals[2]}, true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
