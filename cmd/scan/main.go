package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/luminfarm/chromabot/internal/environ"
	"github.com/luminfarm/chromabot/internal/scan"
	"github.com/luminfarm/chromabot/internal/session"
)

// #region main

func main() {
	x := flag.Int("x", 128, "robot X coordinate (0-255)")
	y := flag.Int("y", 128, "robot Y coordinate (0-255)")
	z := flag.Int("z", 128, "robot Z coordinate (0-255)")
	hour := flag.Float64("hour", 12, "simulated hour of day (0-23.9)")
	asJSON := flag.Bool("json", false, "emit the scan as JSON")
	flag.Parse()

	coords := session.Coordinates{X: *x, Y: *y, Z: *z}
	res := scan.At(coords.Normalized(), *hour)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "encode scan: %v\n", err)
			os.Exit(2)
		}
		return
	}

	printScan(res)
}

// #endregion main

// #region output

func printScan(res scan.Result) {
	// Echo the effective position back on the device scale; out-of-range
	// flag values were clamped by the scan.
	x := environ.Denormalize(res.Position.X)
	y := environ.Denormalize(res.Position.Y)
	z := environ.Denormalize(res.Position.Z)
	fmt.Printf("scan at (%d, %d, %d), hour %.1f (%s)\n", x, y, z, res.Hour, res.TimeOfDay)
	fmt.Printf("  soil        %s (quality %.2f)\n", res.Terrain.SoilName, res.Terrain.SoilQuality)
	fmt.Printf("  sunlight    %.2f\n", res.Terrain.Sunlight)
	fmt.Printf("  water       %.2f\n", res.Terrain.Water)
	fmt.Printf("  temperature %.1fC\n", res.Terrain.Temperature)
	fmt.Printf("  plant       %s (health %.2f) %s\n", res.Plant.State, res.Plant.Health, swatch(res.Plant.Color))
	fmt.Printf("  growth      %.2f\n", res.GrowthPotential)
	for _, r := range res.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
}

func swatch(c environ.RGB) string {
	block := color.RGB(c.R, c.G, c.B).Sprint("███")
	return fmt.Sprintf("%s (%d, %d, %d)", block, c.R, c.G, c.B)
}

// #endregion output
