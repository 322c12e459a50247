// Command simulate runs the world headless against a scripted input plan
// and logs where the player ended up.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/ingotown/assets"
	"github.com/automoto/ingotown/world"
)

func main() {
	dataDir := flag.String("data", "", "Load locations from this directory instead of the embedded data")
	planPath := flag.String("plan", "", "YAML input plan (required)")
	location := flag.String("location", "", "Location to start in, overrides the plan")
	flag.Parse()

	if *planPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*planPath)
	if err != nil {
		log.Fatalf("Failed to read plan: %v", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		log.Fatalf("Failed to parse plan: %v", err)
	}

	fsys := assets.Open(*dataDir)
	catalogue, err := assets.LoadCatalogue(fsys)
	if err != nil {
		log.Fatalf("Failed to load catalogue: %v", err)
	}

	start := plan.Location
	if *location != "" {
		start = *location
	}
	if start == "" {
		start = catalogue.Locations[0].ID
	}

	w := world.New(fsys, catalogue)
	if err := w.Load(start); err != nil {
		log.Fatalf("Failed to load location %q: %v", start, err)
	}
	log.Printf("Loaded location: %s, running %d frames", start, plan.Frames())

	r := Run(w, plan)
	for _, l := range r.Lines {
		log.Printf("frame %d: %s says %q", l.Frame, l.Name, l.Text)
	}
	log.Printf("Finished at frame %d in %s: player at (%.1f, %.1f) grounded=%v",
		r.Frame, r.Location, r.X, r.Y, r.Grounded)
}
