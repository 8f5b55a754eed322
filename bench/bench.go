// Package bench runs the naive and optimized render paths head to head
// without a terminal, so the contrast the demo shows can be measured instead
// of eyeballed. Workloads come from a TOML scenario file or from a built-in
// default set.
package bench

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"showcase/catalog"
	"showcase/catalog/derive"
	"showcase/log"
	"showcase/ui"

	toml "github.com/pelletier/go-toml/v2"
)

// Scenario describes one measured workload.
type Scenario struct {
	Name    string `toml:"name"`
	Items   int    `toml:"items"`
	Seed    int64  `toml:"seed"`
	Frames  int    `toml:"frames"`
	Filter  string `toml:"filter"`
	SortKey string `toml:"sort_key"`
	Width   int    `toml:"width"`
}

type scenarioFile struct {
	Scenarios []Scenario `toml:"scenario"`
}

// DefaultScenarios covers the catalog sizes the demo is built around.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "small", Items: 1000, Frames: 200},
		{Name: "full-catalog", Items: catalog.DefaultItemCount, Frames: 200},
		{Name: "filtered", Items: catalog.DefaultItemCount, Frames: 200, Filter: "a"},
		{Name: "price-sorted", Items: catalog.DefaultItemCount, Frames: 200, SortKey: "price"},
	}
}

// LoadScenarios reads scenarios from a TOML file. An empty path yields the
// default set.
func LoadScenarios(path string) ([]Scenario, error) {
	if path == "" {
		return DefaultScenarios(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	var file scenarioFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return file.Scenarios, nil
}

// WriteDefaultScenarios writes the default scenario set to path as a
// starting point for custom workload files.
func WriteDefaultScenarios(path string) error {
	data, err := toml.Marshal(scenarioFile{Scenarios: DefaultScenarios()})
	if err != nil {
		return fmt.Errorf("marshal scenarios: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create scenario dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scenarios: %w", err)
	}
	return nil
}

// Result is one mode's measurements for one scenario.
type Result struct {
	Scenario string
	Mode     string
	Frames   int
	Elapsed  time.Duration

	// Recomputes is how often the derive engine did real work.
	Recomputes uint64
	// RowsBuilt is how many row visuals were produced across all frames.
	RowsBuilt uint64

	// frameTimes is sorted ascending after the run.
	frameTimes []time.Duration
}

// Avg returns the mean frame time.
func (r Result) Avg() time.Duration {
	if len(r.frameTimes) == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(len(r.frameTimes))
}

// P50 returns the median frame time.
func (r Result) P50() time.Duration { return r.percentile(50) }

// P95 returns the 95th percentile frame time.
func (r Result) P95() time.Duration { return r.percentile(95) }

// Max returns the slowest frame time.
func (r Result) Max() time.Duration {
	if len(r.frameTimes) == 0 {
		return 0
	}
	return r.frameTimes[len(r.frameTimes)-1]
}

func (r Result) percentile(p int) time.Duration {
	if len(r.frameTimes) == 0 {
		return 0
	}
	return r.frameTimes[len(r.frameTimes)*p/100]
}

// Run measures every scenario in both modes and writes a report to w.
func Run(w io.Writer, scenarios []Scenario) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("no scenarios to run")
	}

	for i, sc := range scenarios {
		sc = sc.withDefaults(i)
		log.InfoLog.Printf("bench: running scenario %q (%d items, %d frames)", sc.Name, sc.Items, sc.Frames)

		optimized := runScenario(sc, false)
		naive := runScenario(sc, true)

		fmt.Fprintf(w, "=== %s: %d items, %d frames", sc.Name, sc.Items, sc.Frames)
		if sc.Filter != "" {
			fmt.Fprintf(w, ", filter %q", sc.Filter)
		}
		if sc.SortKey != "" {
			fmt.Fprintf(w, ", sort %s", sc.SortKey)
		}
		fmt.Fprintf(w, " ===\n")

		printResult(w, optimized)
		printResult(w, naive)

		if avg := optimized.Avg(); avg > 0 {
			fmt.Fprintf(w, "  speedup:   %.1fx\n", float64(naive.Avg())/float64(avg))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printResult(w io.Writer, r Result) {
	fmt.Fprintf(w, "  %-10s avg %-10v p50 %-10v p95 %-10v max %-10v recomputes %-6d rows built %d\n",
		r.Mode+":", r.Avg(), r.P50(), r.P95(), r.Max(), r.Recomputes, r.RowsBuilt)
}

// withDefaults fills the gaps a sparse scenario entry leaves.
func (sc Scenario) withDefaults(i int) Scenario {
	if sc.Name == "" {
		sc.Name = fmt.Sprintf("scenario-%d", i+1)
	}
	if sc.Items <= 0 {
		sc.Items = catalog.DefaultItemCount
	}
	if sc.Frames <= 0 {
		sc.Frames = 200
	}
	if sc.Width <= 0 {
		sc.Width = 100
	}
	return sc
}

// runScenario drives one mode through the scenario's frame count, moving the
// selection each frame the way held arrow keys would.
func runScenario(sc Scenario, naive bool) Result {
	items := catalog.Generate(sc.Items, sc.Seed)
	engine := derive.NewEngine()
	renderer := ui.NewRowRenderer()

	key := derive.SortByName
	if sc.SortKey == "price" {
		key = derive.SortByPrice
	}

	window := ui.NewWindow(renderer, 0, 0, 0)
	window.SetSize(sc.Width)
	naivePane := ui.NewNaivePane(renderer, 0, 0)
	naivePane.SetSize(sc.Width)

	mode := "optimized"
	if naive {
		mode = "naive"
	}

	progress := log.NewEvery(time.Second)
	frameTimes := make([]time.Duration, 0, sc.Frames)

	start := time.Now()
	for frame := 0; frame < sc.Frames; frame++ {
		frameStart := time.Now()

		if naive {
			rows, _ := engine.ComputeFresh(items, sc.Filter, key)
			naivePane.SetRows(rows)
			if frame%2 == 0 {
				naivePane.Down()
			} else {
				naivePane.Up()
			}
			_ = naivePane.String()
		} else {
			rows, _ := engine.Compute(items, sc.Filter, key)
			window.SetRows(rows)
			if frame%2 == 0 {
				window.Down()
			} else {
				window.Up()
			}
			_ = window.String()
		}

		frameTimes = append(frameTimes, time.Since(frameStart))
		if progress.ShouldLog() {
			log.InfoLog.Printf("bench %s/%s: frame %d/%d", sc.Name, mode, frame+1, sc.Frames)
		}
	}
	elapsed := time.Since(start)

	sort.Slice(frameTimes, func(i, j int) bool { return frameTimes[i] < frameTimes[j] })

	return Result{
		Scenario:   sc.Name,
		Mode:       mode,
		Frames:     sc.Frames,
		Elapsed:    elapsed,
		Recomputes: engine.Recomputes(),
		RowsBuilt:  renderer.Renders(),
		frameTimes: frameTimes,
	}
}
