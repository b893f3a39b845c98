package tables

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/fsutil"
)

const durationSuffix = "_dur.txt"

// Loader is the legacy table implementation of config.Loader.
type Loader struct {
	// SolutionDir, when set, is searched for expert solutions by base name
	// instead of the instance's own directory.
	SolutionDir string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a table loader.
func NewLoader(solutionDir string) *Loader {
	return &Loader{SolutionDir: solutionDir}
}

// Load finds every <prefix>_dur.txt under paths and reads its instance.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.Instance, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, durationSuffix)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered duration tables.", "count", len(files))

	out := make([]*config.Instance, 0, len(files))
	for _, file := range files {
		inst, err := l.loadPrefix(strings.TrimSuffix(file, durationSuffix))
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	logger.Debug("Table loading complete.", "instances", len(out))
	return out, nil
}

func (l *Loader) loadPrefix(prefix string) (*config.Instance, error) {
	inst := &config.Instance{Name: filepath.Base(prefix), Source: prefix}

	durations, err := readTable(prefix + durationSuffix)
	if err != nil {
		return nil, err
	}
	inst.Durations = durations

	ddlPath := prefix + "_ddl.txt"
	ddl, _, err := readOptional(ddlPath)
	if err != nil {
		return nil, err
	}
	if err := requireWidth(ddlPath, ddl, 2); err != nil {
		return nil, err
	}
	for _, row := range ddl {
		inst.Deadlines = append(inst.Deadlines, config.Deadline{Task: row[0], Bound: row[1]})
	}

	waitPath := prefix + "_wait.txt"
	waits, _, err := readOptional(waitPath)
	if err != nil {
		return nil, err
	}
	if err := requireWidth(waitPath, waits, 3); err != nil {
		return nil, err
	}
	for _, row := range waits {
		inst.Waits = append(inst.Waits, config.Wait{Task: row[0], After: row[1], Gap: row[2]})
	}

	locPath := prefix + "_loc.txt"
	locs, err := readTable(locPath)
	if err != nil {
		return nil, fmt.Errorf("instance %s: %w", inst.Name, err)
	}
	if err := requireWidth(locPath, locs, 2); err != nil {
		return nil, err
	}
	for _, row := range locs {
		inst.Locations = append(inst.Locations, config.Location{X: row[0], Y: row[1]})
	}

	sol, err := l.loadSolution(prefix, inst.NumRobots())
	if err != nil {
		return nil, err
	}
	inst.Solution = sol
	return inst, nil
}

// loadSolution reads the expert solution if its order file exists. Robots
// without a sequence file get an empty sequence.
func (l *Loader) loadSolution(prefix string, numRobots int) (*config.Solution, error) {
	solPrefix := prefix
	if l.SolutionDir != "" {
		solPrefix = filepath.Join(l.SolutionDir, filepath.Base(prefix))
	}

	order, ok, err := readOptional(solPrefix + "_w.txt")
	if err != nil || !ok {
		return nil, err
	}

	sol := &config.Solution{Order: flatten(order), Robots: make([][]int, numRobots)}
	for r := range sol.Robots {
		seq, _, err := readOptional(fmt.Sprintf("%s_%d.txt", solPrefix, r))
		if err != nil {
			return nil, err
		}
		sol.Robots[r] = flatten(seq)
	}
	return sol, nil
}
