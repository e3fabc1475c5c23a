package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/sgfost/pedestrians-with-cognitive-heuristics/config"
)

// OutputManager writes the recorded time series to an output directory:
// rows.csv with every sampled observation, windows.csv with the window
// summaries, and a copy of the run configuration.
type OutputManager struct {
	dir         string
	rowsFile    *os.File
	windowsFile *os.File

	rowsHeaderWritten    bool
	windowsHeaderWritten bool
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled); every method on a nil
// manager is a no-op.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "rows.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rows.csv: %w", err)
	}
	om.rowsFile = f

	f, err = os.Create(filepath.Join(dir, "windows.csv"))
	if err != nil {
		om.rowsFile.Close()
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowsFile = f

	return om, nil
}

// WriteConfig saves the run configuration as YAML next to the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRows appends observations to rows.csv, emitting the header on the
// first write only.
func (om *OutputManager) WriteRows(rows []Row) error {
	if om == nil || len(rows) == 0 {
		return nil
	}
	if !om.rowsHeaderWritten {
		if err := gocsv.Marshal(rows, om.rowsFile); err != nil {
			return fmt.Errorf("writing rows: %w", err)
		}
		om.rowsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, om.rowsFile); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return nil
}

// WriteWindows appends window summaries to windows.csv, emitting the
// header on the first write only.
func (om *OutputManager) WriteWindows(windows []WindowStats) error {
	if om == nil || len(windows) == 0 {
		return nil
	}
	if !om.windowsHeaderWritten {
		if err := gocsv.Marshal(windows, om.windowsFile); err != nil {
			return fmt.Errorf("writing windows: %w", err)
		}
		om.windowsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(windows, om.windowsFile); err != nil {
		return fmt.Errorf("writing windows: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if om.rowsFile != nil {
		if err := om.rowsFile.Close(); err != nil {
			firstErr = err
		}
	}
	if om.windowsFile != nil {
		if err := om.windowsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
