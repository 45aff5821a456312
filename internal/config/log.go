package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// maxLogFiles bounds how many old daemon logs are kept around.
const maxLogFiles = 10

// OpenLogFile creates a timestamped daemon log under ~/.tintbar/logs/ and
// prunes the oldest files beyond the retention bound. The caller owns the
// returned file.
func OpenLogFile() (*os.File, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir: %w", err)
	}

	logsDir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}

	if err := pruneLogs(logsDir); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("tintbard-%s.log", time.Now().Format("2006-01-02T15-04-05"))
	f, err := os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return f, nil
}

// pruneLogs deletes the oldest daemon logs so at most maxLogFiles-1 remain
// before a new one is created.
func pruneLogs(logsDir string) error {
	entries, err := os.ReadDir(logsDir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "tintbard-") || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) < maxLogFiles {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(names)
	for _, name := range names[:len(names)-maxLogFiles+1] {
		if err := os.Remove(filepath.Join(logsDir, name)); err != nil {
			return err
		}
	}
	return nil
}
