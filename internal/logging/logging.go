// Package logging sets up the slog handlers shared by the commands.
package logging

import (
	"fmt"
	"path/filepath"
	"time"
)

// LogFilePath returns the log file for a run of program started at start.
func LogFilePath(logsDir, program string, start time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", program, start.Format("20060102_150405")),
	)
}
