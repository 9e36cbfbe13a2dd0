package app

import (
	"log/slog"

	"github.com/treykane/cli-workspace/internal/logging"
)

// appLog is the structured logger for the app package. The level follows
// CLI_WORKSPACE_LOG_LEVEL; output never goes to the terminal the UI draws on.
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with attrs.
//
//	m.setStatusError("Error saving file", err, "path", m.filePath)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
