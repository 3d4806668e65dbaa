package spreadsheet

import "log/slog"

// logRejected records why a candidate Set was rejected. No-op if the sheet
// has no logger attached.
func (s *Sheet) logRejected(pos Position, text string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("spreadsheet: rejected cell edit",
		slog.String("position", pos.String()),
		slog.String("text", text),
		slog.Any("error", err),
	)
}
