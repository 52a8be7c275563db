package core

// Logger interface for scene build logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// OrNop returns logger, or a logger that discards output when logger is nil
func OrNop(logger Logger) Logger {
	if logger == nil {
		return nopLogger{}
	}
	return logger
}
