package logger

// NoopLogger implements Logger by doing nothing.
//
// Useful in tests and as a fallback when logging is not configured.
type NoopLogger struct{}

func NewNoopLogger() NoopLogger { return NoopLogger{} }

func (NoopLogger) Debug(_ string, _ *LogContext) {}
func (NoopLogger) Error(_ string, _ *LogContext) {}
func (NoopLogger) Fatal(_ string, _ *LogContext) {}
func (NoopLogger) Info(_ string, _ *LogContext)  {}
func (NoopLogger) Warn(_ string, _ *LogContext)  {}
func (NoopLogger) LogLevel() LogLevel            { return LogLevelUnk }
