package log

import (
	"fmt"
	"log"
)

// Info takes a pointer subLogger struct and string sends to newLogEvent
func Info(sl *SubLogger, data string) {
	stage(sl, sl.isInfo(), "info", data)
}

// Infof takes a pointer subLogger struct, string and interface formats sends to newLogEvent
func Infof(sl *SubLogger, data string, v ...any) {
	if sl.isInfo() {
		stage(sl, true, "info", fmt.Sprintf(data, v...))
	}
}

// Debug takes a pointer subLogger struct and string sends to newLogEvent
func Debug(sl *SubLogger, data string) {
	stage(sl, sl.isDebug(), "debug", data)
}

// Debugf takes a pointer subLogger struct, string and interface formats sends to newLogEvent
func Debugf(sl *SubLogger, data string, v ...any) {
	if sl.isDebug() {
		stage(sl, true, "debug", fmt.Sprintf(data, v...))
	}
}

// Warn takes a pointer subLogger struct & string and sends to newLogEvent
func Warn(sl *SubLogger, data string) {
	stage(sl, sl.isWarn(), "warn", data)
}

// Warnf takes a pointer subLogger struct, string and interface formats sends to newLogEvent
func Warnf(sl *SubLogger, data string, v ...any) {
	if sl.isWarn() {
		stage(sl, true, "warn", fmt.Sprintf(data, v...))
	}
}

// Error takes a pointer subLogger struct & interface formats and sends to newLogEvent
func Error(sl *SubLogger, data ...any) {
	if sl.isError() {
		stage(sl, true, "error", fmt.Sprint(data...))
	}
}

// Errorf takes a pointer subLogger struct, string and interface formats sends to newLogEvent
func Errorf(sl *SubLogger, data string, v ...any) {
	if sl.isError() {
		stage(sl, true, "error", fmt.Sprintf(data, v...))
	}
}

func stage(sl *SubLogger, enabled bool, level, data string) {
	if sl == nil || !enabled || !isEnabled() {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	displayError(logger.newLogEvent(data, logger.header(level), sl.name, sl.output))
}

func (l *Logger) header(level string) string {
	switch level {
	case "info":
		return l.InfoHeader
	case "debug":
		return l.DebugHeader
	case "warn":
		return l.WarnHeader
	default:
		return l.ErrorHeader
	}
}

func displayError(err error) {
	if err != nil {
		log.Printf("Logger write error: %v\n", err)
	}
}

func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogConfig.Enabled == nil || *globalLogConfig.Enabled
}

func (sl *SubLogger) levels() Levels {
	if sl == nil {
		return Levels{}
	}
	mu.RLock()
	defer mu.RUnlock()
	return sl.Levels
}

func (sl *SubLogger) isInfo() bool  { return sl.levels().Info }
func (sl *SubLogger) isDebug() bool { return sl.levels().Debug }
func (sl *SubLogger) isWarn() bool  { return sl.levels().Warn }
func (sl *SubLogger) isError() bool { return sl.levels().Error }
