package log

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	errSubLoggerNotFound = errors.New("sub logger not found")
	errWriterNotSet      = errors.New("io.Writer not set")
)

func newLogger(c *Config) Logger {
	l := Logger{
		TimestampFormat: c.AdvancedSettings.TimeStampFormat,
		Spacer:          c.AdvancedSettings.Spacer,
		ErrorHeader:     c.AdvancedSettings.Headers.Error,
		InfoHeader:      c.AdvancedSettings.Headers.Info,
		WarnHeader:      c.AdvancedSettings.Headers.Warn,
		DebugHeader:     c.AdvancedSettings.Headers.Debug,
	}
	if c.AdvancedSettings.ShowLogSystemName != nil {
		l.ShowLogSystemName = *c.AdvancedSettings.ShowLogSystemName
	}
	return l
}

func (l *Logger) newLogEvent(data, header, slName string, w io.Writer) error {
	if w == nil {
		return errWriterNotSet
	}
	e := eventPool.Get().(*logEvent)
	e.data = e.data[:0]
	e.data = append(e.data, header...)
	if l.ShowLogSystemName {
		e.data = append(e.data, l.Spacer...)
		e.data = append(e.data, slName...)
	}
	e.data = append(e.data, l.Spacer...)
	if l.TimestampFormat != "" {
		e.data = time.Now().AppendFormat(e.data, l.TimestampFormat)
	}
	e.data = append(e.data, l.Spacer...)
	e.data = append(e.data, data...)
	if data == "" || data[len(data)-1] != '\n' {
		e.data = append(e.data, '\n')
	}
	_, err := w.Write(e.data)
	eventPool.Put(e)
	return err
}

// Level retrieves the current sublogger levels
func Level(name string) (Levels, error) {
	mu.RLock()
	defer mu.RUnlock()
	sl, found := subLoggers[strings.ToUpper(name)]
	if !found {
		return Levels{}, fmt.Errorf("%w: %s", errSubLoggerNotFound, name)
	}
	return sl.Levels, nil
}

// SetLevel sets sublogger levels
func SetLevel(name, level string) (Levels, error) {
	mu.Lock()
	defer mu.Unlock()
	sl, found := subLoggers[strings.ToUpper(name)]
	if !found {
		return Levels{}, fmt.Errorf("%w: %s", errSubLoggerNotFound, name)
	}
	sl.Levels = splitLevel(level)
	return sl.Levels, nil
}

// SetOutput routes a sublogger to a writer
func SetOutput(sl *SubLogger, w io.Writer) {
	mu.Lock()
	sl.output = w
	mu.Unlock()
}
