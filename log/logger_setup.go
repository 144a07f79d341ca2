package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errSubloggerConfigIsNil  = errors.New("sublogger config is nil")
	errUnhandledOutputWriter = errors.New("unhandled output writer")
)

func getWriters(s *SubLoggerConfig) (io.Writer, error) {
	if s == nil {
		return nil, errSubloggerConfigIsNil
	}
	mw, err := MultiWriter()
	if err != nil {
		return nil, err
	}
	outputWriters := strings.Split(s.Output, "|")
	for x := range outputWriters {
		var writer io.Writer
		switch strings.ToLower(outputWriters[x]) {
		case "stdout", "console":
			writer = os.Stdout
		case "stderr":
			writer = os.Stderr
		case "discard":
			writer = io.Discard
		default:
			return nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, outputWriters[x])
		}
		if err = mw.Add(writer); err != nil {
			return nil, err
		}
	}
	return mw, nil
}

// GenDefaultSettings return struct with known sane/working logger settings
func GenDefaultSettings() Config {
	enabled, showName := true, false
	return Config{
		Enabled: &enabled,
		SubLoggerConfig: SubLoggerConfig{
			Level:  "INFO|WARN|ERROR",
			Output: "console",
		},
		AdvancedSettings: advancedSettings{
			ShowLogSystemName: &showName,
			Spacer:            spacer,
			TimeStampFormat:   timestampFormat,
			Headers: headers{
				Info:  "[INFO]",
				Warn:  "[WARN]",
				Debug: "[DEBUG]",
				Error: "[ERROR]",
			},
		},
	}
}

func configureSubLogger(subLogger, levels string, output io.Writer) error {
	logPtr, found := subLoggers[subLogger]
	if !found {
		return fmt.Errorf("%w: %s", errSubLoggerNotFound, subLogger)
	}
	logPtr.output = output
	logPtr.Levels = splitLevel(levels)
	return nil
}

// SetupSubLoggers configure all sub loggers with provided configuration values
func SetupSubLoggers(s []SubLoggerConfig) error {
	mu.Lock()
	defer mu.Unlock()
	for x := range s {
		output, err := getWriters(&s[x])
		if err != nil {
			return err
		}
		if err := configureSubLogger(strings.ToUpper(s[x].Name), s[x].Level, output); err != nil {
			return err
		}
	}
	return nil
}

// SetupGlobalLogger setup the global loggers with the supplied config values
func SetupGlobalLogger(c *Config) error {
	if c == nil {
		return errSubloggerConfigIsNil
	}
	output, err := getWriters(&c.SubLoggerConfig)
	if err != nil {
		return err
	}
	mu.Lock()
	globalLogConfig = *c
	for x := range subLoggers {
		subLoggers[x].Levels = splitLevel(c.Level)
		subLoggers[x].output = output
	}
	logger = newLogger(c)
	mu.Unlock()
	return SetupSubLoggers(c.SubLoggers)
}

func splitLevel(level string) (l Levels) {
	enabledLevels := strings.Split(level, "|")
	for x := range enabledLevels {
		switch strings.ToUpper(enabledLevels[x]) {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return
}

func registerNewSubLogger(subLogger string) *SubLogger {
	temp := SubLogger{
		name:   strings.ToUpper(subLogger),
		output: os.Stdout,
	}
	mu.Lock()
	temp.Levels = splitLevel(globalLogConfig.Level)
	subLoggers[temp.name] = &temp
	mu.Unlock()
	return &temp
}

// register all loggers at package init()
func init() {
	logger = newLogger(&globalLogConfig)

	Global = registerNewSubLogger("LOG")
	ConfigMgr = registerNewSubLogger("CONFIG")
	RequestSys = registerNewSubLogger("REQUESTER")
	ExchangeSys = registerNewSubLogger("EXCHANGE")
}
