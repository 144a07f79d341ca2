package log

import "io"

// Global vars related to the logger package
var (
	subLoggers = map[string]*SubLogger{}

	Global      *SubLogger
	ConfigMgr   *SubLogger
	RequestSys  *SubLogger
	ExchangeSys *SubLogger
)

// SubLogger defines a sub logger can be used externally for packages wanted to
// leverage GCT library logger features.
type SubLogger struct {
	name string
	Levels
	output io.Writer
}
