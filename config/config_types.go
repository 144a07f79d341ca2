package config

import (
	"errors"
	"time"

	"github.com/ogrekit/ogrekit/log"
)

// Constants declared here are filename strings and environment settings
const (
	File      = "config.json"
	EnvFile   = ".env"
	EnvPrefix = "OGRE"

	defaultHTTPTimeout = time.Second * 15
)

var (
	errAPIURLNotSet = errors.New("API URL not set")
	errInvalidURL   = errors.New("invalid API URL")
	errConfigIsNil  = errors.New("config is nil")
)

// Config is the overarching object that holds all the information for the
// client and logger
type Config struct {
	APIKey        string        `json:"apiKey" mapstructure:"apiKey"`
	APISecret     string        `json:"apiSecret" mapstructure:"apiSecret"`
	APIURL        string        `json:"apiURL" mapstructure:"apiURL"`
	HTTPTimeout   time.Duration `json:"httpTimeout" mapstructure:"httpTimeout"`
	HTTPUserAgent string        `json:"httpUserAgent" mapstructure:"httpUserAgent"`
	Verbose       bool          `json:"verbose" mapstructure:"verbose"`
	HTTPDebugging bool          `json:"httpDebugging" mapstructure:"httpDebugging"`
	Logging       log.Config    `json:"logging" mapstructure:"logging"`
}
