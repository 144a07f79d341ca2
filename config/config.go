package config

import (
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ogrekit/ogrekit/common"
	"github.com/ogrekit/ogrekit/exchanges/tradeogre"
	"github.com/ogrekit/ogrekit/log"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// keys overridable by OGRE_ prefixed environment variables
var envKeys = []string{
	"apiKey",
	"apiSecret",
	"apiURL",
	"httpTimeout",
	"httpUserAgent",
	"verbose",
	"httpDebugging",
}

// LoadConfig reads the config file at configPath, overlays OGRE_ prefixed
// environment variables, optionally seeded from a .env file in the working
// directory, then checks the result. An empty configPath looks for
// config.json in the working directory and carries on without one.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to load %s", EnvFile)
	}

	v := viper.New()
	v.SetDefault("apiURL", tradeogre.DefaultAPIURL)
	v.SetDefault("httpTimeout", defaultHTTPTimeout)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", k)
		}
	}

	optional := configPath == ""
	if optional {
		configPath = File
	}
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read config %s", configPath)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := c.CheckConfig(); err != nil {
		return nil, err
	}
	return &c, nil
}

// CheckConfig fills in defaults for unset values and validates the rest
func (c *Config) CheckConfig() error {
	if c == nil {
		return errConfigIsNil
	}
	c.CheckLoggerConfig()
	if c.APIURL == "" {
		c.APIURL = tradeogre.DefaultAPIURL
	}
	if c.HTTPTimeout == 0 {
		log.Warnf(log.ConfigMgr, "HTTP timeout value not set, defaulting to %v.", defaultHTTPTimeout)
		c.HTTPTimeout = defaultHTTPTimeout
	}
	if c.APIKey == "" || c.APISecret == "" {
		log.Warn(log.ConfigMgr, "API credentials not set, authenticated requests will be rejected.")
	}
	return c.Validate()
}

// CheckLoggerConfig creates a default logger config when none is present
func (c *Config) CheckLoggerConfig() {
	if c.Logging.Enabled == nil || c.Logging.Output == "" {
		c.Logging = log.GenDefaultSettings()
	}
}

// Validate returns every problem with the connection settings
func (c *Config) Validate() error {
	if c == nil {
		return errConfigIsNil
	}
	var errs error
	if c.APIURL == "" {
		errs = common.AppendError(errs, errAPIURLNotSet)
	} else if u, err := url.Parse(c.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = common.AppendError(errs, errors.Wrap(errInvalidURL, c.APIURL))
	}
	if c.HTTPTimeout <= 0 {
		errs = common.AppendError(errs, errors.Wrapf(common.ErrInvalidHTTPTimeout, "%v", c.HTTPTimeout))
	}
	return errs
}

// NewClient returns a TradeOgre client built from the config
func (c *Config) NewClient() (*tradeogre.TradeOgre, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return tradeogre.New(c.APIKey, c.APISecret,
		tradeogre.WithAPIURL(c.APIURL),
		tradeogre.WithHTTPClient(common.NewHTTPClientWithTimeout(c.HTTPTimeout)),
		tradeogre.WithUserAgent(c.HTTPUserAgent),
		tradeogre.WithVerbose(c.Verbose),
		tradeogre.WithHTTPDebugging(c.HTTPDebugging),
	), nil
}
