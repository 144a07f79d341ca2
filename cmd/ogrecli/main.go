package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ogrekit/ogrekit/config"
	"github.com/ogrekit/ogrekit/exchanges/tradeogre"
	"github.com/ogrekit/ogrekit/log"
	"github.com/ogrekit/ogrekit/signaler"
	"github.com/urfave/cli/v2"
)

var (
	configPath    string
	apiKey        string
	apiSecret     string
	apiURL        string
	timeout       time.Duration
	verbose       bool
	ignoreTimeout bool
)

const defaultTimeout = time.Second * 30

// setupClient builds a client from the config file and environment, applying
// any command line overrides, and bounds the command context by the timeout
func setupClient(c *cli.Context) (*tradeogre.TradeOgre, context.CancelFunc, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if apiSecret != "" {
		cfg.APISecret = apiSecret
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if verbose {
		cfg.Verbose = true
		cfg.Logging.Level = "INFO|DEBUG|WARN|ERROR"
	}
	logToStderr(&cfg.Logging)
	if err := log.SetupGlobalLogger(&cfg.Logging); err != nil {
		return nil, nil, err
	}

	client, err := cfg.NewClient()
	if err != nil {
		return nil, nil, err
	}

	cancel := context.CancelFunc(func() {})
	if !ignoreTimeout {
		c.Context, cancel = context.WithTimeout(c.Context, timeout)
	}
	return client, cancel, nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ogrecli"
	app.EnableBashCompletion = true
	app.Usage = "command line interface for the TradeOgre REST API"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to a JSON or YAML config file, defaults to ./" + config.File + " when present",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "apikey",
			Usage:       "override config API key for request",
			Destination: &apiKey,
		},
		&cli.StringFlag{
			Name:        "apisecret",
			Usage:       "override config API secret for request",
			Destination: &apiSecret,
		},
		&cli.StringFlag{
			Name:        "apiurl",
			Usage:       "override config API URL for request",
			Destination: &apiURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Value:       defaultTimeout,
			Usage:       "the default context timeout value for requests",
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "logs every request and response",
			Destination: &verbose,
		},
		&cli.BoolFlag{
			Name:        "ignoretimeout",
			Aliases:     []string{"it"},
			Usage:       "ignores the context timeout for requests",
			Destination: &ignoreTimeout,
		},
	}
	app.Commands = []*cli.Command{
		getBalancesCommand,
		getBalanceCommand,
		getOrdersCommand,
		getOrderCommand,
		buyOrderCommand,
		sellOrderCommand,
		cancelOrderCommand,
		getTickerCommand,
		getMarketsCommand,
		getOrderbookCommand,
		getHistoryCommand,
	}
	return app
}

func main() {
	ctx, cancel := signaler.CancelOnInterrupt(context.Background())
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
