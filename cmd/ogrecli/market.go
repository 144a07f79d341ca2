package main

import (
	"github.com/urfave/cli/v2"
)

var pairFlag = []cli.Flag{
	&cli.StringFlag{
		Name:  "pair",
		Usage: "the market, e.g. BTC-USDT",
	},
}

var getTickerCommand = &cli.Command{
	Name:      "ticker",
	Usage:     "gets the 24 hour statistics of a market",
	ArgsUsage: "<pair>",
	Flags:     pairFlag,
	Action:    getTicker,
}

func getTicker(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	pair, err := parsePair(argOrFlag(c, "pair", 0))
	if err != nil {
		return err
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Market().Ticker(c.Context, pair.Base, pair.Quote)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var getMarketsCommand = &cli.Command{
	Name:   "markets",
	Usage:  "gets the ticker of every listed market",
	Action: getMarkets,
}

func getMarkets(c *cli.Context) error {
	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Market().Markets(c.Context)
	if err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var getOrderbookCommand = &cli.Command{
	Name:      "orderbook",
	Usage:     "gets the buy and sell orders of a market",
	ArgsUsage: "<pair>",
	Flags:     pairFlag,
	Action:    getOrderbook,
}

func getOrderbook(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	pair, err := parsePair(argOrFlag(c, "pair", 0))
	if err != nil {
		return err
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Market().OrderBook(c.Context, pair.Base, pair.Quote)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var getHistoryCommand = &cli.Command{
	Name:      "history",
	Usage:     "gets the recent trades of a market",
	ArgsUsage: "<pair>",
	Flags:     pairFlag,
	Action:    getHistory,
}

func getHistory(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	pair, err := parsePair(argOrFlag(c, "pair", 0))
	if err != nil {
		return err
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Market().TradeHistory(c.Context, pair.Base, pair.Quote)
	if err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}
