package main

import (
	"fmt"
	"strings"

	"github.com/ogrekit/ogrekit/exchanges/tradeogre"
	"github.com/urfave/cli/v2"
)

var getBalancesCommand = &cli.Command{
	Name:   "balances",
	Usage:  "gets the total balance of every currency on the account",
	Action: getBalances,
}

func getBalances(c *cli.Context) error {
	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Account().Balances(c.Context)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var getBalanceCommand = &cli.Command{
	Name:      "balance",
	Usage:     "gets the total and available balance of a currency",
	ArgsUsage: "<currency>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "currency",
			Usage: "the currency to get the balance of",
		},
	},
	Action: getBalance,
}

func getBalance(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	curr := strings.ToUpper(argOrFlag(c, "currency", 0))
	if !validCurrency(curr) {
		return fmt.Errorf("%w: %q", errInvalidCurrency, curr)
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Account().Balance(c.Context, curr)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var getOrdersCommand = &cli.Command{
	Name:      "orders",
	Usage:     "gets the open orders of the account, optionally for a single market",
	ArgsUsage: "[pair]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pair",
			Usage: "the market to filter by, e.g. BTC-USDT",
		},
	},
	Action: getOrders,
}

func getOrders(c *cli.Context) error {
	var c1, c2 string
	if p := argOrFlag(c, "pair", 0); p != "" {
		pair, err := parsePair(p)
		if err != nil {
			return err
		}
		c1, c2 = pair.Base, pair.Quote
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Exchange().Orders(c.Context, c1, c2)
	if err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var getOrderCommand = &cli.Command{
	Name:      "order",
	Usage:     "gets an account order by its id",
	ArgsUsage: "<order_id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "order_id",
			Usage: "the order id to retrieve",
		},
	},
	Action: getOrder,
}

func getOrder(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	id := argOrFlag(c, "order_id", 0)
	if !validOrderID(id) {
		return fmt.Errorf("%w: %q", errInvalidOrderID, id)
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Exchange().Order(c.Context, id)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var submitOrderFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "pair",
		Usage: "the market to trade, e.g. BTC-USDT",
	},
	&cli.StringFlag{
		Name:  "price",
		Usage: "the limit price, in the second currency of the pair",
	},
	&cli.StringFlag{
		Name:  "quantity",
		Usage: "the quantity to trade, in the first currency of the pair",
	},
}

var buyOrderCommand = &cli.Command{
	Name:      "buy",
	Usage:     "submits a limit buy order",
	ArgsUsage: "<pair> <price> <quantity>",
	Flags:     submitOrderFlags,
	Action: func(c *cli.Context) error {
		return submitOrder(c, tradeogre.Buy)
	},
}

var sellOrderCommand = &cli.Command{
	Name:      "sell",
	Usage:     "submits a limit sell order",
	ArgsUsage: "<pair> <price> <quantity>",
	Flags:     submitOrderFlags,
	Action: func(c *cli.Context) error {
		return submitOrder(c, tradeogre.Sell)
	},
}

func submitOrder(c *cli.Context, side tradeogre.TradeSide) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	pair, err := parsePair(argOrFlag(c, "pair", 0))
	if err != nil {
		return err
	}
	price, err := parseAmount("price", argOrFlag(c, "price", 1))
	if err != nil {
		return err
	}
	quantity, err := parseAmount("quantity", argOrFlag(c, "quantity", 2))
	if err != nil {
		return err
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Exchange().Create(c.Context, pair.Base, pair.Quote, side, price, quantity)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}

var cancelOrderCommand = &cli.Command{
	Name:      "cancel",
	Usage:     "cancels an open order by its id, or every open order with \"all\"",
	ArgsUsage: "<order_id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "order_id",
			Usage: "the order id to cancel",
		},
	},
	Action: cancelOrder,
}

func cancelOrder(c *cli.Context) error {
	if c.NArg() == 0 && c.NumFlags() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	id := argOrFlag(c, "order_id", 0)
	if id != cancelAll && !validOrderID(id) {
		return fmt.Errorf("%w: %q", errInvalidOrderID, id)
	}

	client, cancel, err := setupClient(c)
	if err != nil {
		return err
	}
	defer cancel()

	result, err := client.Exchange().Cancel(c.Context, id)
	if err != nil {
		return err
	}
	if err := checkResponse(&result.Response); err != nil {
		return err
	}
	jsonOutput(c, result)
	return nil
}
