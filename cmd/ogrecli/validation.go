package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/ogrekit/ogrekit/currency"
	"github.com/shopspring/decimal"
)

// cancelAll is accepted by the exchange in place of an order id
const cancelAll = "all"

var (
	errInvalidPair     = errors.New("invalid currency pair supplied")
	errInvalidCurrency = errors.New("invalid currency supplied")
	errInvalidOrderID  = errors.New("invalid order id supplied")
	errInvalidAmount   = errors.New("invalid amount supplied")
)

func parsePair(pair string) (currency.Pair, error) {
	p := currency.NewPairFromString(pair).Upper()
	if p.IsEmpty() {
		return p, fmt.Errorf("%w: %q", errInvalidPair, pair)
	}
	return p, nil
}

func validCurrency(c string) bool {
	return c != "" && !strings.Contains(c, currency.PairDelimiter)
}

func validOrderID(id string) bool {
	_, err := uuid.FromString(id)
	return err == nil
}

// parseAmount parses a strictly positive decimal
func parseAmount(name, amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q: %w", errInvalidAmount, name, amount, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be positive", errInvalidAmount, name)
	}
	return d, nil
}
