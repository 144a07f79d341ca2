package currency

import (
	"errors"
	"strings"
)

var errMalformedPair = errors.New("malformed currency pair")

// MakePair joins two currency symbols into the exchange market notation. No
// validation is performed, symbols containing the delimiter produce an
// ambiguous market string.
func MakePair(currency1, currency2 string) string {
	return currency1 + PairDelimiter + currency2
}

// ParsePair returns the first or second currency of a market string. An empty
// string is returned when the market does not split into exactly two parts.
func ParsePair(pair string, first bool) string {
	base, quote, err := splitPair(pair)
	if err != nil {
		return ""
	}
	if first {
		return base
	}
	return quote
}

// splitPair splits a market string into its two symbols
func splitPair(pair string) (base, quote string, err error) {
	if pair == "" {
		return "", "", errMalformedPair
	}
	parts := strings.Split(pair, PairDelimiter)
	if len(parts) != 2 {
		return "", "", errMalformedPair
	}
	return parts[0], parts[1], nil
}

// NewPairFromString converts a market string into a Pair. Malformed input
// yields an empty Pair.
func NewPairFromString(pair string) Pair {
	base, quote, err := splitPair(pair)
	if err != nil {
		return Pair{}
	}
	return Pair{Base: base, Quote: quote}
}
