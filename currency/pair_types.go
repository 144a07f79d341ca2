package currency

// PairDelimiter separates the base and quote symbols in a market string
const PairDelimiter = "-"

// Pair holds the two currency symbols of a market
type Pair struct {
	Base  string
	Quote string
}
