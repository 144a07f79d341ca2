package currency

import "strings"

// Upper converts the pair object to uppercase
func (p Pair) Upper() Pair {
	return Pair{
		Base:  strings.ToUpper(p.Base),
		Quote: strings.ToUpper(p.Quote),
	}
}

// IsEmpty returns true if either symbol is missing
func (p Pair) IsEmpty() bool {
	return p.Base == "" || p.Quote == ""
}
