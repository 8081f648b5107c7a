package nastran

import (
	"strconv"
)

// parseInt decodes an integer field
func parseInt(field string) (int, error) {
	return strconv.Atoi(field)
}

// parseFloat decodes a float field. The deck format allows omitting the
// exponent marker, so 1.5+3 means 1.5e+3: an explicit e is spliced in before
// a sign that is not already part of an exponent.
func parseFloat(field string) (float64, error) {
	for i := 1; i < len(field); i++ {
		c := field[i]
		if c != '+' && c != '-' {
			continue
		}
		if p := field[i-1]; p == 'e' || p == 'E' {
			break
		}
		field = field[:i] + "e" + field[i:]
		break
	}
	return strconv.ParseFloat(field, 64)
}
