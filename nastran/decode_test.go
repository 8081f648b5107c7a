package nastran

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		field string
		want  float64
	}{
		{"1.0+3", 1000.0},
		{"1.0E+3", 1000.0},
		{"1.0e+3", 1000.0},
		{"-2.5-1", -0.25},
		{"1.5+3", 1500.0},
		{"1.5e-3", 0.0015},
		{"2.0", 2.0},
		{"-4.", -4.0},
	}
	for _, c := range cases {
		got, err := parseFloat(c.field)
		assert.NoError(t, err, c.field)
		assert.Equal(t, c.want, got, c.field)
	}
}

func TestParseFloatMalformed(t *testing.T) {
	for _, field := range []string{"", "abc", "1.0++3"} {
		_, err := parseFloat(field)
		assert.Error(t, err, field)
	}
}

func TestParseInt(t *testing.T) {
	n, err := parseInt("-42")
	assert.NoError(t, err)
	assert.Equal(t, -42, n)

	_, err = parseInt("4.2")
	assert.Error(t, err)
	_, err = parseInt("")
	assert.Error(t, err)
}
