package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestConversionParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Inlet Duct
Format: free # Can be small or large
Scale: 0.001 # Deck in millimeters
DefaultNames: true
Output: duct.su2
`)
	var input ConversionParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Title, "Inlet Duct")
	assert.Equal(t, input.Format, "free")
	assert.Equal(t, input.Scale, 0.001)
	assert.Equal(t, input.DefaultNames, true)
	assert.Equal(t, input.Output, "duct.su2")
	input.Print()
}
