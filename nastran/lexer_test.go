package nastran

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFieldSmall(t *testing.T) {
	lx := newLexer(strings.NewReader("GRID           1       0\n"), Small)

	f, err := lx.nextField(8)
	assert.NoError(t, err)
	assert.Equal(t, "GRID", f)

	f, err = lx.nextField(8)
	assert.NoError(t, err)
	assert.Equal(t, "1", f)

	f, err = lx.nextField(8)
	assert.NoError(t, err)
	assert.Equal(t, "0", f)
}

func TestNextFieldFreeStopsAtComma(t *testing.T) {
	lx := newLexer(strings.NewReader("GRID,1,,0.5\n"), Free)

	for _, want := range []string{"GRID", "1", "", "0.5"} {
		f, err := lx.nextField(freeFieldMax)
		assert.NoError(t, err)
		assert.Equal(t, want, f)
	}
}

// A trailing newline consumed while scanning a free format field is pushed
// back so the end of card scan still sees the line boundary
func TestFreeFormatNewlinePreserved(t *testing.T) {
	lx := newLexer(strings.NewReader("1.0\nNEXT\n"), Free)

	f, err := lx.nextField(freeFieldMax)
	assert.NoError(t, err)
	assert.Equal(t, "1.0", f)

	// The newline is still on the stream, so draining the current line must
	// not touch the NEXT line
	assert.NoError(t, lx.skipCard())
	f, err = lx.nextField(freeFieldMax)
	assert.NoError(t, err)
	assert.Equal(t, "NEXT", f)
}

func TestContinuationField(t *testing.T) {
	// Field 2 of the card lives on the second physical line
	input := "CARD    1       +\n+       2       \n"
	lx := newLexer(strings.NewReader(input), Small)

	f, _ := lx.nextField(8)
	assert.Equal(t, "CARD", f)
	f, _ = lx.nextField(8)
	assert.Equal(t, "1", f)
	f, err := lx.nextField(8)
	assert.NoError(t, err)
	assert.Equal(t, "2", f)
	assert.Equal(t, 2, lx.line)
}

func TestNextKeywordCachesComments(t *testing.T) {
	input := "KW1     \n$ HK inlet\nKW2     \n"
	lx := newLexer(strings.NewReader(input), Small)

	kw, line, err := lx.nextKeyword()
	assert.NoError(t, err)
	assert.Equal(t, "KW1", kw)
	assert.Equal(t, 1, line)

	kw, line, err = lx.nextKeyword()
	assert.NoError(t, err)
	assert.Equal(t, "KW2", kw)
	assert.Equal(t, 3, line)
	assert.Equal(t, "inlet", lx.commentWord)
	assert.Equal(t, 2, lx.commentLine)
}

func TestNextKeywordStripsLargeMarker(t *testing.T) {
	lx := newLexer(strings.NewReader("GRID*   \n"), Large)
	kw, _, err := lx.nextKeyword()
	assert.NoError(t, err)
	assert.Equal(t, "GRID", kw)
}

func TestFindBulk(t *testing.T) {
	input := "$ header comment\nSOL 101\nCEND\nBEGIN BULK\nGRID    \n"
	lx := newLexer(strings.NewReader(input), Small)
	assert.NoError(t, lx.findBulk())

	kw, line, err := lx.nextKeyword()
	assert.NoError(t, err)
	assert.Equal(t, "GRID", kw)
	assert.Equal(t, 5, line)
}

func TestFindBulkMissing(t *testing.T) {
	lx := newLexer(strings.NewReader("SOL 101\nCEND\n"), Small)
	assert.Error(t, lx.findBulk())
}
