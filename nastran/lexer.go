package nastran

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format selects the physical column layout of the deck
type Format int

const (
	Small Format = iota // every field 8 columns wide
	Large               // first field 8 columns, the rest 16
	Free                // comma delimited, variable width
)

var formatNames = map[string]Format{
	"small": Small,
	"large": Large,
	"free":  Free,
}

// NewFormat converts a format name from the command line to a Format
func NewFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Small, fmt.Errorf("unknown format: %s", name)
	}
	return f, nil
}

func (f Format) String() string {
	return [...]string{"small", "large", "free"}[f]
}

// Free format fields have no column budget, cap generously instead
const freeFieldMax = 63

// lexer produces raw card fields and keywords from the character stream,
// hiding the column layout and continuation line mechanics. It holds the
// whole mutable scan state so parses are re-entrant per invocation.
type lexer struct {
	r      *bufio.Reader
	format Format
	line   int // 1-based physical line of the current read position

	// single character pushback, used to preserve a trailing newline in
	// free format so end-of-card detection still observes it
	pushback    byte
	hasPushback bool

	// last word of the most recent comment line and the line it was on
	commentWord string
	commentLine int

	// false until the first keyword has been read, so the first
	// advance does not drain the line BEGIN BULK left us on
	inCard bool
}

func newLexer(r io.Reader, format Format) *lexer {
	return &lexer{
		r:      bufio.NewReader(r),
		format: format,
		line:   1,
	}
}

// fieldWidth is the column budget of a data field
func (lx *lexer) fieldWidth() int {
	switch lx.format {
	case Large:
		return 16
	case Free:
		return freeFieldMax
	default:
		return 8
	}
}

func (lx *lexer) readByte() (byte, error) {
	if lx.hasPushback {
		lx.hasPushback = false
		if lx.pushback == '\n' {
			lx.line++
		}
		return lx.pushback, nil
	}
	c, err := lx.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		lx.line++
	}
	return c, nil
}

func (lx *lexer) unreadByte(c byte) {
	lx.pushback = c
	lx.hasPushback = true
	if c == '\n' {
		lx.line--
	}
}

func (lx *lexer) peek() (byte, error) {
	if lx.hasPushback {
		return lx.pushback, nil
	}
	buf, err := lx.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readLine consumes the rest of the current physical line, newline included,
// and returns its content without the newline or carriage returns. A final
// unterminated line is returned with io.EOF.
func (lx *lexer) readLine() (string, error) {
	var sb strings.Builder
	for {
		c, err := lx.readByte()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), io.EOF
			}
			return sb.String(), err
		}
		if c == '\n' {
			return sb.String(), nil
		}
		if c == '\r' {
			continue
		}
		sb.WriteByte(c)
	}
}

// nextField reads one field of up to width characters. Blanks and carriage
// returns are consumed but not stored. The field terminates early on a
// newline or, in free format, a comma. A field that is really a continuation
// marker is resolved here: the placeholder leading field of the next physical
// line is discarded and the intended field read in its place, iteratively,
// so multiline fields are indistinguishable from single line fields.
func (lx *lexer) nextField(width int) (string, error) {
	for {
		var (
			buf        []byte
			n          int
			sawNewline bool
		)
		for n < width {
			c, err := lx.readByte()
			if err != nil {
				if err == io.EOF && (n > 0 || len(buf) > 0) {
					break
				}
				return "", err
			}
			n++
			if c == '\n' {
				sawNewline = true
				break
			}
			if lx.format == Free && c == ',' {
				break
			}
			if c == ' ' || c == '\t' || c == '\r' {
				continue
			}
			buf = append(buf, c)
		}

		// Continue on the next line if the field is a continuation marker:
		// it begins with +, the line ended, and the next line starts the
		// card continuation with + or *
		if sawNewline && len(buf) > 0 && buf[0] == '+' {
			if c, err := lx.peek(); err == nil && (c == '+' || c == '*') {
				if err := lx.skipContinuationLead(); err != nil {
					return "", err
				}
				continue
			}
		}

		if lx.format == Free && sawNewline {
			lx.unreadByte('\n')
		}
		return string(buf), nil
	}
}

// skipContinuationLead discards the placeholder first field of a continuation
// line: 8 columns in the fixed formats, up to the first comma in free format
func (lx *lexer) skipContinuationLead() error {
	if lx.format == Free {
		for {
			c, err := lx.readByte()
			if err != nil {
				return err
			}
			if c == ',' {
				return nil
			}
		}
	}
	for i := 0; i < 8; i++ {
		if _, err := lx.readByte(); err != nil {
			return err
		}
	}
	return nil
}

// skipCard consumes the rest of the current card: everything on this line,
// and following lines while the line ends with the continuation marker +
func (lx *lexer) skipCard() error {
	for {
		line, err := lx.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.HasSuffix(line, "+") {
			continue
		}
		return nil
	}
}

// nextKeyword advances to the next card. It drains the remainder of the
// current card, skips comment lines while caching the last word of each
// together with its line number, and reads the new keyword, stripping a
// trailing large-field continuation marker *. It returns the keyword and the
// 1-based line it was found on.
func (lx *lexer) nextKeyword() (string, int, error) {
	if lx.inCard {
		if err := lx.skipCard(); err != nil {
			return "", 0, err
		}
	}
	lx.inCard = true

	for {
		c, err := lx.peek()
		if err != nil {
			return "", 0, err
		}
		if c != '$' {
			break
		}
		commentLine := lx.line
		text, err := lx.readLine()
		if err != nil && err != io.EOF {
			return "", 0, err
		}
		words := strings.Fields(strings.TrimPrefix(text, "$"))
		if len(words) > 0 {
			lx.commentWord = words[len(words)-1]
			lx.commentLine = commentLine
		}
	}

	kwLine := lx.line
	width := 8 // the leading field is 8 columns in both fixed formats
	if lx.format == Free {
		width = freeFieldMax
	}
	kw, err := lx.nextField(width)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSuffix(kw, "*"), kwLine, nil
}

// findBulk skips the deck header: arbitrary lines up to and including the
// BEGIN BULK marker. Comment lines are skipped without being cached.
func (lx *lexer) findBulk() error {
	for {
		c, err := lx.peek()
		if err != nil {
			return fmt.Errorf("cannot find \"BEGIN BULK\" entry")
		}
		if c == '$' {
			if _, err := lx.readLine(); err != nil && err != io.EOF {
				return err
			}
			continue
		}
		line, err := lx.readLine()
		if err != nil && err != io.EOF {
			return err
		}
		if strings.HasPrefix(line, "BEGIN BULK") {
			return nil
		}
		if err == io.EOF {
			return fmt.Errorf("cannot find \"BEGIN BULK\" entry")
		}
	}
}
