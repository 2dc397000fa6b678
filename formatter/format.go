package formatter

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"
	"golang.org/x/text/width"
)

// DefaultLineWidth is used whenever the line width is unknown.
const DefaultLineWidth = 65

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth     int  // target line length in ‘en’s
	AmbiguousWide bool // East Asian ambiguous characters occupy 2 ‘en’s
}

func (config *Config) normalized() Config {
	c := Config{LineWidth: DefaultLineWidth}
	if config == nil {
		return c
	}
	if config.LineWidth > 0 {
		c.LineWidth = config.LineWidth
	}
	c.AmbiguousWide = config.AmbiguousWide
	return c
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: DefaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

var setupClasses sync.Once

// enWidth returns the number of fixed width positions s occupies. Wide and
// fullwidth characters count 2, everything else 1.
func enWidth(s string, ambiguousWide bool) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		case width.EastAsianAmbiguous:
			if ambiguousWide {
				w += 2
			} else {
				w++
			}
		default:
			w++
		}
	}
	return w
}

// --- Line breaking ---------------------------------------------------------
/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/

// firstFit returns the byte positions of line ends in text. The last
// position is always len(text) for non-empty text.
func firstFit(text string, linewidth int, ambiguousWide bool) []int {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	spaceleft := linewidth
	breaks := make([]int, 0, 8)
	pos := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := enWidth(strings.TrimRight(frag, " "), ambiguousWide)
		linestart := spaceleft == linewidth
		if fraglen > spaceleft && !linestart { // fragment overshoots line
			breaks = append(breaks, pos)
			T().Debugf("break @ %d", pos)
			spaceleft = linewidth
		}
		// fragments too long for a line get a line of their own
		spaceleft -= enWidth(frag, ambiguousWide)
		pos += len(frag)
	}
	if pos > 0 && (len(breaks) == 0 || breaks[len(breaks)-1] < pos) {
		breaks = append(breaks, pos)
	}
	return breaks
}

// wrap splits text into lines of at most linewidth ‘en’s, wherever possible.
// Trailing blanks are removed from every line.
func wrap(text string, config Config) []string {
	var lines []string
	start := 0
	for _, end := range firstFit(text, config.LineWidth, config.AmbiguousWide) {
		lines = append(lines, strings.TrimRight(text[start:end], " "))
		start = end
	}
	return lines
}
