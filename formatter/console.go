package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bimap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Order selects which side of a bimap determines the order of lines.
type Order int

const (
	// LeftOrder prints pairs in ascending Left order.
	LeftOrder Order = iota
	// RightOrder prints pairs in ascending Right order. Columns are still
	// printed as Left, Right.
	RightOrder
)

// Config configures console output.
type Config struct {
	LineWidth int            // line length in fixed width ‘en’s; 0 means unlimited
	Context   *uax11.Context // context for display width; nil means uax11.LatinContext
	Separator string         // between columns; empty means " ⇔ "
	Colored   bool           // use Palette colors
	Palette   *Palette       // nil means default palette
	Order     Order
}

// Palette holds the colors for the Left and Right column.
type Palette struct {
	Left, Right *color.Color
}

// DefaultPalette prints Left values in blue and Right values in red.
func DefaultPalette() *Palette {
	return &Palette{
		Left:  color.New(color.FgBlue),
		Right: color.New(color.FgRed),
	}
}

const ellipsis = "…"

var setupGraphemes sync.Once

// Print outputs the pairs of bm to w.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (see ConfigFromTerminal).
func Print[L, R any](bm *bimap.Bimap[L, R], w io.Writer, config *Config) error {
	if bm == nil {
		return bimap.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	sep := config.Separator
	if sep == "" {
		sep = " ⇔ "
	}
	var palette *Palette
	if config.Colored {
		palette = config.Palette
		if palette == nil {
			palette = DefaultPalette()
		}
		// color decides on its own for os.Stdout only; w may be anything.
		palette.Left.EnableColor()
		palette.Right.EnableColor()
	}
	rows := collect(bm, config.Order)
	col := 0
	for i := range rows {
		rows[i].lw = width(rows[i].left, ctx)
		col = max(col, rows[i].lw)
	}
	tracer().P("format", "console").Debugf("printing %d pairs, left column %d en", len(rows), col)
	for _, row := range rows {
		right := row.right
		if config.LineWidth > 0 {
			right = truncate(right, config.LineWidth-col-width(sep, ctx), ctx)
		}
		if err := printRow(w, row.left, strings.Repeat(" ", col-row.lw), sep, right, palette); err != nil {
			return fmt.Errorf("formatter: %w", err)
		}
	}
	return nil
}

type row struct {
	left, right string
	lw          int
}

func collect[L, R any](bm *bimap.Bimap[L, R], order Order) []row {
	rows := make([]row, 0, bm.Len())
	if order == RightOrder {
		for r, l := range bm.Rights() {
			rows = append(rows, row{left: fmt.Sprint(l), right: fmt.Sprint(r)})
		}
		return rows
	}
	for l, r := range bm.Lefts() {
		rows = append(rows, row{left: fmt.Sprint(l), right: fmt.Sprint(r)})
	}
	return rows
}

func printRow(w io.Writer, left, pad, sep, right string, palette *Palette) (err error) {
	if palette == nil {
		_, err = io.WriteString(w, left+pad+sep+right+"\n")
		return
	}
	if _, err = palette.Left.Fprint(w, left); err != nil {
		return
	}
	if _, err = io.WriteString(w, pad+sep); err != nil {
		return
	}
	if _, err = palette.Right.Fprint(w, right); err != nil {
		return
	}
	_, err = io.WriteString(w, "\n")
	return
}

func width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// truncate shortens s to at most avail ens, marking a cut with an ellipsis.
func truncate(s string, avail int, ctx *uax11.Context) string {
	if width(s, ctx) <= avail {
		return s
	}
	if avail <= 0 {
		return ""
	}
	rs := []rune(s)
	for len(rs) > 0 && width(string(rs)+ellipsis, ctx) > avail {
		rs = rs[:len(rs)-1]
	}
	if len(rs) == 0 {
		return ""
	}
	return string(rs) + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
