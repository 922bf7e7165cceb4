/*
Package formatter prints the contents of a bimap to a console.

Pairs are printed one per line, in two aligned columns. Column alignment uses
the display width of values (see UAX #11), so East Asian wide characters
line up with Latin text on fixed width consoles. Colors are optional.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bimap'
func tracer() tracing.Trace {
	return tracing.Select("bimap")
}
