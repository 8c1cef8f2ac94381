/*
Package gentables is a collection of small, offline code-generation tools.

Each tool in this module turns a static reference dataset into a fragment
of source code, printed to stdout and intended to be pasted into another
project's source tree. Two of the tools are driven by Unicode Character
Database files (the canonical combining class table and the bidi mirroring
pairs), one derives closed-form moment integrals for cubic Bézier segments
symbolically, and one is a tiny numeric experiment around Vieta's formulas.

There is no runtime component. Every tool is a single-pass batch
transformer: fetch-or-read, parse, transform, print. Reference files are
downloaded once and cached in the working directory; a cached file is never
re-fetched or invalidated.

The sub-packages hold the individual pipelines; the command in cmd/gentables
wires them to a CLI.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gentables

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
