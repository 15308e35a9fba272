// Package emit implements the DOT Emitter & Tabular Exporter (C7): it
// renders the filtered, annotated graph as a Graphviz DOT digraph with
// colour-coded cycle/break-suggestion/cross-solution overlays, and exports
// the accompanying extraction-scores, cycles, and dependency-matrix CSV
// reports, per §4.7.
//
// DOT emission stays on the standard library's text/template and
// strings.Builder: no repo in the retrieval pack imports a third-party DOT
// generation library, and the nearest neighbours hand-build DOT text the
// same way (see DESIGN.md). CSV emission similarly stays on encoding/csv,
// whose Writer.UseCRLF and automatic quote-doubling satisfy §6's CSV
// contract exactly.
package emit
