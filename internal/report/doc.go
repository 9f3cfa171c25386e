// Package report renders query results for the terminal.
//
// Numbers are grouped in thousands. Values within 1e-9 of an integer print
// without decimals; everything else uses a fixed number of decimals (2 by
// default).
package report
