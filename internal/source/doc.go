// Package source reads dataset CSV files into header-keyed records and
// parses their numeric fields.
//
// Records keep raw strings; typed decoding happens in the dataset package.
package source
