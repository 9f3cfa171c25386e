// Package panel defines the row model shared by both annual panel datasets
// and the error taxonomy every query reports through.
//
// Rows are immutable values. A dataset is a slice of rows in load order;
// nothing in this module mutates it after loading.
//
// # Datasets
//
//   - ForestChangeRow: net change in forest area (hectares, signed) with the
//     source's classification code.
//   - CO2Row: CO₂ emissions per capita (tonnes). Carries no classification
//     code, so the country set is derived from the forest dataset.
//
// # Errors
//
// All user-facing failures are *Error values with a Kind. Callers branch on
// the kind with errors.As or the Is* helpers; the CLI maps kinds to exit
// codes and error codes.
package panel
