// Package dataset adapts the two panel datasets to the query engine.
//
// Forest owns the country/aggregate classification: a row is a country when
// its code is three uppercase letters. CO2 has no code column, so when it is
// restricted to countries it filters on a CountrySet derived from the forest
// rows. The set is passed in explicitly rather than shared globally.
//
// NO_DATA errors from the engine are labeled with the dataset name so that
// messages read "No forest change data for Brazil in 2020."
package dataset
