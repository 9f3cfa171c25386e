// Package entity resolves free-text user input to a canonical entity label.
//
// Matching is forgiving in two stages:
//
//  1. Exact match on the normalized key. Normalize decomposes the input,
//     drops diacritics and everything that is not an ASCII letter or digit,
//     and lowercases, so "São Tomé", "sao tome" and "SAO-TOME " agree.
//  2. Otherwise Resolve fails with an UNKNOWN_ENTITY error that lists up to
//     five labels whose normalized keys are at least 60% similar to the
//     query, most similar first.
//
// Similarity is the Ratcliff/Obershelp ratio 2*M/T computed by
// go-difflib's SequenceMatcher over the characters of both keys.
package entity
