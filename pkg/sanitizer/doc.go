// Package sanitizer provides small helper functions for cleaning and
// normalising user input before validation or display: digit extraction
// from punctuated identifiers, line-ending trimming for terminal input,
// and whitespace normalisation.
//
// All functions are pure and goroutine-safe. They never mutate their
// input and never fail; unexpected input simply passes through the
// transformation unchanged where no rule applies.
package sanitizer
