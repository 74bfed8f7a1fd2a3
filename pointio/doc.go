// Package pointio reads and writes point sets as flat delimited text.
//
// Format:
//
//	one point per line, two fields separated by a comma:
//
//	  -12,7
//	  3.5,1e-3
//
//   - Fields are decimal floats; Write emits the shortest exact form
//     (strconv 'g', -1). Read accepts blanks around fields.
//   - Blank lines are skipped. Any other line that is not exactly two finite
//     numbers is a malformed record.
//
// Errors:
//
//   - ErrMalformedRecord, wrapped with the 1-based line number. Read stops at
//     the first malformed record and returns no points.
package pointio
