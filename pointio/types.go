package pointio

import "errors"

// ErrMalformedRecord indicates a line that does not hold exactly two finite numbers.
var ErrMalformedRecord = errors.New("pointio: malformed point record")

// Delimiter separates the two coordinates of a record.
const Delimiter = ','
