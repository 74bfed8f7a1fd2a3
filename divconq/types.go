package divconq

import "errors"

// ErrUnsorted indicates that Solve received points not sorted by point order.
var ErrUnsorted = errors.New("divconq: points must be sorted by (x, y)")
