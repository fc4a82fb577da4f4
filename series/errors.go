package series

import "errors"

// ErrBadSize indicates an invalid number of days for a generated series.
// Usage: if errors.Is(err, ErrBadSize) { /* fix days */ }.
var ErrBadSize = errors.New("series: invalid number of days")
