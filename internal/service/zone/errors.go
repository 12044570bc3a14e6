package zone

import "errors"

var (
	ErrInvalidBracket        = errors.New("zone bracket must have minKm < maxKm")
	ErrBracketsNotContiguous = errors.New("zone brackets must be contiguous and non-overlapping")
)
