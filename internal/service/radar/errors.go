package radar

import "errors"

var (
	ErrVendorNotFound  = errors.New("vendor availability not found")
	ErrInvalidMode     = errors.New("invalid vendor mode")
	ErrStatusNotCached = errors.New("vendor status is not cached")
)
