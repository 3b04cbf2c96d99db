package domain

import "errors"

var (
	ErrAmbiguousID     = errors.New("scheme id prefix matches more than one scheme")
	ErrSchemeNotFound  = errors.New("scheme not found")
	ErrSamplerNotFound = errors.New("image sampler not available")
)
