package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Catalog Lifecycle Errors =====
var (
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	ErrReloadFailed     = errors.New("catalog reload failed")
)

// ===== Lookup Errors =====
var (
	ErrRetreatNotFound  = errors.New("retreat not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrTypeNotFound     = errors.New("retreat type not found")
	ErrNeedNotFound     = errors.New("need category not found")
	ErrTierNotFound     = errors.New("price tier not found")
)

// ===== Query Errors =====
var (
	ErrInvalidSort = errors.New("sort must be empty or \"price\"")
)
