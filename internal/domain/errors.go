package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrLensNotFound is returned when a lens identifier is not in the catalog
	ErrLensNotFound = errors.New("lens not found in catalog")

	// ErrInvalidExpiryDate is returned when a prescription expiry string does not parse
	ErrInvalidExpiryDate = errors.New("invalid prescription expiry date")

	// ErrPrescriptionExpired is returned when the prescription expiry is in the past
	ErrPrescriptionExpired = errors.New("prescription has expired")

	// ErrUnconfiguredSKU is returned when a SKU is missing from the duration or price tables
	ErrUnconfiguredSKU = errors.New("unconfigured SKU")

	// ErrNoDefaultSKU is returned when a lens has no default SKU mapping
	ErrNoDefaultSKU = errors.New("no SKU configured for this lens")

	// ErrClassifierUnavailable is returned when the AI classifier call fails
	ErrClassifierUnavailable = errors.New("AI classifier unavailable")
)
