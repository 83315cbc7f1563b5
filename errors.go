package shortguid

import "errors"

var (
	// ErrInvalidEncoding indicates that a string is not a decodable short GUID:
	// wrong length, characters outside the URL-safe base64 alphabet, or a
	// base64 payload that is not exactly 16 bytes
	ErrInvalidEncoding = errors.New("shortguid: invalid short GUID encoding")

	// ErrNonCanonical indicates that a string decodes to a valid identifier but
	// is not the canonical encoding of it; only strict decoding reports it
	ErrNonCanonical = errors.New("shortguid: non-canonical short GUID encoding")

	// ErrInvalidFormat indicates that a string matches neither the short form
	// nor a UUID form
	ErrInvalidFormat = errors.New("shortguid: invalid GUID format")

	// ErrInvalidLength indicates that a GUID byte slice has incorrect length
	ErrInvalidLength = errors.New("shortguid: invalid GUID length (expected 16 bytes)")
)
