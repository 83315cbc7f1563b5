package shortguid

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// EncodedLen is the length of the short form. Sixteen GUID bytes expand to
// 24 base64 characters of which the last two are always "==" padding, so 22
// characters carry the full 128 bits.
const EncodedLen = 22

// Encode returns the 22-character URL-safe form of id.
//
// The identifier is serialized in its little-endian (Microsoft) byte layout,
// in which the three leading fields are byte-swapped relative to the RFC 4122
// order, and encoded with the URL-safe base64 alphabet without padding. That
// layout keeps the output character-compatible with the short GUID tokens
// common in the .NET world. Encoding is deterministic: the same identifier
// always yields the same string, drawn from [A-Za-z0-9_-].
func Encode(id uuid.UUID) string {
	le := toLittleEndian(id)
	return base64.RawURLEncoding.EncodeToString(le[:])
}

// Decode parses a short GUID strictly: s must be the exact string Encode
// produces for the resulting identifier. Base64 leaves four unused bits in
// the final character of a 22-character encoding, so several distinct
// strings decode to the same 16 bytes; Decode accepts only the canonical one
// and rejects the aliases with ErrNonCanonical. Use Decode whenever short
// GUIDs act as identity tokens, otherwise two lexically different tokens may
// name the same identifier.
func Decode(s string) (uuid.UUID, error) {
	id, err := DecodeLax(s)
	if err != nil {
		return uuid.Nil, err
	}
	if canonical := Encode(id); canonical != s {
		return uuid.Nil, fmt.Errorf("%w: %q decodes to %s but its canonical encoding is %q",
			ErrNonCanonical, s, id, canonical)
	}
	return id, nil
}

// DecodeLax parses a short GUID without the canonical-form check: any
// 22-character string whose base64 payload is 16 bytes is accepted,
// including aliases of the canonical encoding. Prefer Decode unless aliased
// inputs are explicitly acceptable.
func DecodeLax(s string) (uuid.UUID, error) {
	if len(s) != EncodedLen {
		return uuid.Nil, fmt.Errorf("%w: %q is %d characters, want %d",
			ErrInvalidEncoding, s, len(s), EncodedLen)
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidEncoding, s, err)
	}
	// The decoder skips \r and \n, so 22 input characters can still yield a
	// short payload.
	if len(b) != 16 {
		return uuid.Nil, fmt.Errorf("%w: %q decodes to %d bytes, want 16",
			ErrInvalidEncoding, s, len(b))
	}
	return fromLittleEndian(b), nil
}

// toLittleEndian rewrites id from RFC 4122 byte order into the little-endian
// GUID layout: the 4-byte and two 2-byte leading fields are reversed, the
// trailing 8 bytes stay put. Applying the swap twice restores the input.
func toLittleEndian(id uuid.UUID) [16]byte {
	return [16]byte{
		id[3], id[2], id[1], id[0],
		id[5], id[4],
		id[7], id[6],
		id[8], id[9], id[10], id[11], id[12], id[13], id[14], id[15],
	}
}

// fromLittleEndian converts a decoded 16-byte payload back to RFC 4122 order.
func fromLittleEndian(b []byte) uuid.UUID {
	return uuid.UUID{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}
