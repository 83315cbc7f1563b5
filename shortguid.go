package shortguid

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// ShortGuid pairs an identifier with its 22-character URL-safe form. The two
// sides are always consistent: re-encoding the identifier reproduces the
// stored text exactly, whichever textual form the value was built from.
// ShortGuid is an immutable value type; construct one with New, FromUUID,
// FromBytes, Parse, ParseLax or MustParse. The zero value behaves as Empty.
type ShortGuid struct {
	guid  uuid.UUID
	value string
}

// Empty is the ShortGuid of the all-zero identifier,
// "AAAAAAAAAAAAAAAAAAAAAA".
var Empty = FromUUID(uuid.Nil)

// New returns the ShortGuid of a freshly generated random (version 4)
// identifier. Generation is delegated to github.com/google/uuid.
func New() ShortGuid {
	return FromUUID(uuid.New())
}

// FromUUID returns the ShortGuid wrapping id.
func FromUUID(id uuid.UUID) ShortGuid {
	return ShortGuid{guid: id, value: Encode(id)}
}

// FromBytes returns the ShortGuid of the identifier stored in b, which must
// be 16 bytes in RFC 4122 order (the order uuid.UUID itself uses).
func FromBytes(b []byte) (ShortGuid, error) {
	if len(b) != 16 {
		return Empty, ErrInvalidLength
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return Empty, ErrInvalidLength
	}
	return FromUUID(id), nil
}

// String returns the 22-character form of the identifier.
func (s ShortGuid) String() string {
	if s.value == "" {
		return Encode(s.guid)
	}
	return s.value
}

// Parse converts s into a ShortGuid. The short 22-character form is tried
// first and must be canonical (see Decode); anything uuid.Parse accepts,
// such as the 36-character hyphenated form, is tried second. An empty string
// parses to Empty instead of failing, so optional identifier fields can
// round-trip through a single code path; callers that must distinguish
// "absent" from "zero" need to check for "" themselves.
func Parse(s string) (ShortGuid, error) {
	if s == "" {
		return Empty, nil
	}
	if id, err := Decode(s); err == nil {
		// The strict decode proves s is canonical, no re-encoding needed.
		return ShortGuid{guid: id, value: s}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return Empty, fmt.Errorf("%w: %q is neither a 22-character short GUID nor a UUID",
			ErrInvalidFormat, s)
	}
	return FromUUID(id), nil
}

// ParseLax is Parse with the short form decoded non-strictly (see DecodeLax).
// The returned value always carries the canonical re-encoding, never the
// aliased input text.
func ParseLax(s string) (ShortGuid, error) {
	if s == "" {
		return Empty, nil
	}
	if id, err := DecodeLax(s); err == nil {
		return FromUUID(id), nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return Empty, fmt.Errorf("%w: %q is neither a 22-character short GUID nor a UUID",
			ErrInvalidFormat, s)
	}
	return FromUUID(id), nil
}

// ParseUUID converts s into its identifier without building a wrapper. It
// accepts the same inputs as Parse.
func ParseUUID(s string) (uuid.UUID, error) {
	return parseUUID(s, true)
}

// ParseUUIDLax converts s into its identifier without building a wrapper. It
// accepts the same inputs as ParseLax.
func ParseUUIDLax(s string) (uuid.UUID, error) {
	return parseUUID(s, false)
}

func parseUUID(s string, strict bool) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	decode := DecodeLax
	if strict {
		decode = Decode
	}
	if id, err := decode(s); err == nil {
		return id, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is neither a 22-character short GUID nor a UUID",
			ErrInvalidFormat, s)
	}
	return id, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) ShortGuid {
	sg, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("shortguid: Parse(%q): %v", s, err))
	}
	return sg
}

// UUID returns the wrapped identifier.
func (s ShortGuid) UUID() uuid.UUID {
	return s.guid
}

// Bytes returns the identifier as a 16-byte slice in RFC 4122 order.
func (s ShortGuid) Bytes() []byte {
	return s.guid[:]
}

// IsEmpty returns true if s wraps the all-zero identifier.
func (s ShortGuid) IsEmpty() bool {
	return s.guid == uuid.Nil
}

// MarshalText implements the encoding.TextMarshaler interface. The text is
// the 22-character short form.
func (s ShortGuid) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. Both the
// short form and the UUID form are accepted, so fields migrate between the
// two representations transparently.
func (s *ShortGuid) UnmarshalText(data []byte) error {
	sg, err := Parse(string(data))
	if err != nil {
		return err
	}
	*s = sg
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// binary form is the 16 identifier bytes in RFC 4122 order.
func (s ShortGuid) MarshalBinary() ([]byte, error) {
	return s.guid[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (s *ShortGuid) UnmarshalBinary(data []byte) error {
	sg, err := FromBytes(data)
	if err != nil {
		return err
	}
	*s = sg
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// NULL scans to Empty; a 16-byte value is taken as the raw identifier; any
// other string or byte text is parsed like Parse.
func (s *ShortGuid) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*s = Empty
		return nil
	case string:
		sg, err := Parse(src)
		if err != nil {
			return err
		}
		*s = sg
		return nil
	case []byte:
		if len(src) == 16 {
			sg, err := FromBytes(src)
			if err != nil {
				return err
			}
			*s = sg
			return nil
		}
		if len(src) == 0 {
			*s = Empty
			return nil
		}
		sg, err := Parse(string(src))
		if err != nil {
			return err
		}
		*s = sg
		return nil
	default:
		return fmt.Errorf("shortguid: cannot scan type %T into ShortGuid", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
// The stored value is the 22-character short form.
func (s ShortGuid) Value() (driver.Value, error) {
	return s.String(), nil
}

// Compare returns an integer comparing the identifiers of s and other
// lexicographically by their RFC 4122 byte order. The result will be 0 if
// they are equal, -1 if s sorts first, and +1 if other does. The stored text
// never participates.
func (s ShortGuid) Compare(other ShortGuid) int {
	for i := 0; i < 16; i++ {
		if s.guid[i] < other.guid[i] {
			return -1
		}
		if s.guid[i] > other.guid[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if s and other wrap the same identifier. Only the
// identifier bytes are compared, never the stored text, so values parsed
// from the short form and from the UUID form compare equal.
func (s ShortGuid) Equal(other ShortGuid) bool {
	return s.guid == other.guid
}

// EqualUUID returns true if s wraps exactly id.
func (s ShortGuid) EqualUUID(id uuid.UUID) bool {
	return s.guid == id
}

// EqualString returns true if v parses, short form first and UUID form
// second, to the identifier s wraps. Short forms are interpreted strictly,
// so a non-canonical alias of s's own encoding does not compare equal.
func (s ShortGuid) EqualString(v string) bool {
	id, err := ParseUUID(v)
	return err == nil && s.guid == id
}
