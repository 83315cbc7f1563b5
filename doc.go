// Package shortguid encodes 128-bit GUIDs as 22-character URL-safe strings
// and decodes them back, losslessly and with optional tamper detection.
//
// The canonical textual form of a GUID is 36 characters of hyphenated hex.
// The short form produced here packs the same 16 bytes into URL-safe base64
// (the standard alphabet with '+' replaced by '-' and '/' by '_') and drops
// the two padding characters a 16-byte input always produces, leaving exactly
// 22 characters. That makes the short form ideal for:
//   - URLs and route parameters (no percent-encoding required)
//   - Compact primary keys in JSON payloads
//   - Any place where 36 characters of hex is too much ceremony
//
// The 16 bytes are serialized in the little-endian (Microsoft) GUID layout
// before encoding, so the output is character-identical to the short GUID
// tokens widely used in the .NET ecosystem; see Encode for details.
//
// Basic Usage:
//
//	// Generate a new identifier and its short form
//	sg := shortguid.New()
//	fmt.Println(sg.String()) // e.g. "00amyWGct0y_ze4lIsj2Mw"
//	fmt.Println(sg.UUID())   // e.g. "c9a646d3-9c61-4cb7-bfcd-ee2522c8f633"
//
//	// Parse either textual form
//	sg, err := shortguid.Parse("00amyWGct0y_ze4lIsj2Mw")
//	sg, err = shortguid.Parse("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633")
//
//	// Raw codec functions
//	value := shortguid.Encode(id)
//	id, err := shortguid.Decode(value)
//
// Strict and Lax Decoding:
//
// A 22-character base64 encoding of 16 bytes leaves four unused bits in the
// final character, so up to sixteen distinct strings decode to the same
// identifier. Decode and Parse accept only the single canonical string that
// Encode produces and reject the aliases with ErrNonCanonical; this stops
// superficially different tokens from naming the same identity, for example
// to slip past a string-equality check elsewhere. DecodeLax and ParseLax
// accept the aliases too; they exist for reading tokens minted by encoders
// that are sloppy about the trailing bits.
//
// Empty Strings:
//
// Parse, ParseLax, ParseUUID and ParseUUIDLax treat "" as the all-zero
// identifier rather than an error. Optional identifier fields round-trip
// through one code path this way, but the default surprises: callers that
// need to distinguish an absent value from the zero identifier must test for
// "" before parsing.
//
// Thread Safety:
//
// Every operation is a pure function over immutable values and may be called
// from any number of goroutines without synchronization.
//
// Databases:
//
// ShortGuid implements sql.Scanner and driver.Valuer. The subpackage mysql
// additionally installs the codec as MySQL scalar functions, so queries can
// convert BINARY(16) identifier columns to and from the short form on the
// server side.
package shortguid
