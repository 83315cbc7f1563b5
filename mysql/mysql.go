// Package mysql installs the short GUID codec as scalar functions inside a
// MySQL database, so SQL expressions can convert BINARY(16) identifier
// columns to and from their 22-character form without round-tripping through
// the application.
//
// The identifier columns are expected to hold the 16 bytes in RFC 4122 order,
// which is what ShortGuid.Bytes and uuid.UUID produce. Both functions perform
// the same little-endian byte swap as the Go codec, so their output is
// character-identical to shortguid.Encode and byte-identical to
// shortguid.DecodeLax:
//
//	SELECT short_guid_encode(id) FROM orders;
//	SELECT * FROM orders WHERE id = short_guid_decode('00amyWGct0y_ze4lIsj2Mw');
//
// Decoding is non-strict, matching DecodeLax: a string that aliases a
// canonical encoding still decodes. Inputs that are not decodable at all
// yield NULL, per SQL convention.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	// EncodeFunction is the name of the installed function mirroring
	// shortguid.Encode.
	EncodeFunction = "short_guid_encode"

	// DecodeFunction is the name of the installed function mirroring
	// shortguid.DecodeLax.
	DecodeFunction = "short_guid_decode"
)

const createEncodeFunction = `CREATE FUNCTION ` + EncodeFunction + `(guid BINARY(16))
RETURNS CHAR(22) CHARSET ascii
DETERMINISTIC
NO SQL
RETURN LEFT(REPLACE(REPLACE(TO_BASE64(CONCAT(
	REVERSE(SUBSTRING(guid, 1, 4)),
	REVERSE(SUBSTRING(guid, 5, 2)),
	REVERSE(SUBSTRING(guid, 7, 2)),
	SUBSTRING(guid, 9, 8))), '+', '-'), '/', '_'), 22)`

const createDecodeFunction = `CREATE FUNCTION ` + DecodeFunction + `(encoded CHAR(22))
RETURNS BINARY(16)
DETERMINISTIC
NO SQL
BEGIN
	DECLARE payload BINARY(16);
	SET payload = FROM_BASE64(CONCAT(REPLACE(REPLACE(encoded, '-', '+'), '_', '/'), '=='));
	RETURN CONCAT(
		REVERSE(SUBSTRING(payload, 1, 4)),
		REVERSE(SUBSTRING(payload, 5, 2)),
		REVERSE(SUBSTRING(payload, 7, 2)),
		SUBSTRING(payload, 9, 8));
END`

// Statements returns the DDL creating both scalar functions, one statement
// per element, in install order. Each element is a single statement and can
// be executed directly through database/sql; the mysql command-line client
// needs a DELIMITER guard around the BEGIN...END body.
func Statements() []string {
	return []string{createEncodeFunction, createDecodeFunction}
}

// DropStatements returns the DDL removing both scalar functions.
func DropStatements() []string {
	return []string{
		"DROP FUNCTION IF EXISTS " + EncodeFunction,
		"DROP FUNCTION IF EXISTS " + DecodeFunction,
	}
}

// Install creates the scalar functions on db, replacing any existing
// definitions. MySQL has no CREATE OR REPLACE FUNCTION, so the functions are
// dropped first; the caller needs the CREATE ROUTINE and ALTER ROUTINE
// privileges.
func Install(ctx context.Context, db *sql.DB) error {
	if err := Drop(ctx, db); err != nil {
		return err
	}
	for _, stmt := range Statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("shortguid/mysql: install: %w", err)
		}
	}
	return nil
}

// Drop removes the scalar functions from db if they exist.
func Drop(ctx context.Context, db *sql.DB) error {
	for _, stmt := range DropStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("shortguid/mysql: drop: %w", err)
		}
	}
	return nil
}
