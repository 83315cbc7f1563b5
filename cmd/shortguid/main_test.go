package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lzww0608/shortguid"
)

const (
	vectorUUID  = "c9a646d3-9c61-4cb7-bfcd-ee2522c8f633"
	vectorShort = "00amyWGct0y_ze4lIsj2Mw"

	alias = "bullshitmustnotbevalid"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"shortguid"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := runApp(t, "encode", vectorUUID)
	require.NoError(t, err)
	assert.Equal(t, vectorShort+"\n", out)
}

func TestEncodeCommand_MultipleArgs(t *testing.T) {
	out, err := runApp(t, "encode", vectorUUID, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, vectorShort+"\nAAAAAAAAAAAAAAAAAAAAAA\n", out)
}

func TestEncodeCommand_Invalid(t *testing.T) {
	_, err := runApp(t, "encode", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestEncodeCommand_NoArgs(t *testing.T) {
	_, err := runApp(t, "encode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestDecodeCommand(t *testing.T) {
	out, err := runApp(t, "decode", vectorShort)
	require.NoError(t, err)
	assert.Equal(t, vectorUUID+"\n", out)
}

func TestDecodeCommand_AliasRejectedByDefault(t *testing.T) {
	_, err := runApp(t, "decode", alias)
	assert.ErrorIs(t, err, shortguid.ErrNonCanonical)
}

func TestDecodeCommand_Lax(t *testing.T) {
	want, err := shortguid.DecodeLax(alias)
	require.NoError(t, err)

	out, runErr := runApp(t, "decode", "--lax", alias)
	require.NoError(t, runErr)
	assert.Equal(t, want.String()+"\n", out)
}

func TestParseCommand_BothForms(t *testing.T) {
	for _, input := range []string{vectorShort, vectorUUID} {
		out, err := runApp(t, "parse", input)
		require.NoError(t, err, input)
		assert.Equal(t, vectorShort+"\n", out, input)
	}
}

func TestParseCommand_UUIDOutput(t *testing.T) {
	out, err := runApp(t, "parse", "--uuid", vectorShort)
	require.NoError(t, err)
	assert.Equal(t, vectorUUID+"\n", out)
}

func TestParseCommand_Lax(t *testing.T) {
	sg, err := shortguid.ParseLax(alias)
	require.NoError(t, err)

	out, runErr := runApp(t, "parse", "--lax", alias)
	require.NoError(t, runErr)
	assert.Equal(t, sg.String()+"\n", out)
}

func TestParseCommand_AliasRejectedByDefault(t *testing.T) {
	_, err := runApp(t, "parse", alias)
	assert.ErrorIs(t, err, shortguid.ErrInvalidFormat)
}

func TestNewCommand(t *testing.T) {
	out, err := runApp(t, "new", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		_, err := shortguid.Decode(line)
		assert.NoError(t, err, line)
	}
}

func TestNewCommand_WithUUID(t *testing.T) {
	out, err := runApp(t, "new", "--uuid")
	require.NoError(t, err)

	fields := strings.Fields(strings.TrimSpace(out))
	require.Len(t, fields, 2)

	sg, err := shortguid.Parse(fields[0])
	require.NoError(t, err)
	assert.Equal(t, sg.UUID().String(), fields[1])
}

func TestNewCommand_InvalidCount(t *testing.T) {
	_, err := runApp(t, "new", "-n", "0")
	assert.Error(t, err)
}

func TestMysqlPrint(t *testing.T) {
	out, err := runApp(t, "mysql", "print")
	require.NoError(t, err)

	assert.Contains(t, out, "DROP FUNCTION IF EXISTS short_guid_encode;")
	assert.Contains(t, out, "DROP FUNCTION IF EXISTS short_guid_decode;")
	assert.Contains(t, out, "CREATE FUNCTION short_guid_encode")
	assert.Contains(t, out, "CREATE FUNCTION short_guid_decode")
	assert.Contains(t, out, "DELIMITER $$")
}

func TestMysqlInstall_RequiresDSN(t *testing.T) {
	t.Setenv("SHORTGUID_MYSQL_DSN", "")

	_, err := runApp(t, "mysql", "install")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dsn")
}

func TestMysqlDrop_RequiresDSN(t *testing.T) {
	t.Setenv("SHORTGUID_MYSQL_DSN", "")

	_, err := runApp(t, "mysql", "drop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dsn")
}
