package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "symbol,trade_type,quantity,price\nM&M,buy,10,2875.50\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	content := "symbol,trade_type\nINFY,buy\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)
	assert.Equal(t, content, decode(t, input))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// 0xE9 is é in Windows-1252; invalid as a bare UTF-8 byte.
	input := []byte{'c', 'a', 'f', 0xE9, '\n'}
	assert.Equal(t, "café\n", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "AB\n" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'A', 0x00, 'B', 0x00, '\n', 0x00}
	assert.Equal(t, "AB\n", decode(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
