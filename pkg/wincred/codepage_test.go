package wincred

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCodePageWindows1252(t *testing.T) {
	got, err := decodeCodePage([]byte{0x70, 0xE4, 0x73, 0x73}, 1252)
	require.NoError(t, err)
	assert.Equal(t, "päss", got)
}

func TestDecodeCodePageUndefinedByteFails(t *testing.T) {
	// 0x81, 0x8D, 0x8F, 0x90 and 0x9D have no assignment in Windows-1252.
	_, err := decodeCodePage([]byte{0x61, 0x81}, 1252)

	var eerr *EncodingError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, uint32(1252), eerr.CodePage)
}

func TestDecodeCodePageShiftJISTruncatedFails(t *testing.T) {
	// A lone Shift-JIS lead byte is not a complete character.
	_, err := decodeCodePage([]byte{0x61, 0x83}, 932)

	var eerr *EncodingError
	assert.ErrorAs(t, err, &eerr)
}

func TestDecodeCodePageUTF8(t *testing.T) {
	got, err := decodeCodePage([]byte("pässwörd"), 65001)
	require.NoError(t, err)
	assert.Equal(t, "pässwörd", got)

	_, err = decodeCodePage([]byte{0xC3, 0x28}, 65001)
	var eerr *EncodingError
	assert.ErrorAs(t, err, &eerr)
}

func TestDecodeCodePageUnknownPage(t *testing.T) {
	_, err := decodeCodePage([]byte{0x61}, 1200)

	var eerr *EncodingError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, uint32(1200), eerr.CodePage)
	assert.Contains(t, err.Error(), "no decoder")
}

func TestDecodeCodePageCyrillic(t *testing.T) {
	// "пароль" in Windows-1251.
	got, err := decodeCodePage([]byte{0xEF, 0xE0, 0xF0, 0xEE, 0xEB, 0xFC}, 1251)
	require.NoError(t, err)
	assert.Equal(t, "пароль", got)
}
