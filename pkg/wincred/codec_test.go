package wincred

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acp1252() uint32 { return 1252 }

// UTF-16LE encoding of "pässwörd", no terminator.
var passwordUTF16LE = []byte{
	0x70, 0x00, // p
	0xE4, 0x00, // ä
	0x73, 0x00, // s
	0x73, 0x00, // s
	0x77, 0x00, // w
	0xF6, 0x00, // ö
	0x72, 0x00, // r
	0x64, 0x00, // d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Credential{
		"Type":           CredTypeGeneric,
		"TargetName":     "credman-test",
		"Persist":        CredPersistEnterprise,
		"UserName":       "alice",
		"CredentialBlob": "pässwörd",
		"Comment":        "round trip",
	}

	rec, err := encodeCredential(in, acp1252)
	require.NoError(t, err)

	out, err := decodeCredential(rec)
	require.NoError(t, err)

	assert.Equal(t, uint32(CredTypeGeneric), out["Type"])
	assert.Equal(t, "credman-test", out["TargetName"])
	assert.Equal(t, uint32(CredPersistEnterprise), out["Persist"])
	assert.Equal(t, "alice", out["UserName"])
	assert.Equal(t, "round trip", out["Comment"])

	// The secret reappears as its UTF-16LE byte form, not as text.
	assert.Equal(t, passwordUTF16LE, out["CredentialBlob"])
}

func TestDecodeProducesAllKeys(t *testing.T) {
	out, err := decodeCredential(&sysCredential{Type: CredTypeGeneric})
	require.NoError(t, err)

	for key := range supportedCredKeys {
		assert.Contains(t, out, key)
	}
	assert.Equal(t, "", out["TargetName"])
	assert.Equal(t, "", out["UserName"])
	assert.Equal(t, []byte{}, out["CredentialBlob"])
}

func TestEncodeRejectsUnknownKeys(t *testing.T) {
	_, err := encodeCredential(Credential{
		"TargetName": "x",
		"Bogus":      1,
		"Another":    2,
	}, acp1252)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Another", "Bogus"}, verr.Keys)
	assert.Contains(t, err.Error(), "Bogus")
}

func TestEncodeRejectsWrongFieldTypes(t *testing.T) {
	cases := []struct {
		name string
		cred Credential
	}{
		{"type not integer", Credential{"Type": "generic"}},
		{"negative persist", Credential{"Persist": -1}},
		{"target not string", Credential{"TargetName": 42}},
		{"blob not string or bytes", Credential{"CredentialBlob": 42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encodeCredential(tc.cred, acp1252)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestEncodeRejectsEmbeddedNUL(t *testing.T) {
	_, err := encodeCredential(Credential{"TargetName": "bad\x00name"}, acp1252)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestEncodeBlobFromString(t *testing.T) {
	rec, err := encodeCredential(Credential{"CredentialBlob": "pässwörd"}, acp1252)
	require.NoError(t, err)

	// Exact byte length of the encoded blob: two bytes per BMP rune, no
	// terminator counted.
	assert.Equal(t, uint32(2*len([]rune("pässwörd"))), rec.CredentialBlobSize)

	blob, err := copyBlob(rec)
	require.NoError(t, err)
	assert.Equal(t, passwordUTF16LE, blob)
}

func TestEncodeBlobFromBytesUsesCodePage(t *testing.T) {
	// "pässwörd" in Windows-1252.
	raw := []byte{0x70, 0xE4, 0x73, 0x73, 0x77, 0xF6, 0x72, 0x64}

	rec, err := encodeCredential(Credential{"CredentialBlob": raw}, acp1252)
	require.NoError(t, err)

	blob, err := copyBlob(rec)
	require.NoError(t, err)
	assert.Equal(t, passwordUTF16LE, blob)
}

func TestEncodeBlobFromBytesStrictFailure(t *testing.T) {
	// 0x81 is undefined in Windows-1252.
	_, err := encodeCredential(Credential{"CredentialBlob": []byte{0x70, 0x81}}, acp1252)

	var eerr *EncodingError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, uint32(1252), eerr.CodePage)
}

func TestEncodeBlobEmptyString(t *testing.T) {
	rec, err := encodeCredential(Credential{"CredentialBlob": ""}, acp1252)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), rec.CredentialBlobSize)
	assert.Nil(t, rec.CredentialBlob)
}

func TestCopyBlobMalformedRecords(t *testing.T) {
	target, err := utf16Ptr("corrupt")
	require.NoError(t, err)

	_, err = copyBlob(&sysCredential{TargetName: target, CredentialBlobSize: 8})
	assert.ErrorContains(t, err, "nil blob pointer")

	b := make([]byte, 4)
	_, err = copyBlob(&sysCredential{
		TargetName:         target,
		CredentialBlob:     &b[0],
		CredentialBlobSize: maxBlobSize + 1,
	})
	assert.ErrorContains(t, err, "exceeds maximum")
}

func TestDecodeBlob(t *testing.T) {
	text, err := DecodeBlob(passwordUTF16LE)
	require.NoError(t, err)
	assert.Equal(t, "pässwörd", text)

	_, err = DecodeBlob([]byte{0x70, 0x00, 0xE4})
	assert.ErrorContains(t, err, "odd length")
}

func TestUTF16PtrRoundTrip(t *testing.T) {
	p, err := utf16Ptr("héllo wörld")
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", utf16PtrToString(p))

	assert.Equal(t, "", utf16PtrToString(nil))

	empty, err := utf16Ptr("")
	require.NoError(t, err)
	assert.Equal(t, "", utf16PtrToString(empty))
}
