package wincred

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

// supportedCredKeys is the fixed set of credential keys this package
// round-trips, matching the CREDENTIALW fields the generic type uses.
var supportedCredKeys = map[string]bool{
	"Type":           true,
	"TargetName":     true,
	"Persist":        true,
	"UserName":       true,
	"CredentialBlob": true,
	"Comment":        true,
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// validateKeys rejects any key outside the supported set before a native
// record is built.
func validateKeys(cred Credential) error {
	var unknown []string
	for k := range cred {
		if !supportedCredKeys[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{Keys: unknown}
	}
	return nil
}

// encodeCredential builds a zeroed native record and fills in every
// supported key present in cred. acp is consulted only when the secret
// arrives as raw bytes and needs a code-page decode first.
func encodeCredential(cred Credential, acp func() uint32) (*sysCredential, error) {
	if err := validateKeys(cred); err != nil {
		return nil, err
	}

	rec := new(sysCredential)
	for key, value := range cred {
		switch key {
		case "Type", "Persist":
			n, ok := asUint32(value)
			if !ok {
				return nil, &ValidationError{Reason: fmt.Sprintf("%s must be an integer, got %T", key, value)}
			}
			if key == "Type" {
				rec.Type = n
			} else {
				rec.Persist = n
			}
		case "TargetName", "UserName", "Comment":
			s, ok := value.(string)
			if !ok {
				return nil, &ValidationError{Reason: fmt.Sprintf("%s must be a string, got %T", key, value)}
			}
			p, err := utf16Ptr(s)
			if err != nil {
				return nil, err
			}
			switch key {
			case "TargetName":
				rec.TargetName = p
			case "UserName":
				rec.UserName = p
			case "Comment":
				rec.Comment = p
			}
		case "CredentialBlob":
			blob, err := encodeBlob(value, acp)
			if err != nil {
				return nil, err
			}
			rec.CredentialBlobSize = uint32(len(blob))
			if len(blob) > 0 {
				rec.CredentialBlob = &blob[0]
			}
		}
	}
	return rec, nil
}

// encodeBlob turns the secret into the UTF-16LE byte buffer CredWrite
// expects. A string encodes directly; raw bytes are first decoded under
// the active system code page with strict error handling. The returned
// length carries no terminator.
func encodeBlob(secret any, acp func() uint32) ([]byte, error) {
	var text string
	switch v := secret.(type) {
	case string:
		text = v
	case []byte:
		decoded, err := decodeCodePage(v, acp())
		if err != nil {
			return nil, err
		}
		text = decoded
	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("CredentialBlob must be a string or []byte, got %T", secret)}
	}
	out, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode credential blob: %w", err)
	}
	return out, nil
}

// decodeCredential copies every supported field out of a native record
// into an owned Credential. The blob comes back as exactly
// CredentialBlobSize raw bytes; callers that stored text get its UTF-16LE
// encoding and can recover the string with DecodeBlob.
func decodeCredential(rec *sysCredential) (Credential, error) {
	blob, err := copyBlob(rec)
	if err != nil {
		return nil, err
	}
	return Credential{
		"Type":           rec.Type,
		"TargetName":     utf16PtrToString(rec.TargetName),
		"Persist":        rec.Persist,
		"UserName":       utf16PtrToString(rec.UserName),
		"CredentialBlob": blob,
		"Comment":        utf16PtrToString(rec.Comment),
	}, nil
}

// copyBlob reads CredentialBlobSize bytes from native memory into an
// owned slice, guarding against records whose size and pointer disagree.
func copyBlob(rec *sysCredential) ([]byte, error) {
	size := rec.CredentialBlobSize
	if size == 0 {
		return []byte{}, nil
	}
	if rec.CredentialBlob == nil {
		return nil, fmt.Errorf("decode credential %q: blob size %d with nil blob pointer",
			utf16PtrToString(rec.TargetName), size)
	}
	if size > maxBlobSize {
		return nil, fmt.Errorf("decode credential %q: blob size %d exceeds maximum %d",
			utf16PtrToString(rec.TargetName), size, maxBlobSize)
	}
	owned := make([]byte, size)
	copy(owned, unsafe.Slice(rec.CredentialBlob, size))
	return owned, nil
}

// DecodeBlob converts a CredentialBlob value returned by Read or
// Enumerate back into the text that was stored.
func DecodeBlob(blob []byte) (string, error) {
	if len(blob)%2 != 0 {
		return "", fmt.Errorf("credential blob has odd length %d, not UTF-16LE", len(blob))
	}
	out, err := utf16le.NewDecoder().Bytes(blob)
	if err != nil {
		return "", fmt.Errorf("decode credential blob: %w", err)
	}
	return string(out), nil
}

// asUint32 coerces the integer types a caller might plausibly store in a
// Credential map down to the DWORD the native record wants.
func asUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint32(n), true
	case int32:
		if n < 0 {
			return 0, false
		}
		return uint32(n), true
	case int64:
		if n < 0 || n > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case uint:
		if uint64(n) > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case uint64:
		if n > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	default:
		return 0, false
	}
}

// utf16Ptr converts s to a NUL-terminated UTF-16 buffer and returns a
// pointer to its first unit, the LPWSTR shape the native record wants.
func utf16Ptr(s string) (*uint16, error) {
	for _, r := range s {
		if r == 0 {
			return nil, &ValidationError{Reason: "string contains a NUL character"}
		}
	}
	buf := utf16.Encode([]rune(s))
	buf = append(buf, 0)
	return &buf[0], nil
}

// utf16PtrToString walks a NUL-terminated UTF-16 buffer back into a Go
// string. A nil pointer decodes to the empty string.
func utf16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; ptr = unsafe.Add(ptr, unsafe.Sizeof(uint16(0))) {
		n++
	}
	return string(utf16.Decode(unsafe.Slice(p, n)))
}
