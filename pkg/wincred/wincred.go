// Package wincred provides dictionary-style access to the Windows
// credential store. It mirrors the pywin32 win32cred surface: credentials
// are maps with a fixed set of recognized keys, secrets travel as
// UTF-16LE blobs, and the package owns all marshalling to and from the
// fixed-layout CREDENTIALW records that advapi32 understands.
package wincred

import "unsafe"

// Credential type and persistence tags from wincred.h. Only the generic
// type is supported by Read, Delete and the Enumerate filter; Persist
// values are round-tripped opaquely.
const (
	CredTypeGeneric = 0x1

	CredPersistSession      = 0x1
	CredPersistLocalMachine = 0x2
	CredPersistEnterprise   = 0x3
)

// Credential is the logical credential record. Recognized keys are
// Type, TargetName, Persist, UserName, CredentialBlob and Comment.
// On write, CredentialBlob may be a string (encoded to UTF-16LE) or a
// []byte (decoded under the system code page first, see Write). Reads
// hand CredentialBlob back as raw UTF-16LE bytes; use DecodeBlob to
// recover the text.
type Credential map[string]any

// Store talks to the platform credential store. It holds no state across
// calls; every operation is a single blocking round trip to the native
// layer, so a Store is safe for concurrent use.
type Store struct {
	api nativeAPI
}

// New opens the platform credential store. On non-Windows builds it
// fails with ErrUnsupportedPlatform.
func New() (*Store, error) {
	api, err := newNativeAPI()
	if err != nil {
		return nil, err
	}
	return &Store{api: api}, nil
}

// Write persists cred under its TargetName, replacing any existing
// credential with that name. Only flag 0 is supported. Keys outside the
// recognized set fail with a *ValidationError naming them, before any
// native call is made.
func (s *Store) Write(cred Credential, flag uint32) error {
	if flag != 0 {
		return unsupportedf("write flag %d not supported, only 0", flag)
	}
	rec, err := encodeCredential(cred, s.api.getACP)
	if err != nil {
		return err
	}
	if err := s.api.credWrite(rec, 0); err != nil {
		return platformErr("CredWrite", err)
	}
	return nil
}

// Read fetches the credential stored under target. typ must be
// CredTypeGeneric. A missing target surfaces as an error matching
// ErrNotFound.
func (s *Store) Read(target string, typ uint32) (Credential, error) {
	if typ != CredTypeGeneric {
		return nil, unsupportedf("credential type %#x not supported, only CRED_TYPE_GENERIC", typ)
	}
	tp, err := utf16Ptr(target)
	if err != nil {
		return nil, err
	}
	rec, err := s.api.credRead(tp, typ, 0)
	if err != nil {
		return nil, platformErr("CredRead", err)
	}
	// The record is native-owned; release it whether or not decoding
	// succeeds.
	defer s.api.credFree(unsafe.Pointer(rec))
	return decodeCredential(rec)
}

// Delete removes the credential stored under target. typ must be
// CredTypeGeneric. A missing target surfaces as an error matching
// ErrNotFound.
func (s *Store) Delete(target string, typ uint32) error {
	if typ != CredTypeGeneric {
		return unsupportedf("credential type %#x not supported, only CRED_TYPE_GENERIC", typ)
	}
	tp, err := utf16Ptr(target)
	if err != nil {
		return err
	}
	if err := s.api.credDelete(tp, typ, 0); err != nil {
		return platformErr("CredDelete", err)
	}
	return nil
}

// Enumerate lists stored credentials, keeping only the generic type. The
// native call does not filter by type, so the filtering happens here
// after decoding; order among kept entries follows the native result and
// is not guaranteed stable. filter, when non-empty, is passed through to
// the native layer opaquely (it accepts a name prefix ending in "*"); an
// empty filter means no filter. An empty store surfaces as an error
// matching ErrNotFound.
func (s *Store) Enumerate(filter string, flags uint32) ([]Credential, error) {
	var fp *uint16
	if filter != "" {
		p, err := utf16Ptr(filter)
		if err != nil {
			return nil, err
		}
		fp = p
	}
	count, arr, err := s.api.credEnumerate(fp, flags)
	if err != nil {
		return nil, platformErr("CredEnumerate", err)
	}
	// Single bulk release frees the pointer array and every record it
	// points at. It must run even when a decode below fails.
	defer s.api.credFree(unsafe.Pointer(arr))

	creds := make([]Credential, 0, count)
	for _, rec := range unsafe.Slice(arr, count) {
		cred, err := decodeCredential(rec)
		if err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}

	generic := creds[:0]
	for _, cred := range creds {
		if typ, ok := cred["Type"].(uint32); ok && typ == CredTypeGeneric {
			generic = append(generic, cred)
		}
	}
	return generic, nil
}
