package wincred

import (
	"errors"
	"syscall"
	"unsafe"
)

// Win32 status codes surfaced by the credential primitives.
const (
	errorNotFound = 1168 // ERROR_NOT_FOUND
)

// maxBlobSize is CRED_MAX_CREDENTIAL_BLOB_SIZE from wincred.h. The store
// never hands back a bigger blob; anything larger means a corrupt record.
const maxBlobSize = 5 * 512

// filetime mirrors the Win32 FILETIME struct.
type filetime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// sysCredential mirrors the CREDENTIALW layout field for field. It is
// declared with plain Go pointer types so the codec compiles and is
// testable on every platform; only the advapi32 backend is build-tagged.
type sysCredential struct {
	Flags              uint32
	Type               uint32
	TargetName         *uint16
	Comment            *uint16
	LastWritten        filetime
	CredentialBlobSize uint32
	CredentialBlob     *byte
	Persist            uint32
	AttributeCount     uint32
	Attributes         unsafe.Pointer
	TargetAlias        *uint16
	UserName           *uint16
}

// nativeAPI is the set of platform primitives the store adapter calls.
// The contract is fixed by advapi32: read and enumerate hand back memory
// owned by the native layer that must be released with credFree exactly
// once, and every failure is reported as a syscall.Errno.
type nativeAPI interface {
	credWrite(cred *sysCredential, flags uint32) error
	credRead(target *uint16, typ, flags uint32) (*sysCredential, error)
	credDelete(target *uint16, typ, flags uint32) error
	credEnumerate(filter *uint16, flags uint32) (count uint32, creds **sysCredential, err error)
	credFree(p unsafe.Pointer)
	getACP() uint32
}

// platformErr wraps a native failure, extracting the Win32 code when the
// underlying error is a syscall.Errno.
func platformErr(op string, err error) error {
	var code uint32
	var errno syscall.Errno
	if errors.As(err, &errno) {
		code = uint32(errno)
	}
	return &PlatformError{Op: op, Code: code, Err: err}
}
