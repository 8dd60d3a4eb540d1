//go:build windows

package wincred

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	advapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procCredWriteW     = advapi32.NewProc("CredWriteW")
	procCredReadW      = advapi32.NewProc("CredReadW")
	procCredDeleteW    = advapi32.NewProc("CredDeleteW")
	procCredEnumerateW = advapi32.NewProc("CredEnumerateW")
	procCredFree       = advapi32.NewProc("CredFree")
)

// advapiStore is the real backend over advapi32.dll.
type advapiStore struct{}

func newNativeAPI() (nativeAPI, error) {
	return advapiStore{}, nil
}

func (advapiStore) credWrite(cred *sysCredential, flags uint32) error {
	ret, _, err := procCredWriteW.Call(
		uintptr(unsafe.Pointer(cred)),
		uintptr(flags),
	)
	if ret == 0 {
		return err
	}
	return nil
}

func (advapiStore) credRead(target *uint16, typ, flags uint32) (*sysCredential, error) {
	var out *sysCredential
	ret, _, err := procCredReadW.Call(
		uintptr(unsafe.Pointer(target)),
		uintptr(typ),
		uintptr(flags),
		uintptr(unsafe.Pointer(&out)),
	)
	if ret == 0 {
		return nil, err
	}
	return out, nil
}

func (advapiStore) credDelete(target *uint16, typ, flags uint32) error {
	ret, _, err := procCredDeleteW.Call(
		uintptr(unsafe.Pointer(target)),
		uintptr(typ),
		uintptr(flags),
	)
	if ret == 0 {
		return err
	}
	return nil
}

func (advapiStore) credEnumerate(filter *uint16, flags uint32) (uint32, **sysCredential, error) {
	var count uint32
	var creds **sysCredential
	ret, _, err := procCredEnumerateW.Call(
		uintptr(unsafe.Pointer(filter)),
		uintptr(flags),
		uintptr(unsafe.Pointer(&count)),
		uintptr(unsafe.Pointer(&creds)),
	)
	if ret == 0 {
		return 0, nil, err
	}
	return count, creds, nil
}

func (advapiStore) credFree(p unsafe.Pointer) {
	if p == nil {
		return
	}
	procCredFree.Call(uintptr(p))
}

func (advapiStore) getACP() uint32 {
	return windows.GetACP()
}
