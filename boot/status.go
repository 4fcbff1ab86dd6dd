// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package boot

import (
	"errors"

	"github.com/usbarmory/go-efi/uefi"
)

// Status represents the outcome of a boot session as communicated back to
// the firmware loader.
type Status struct {
	word uint64
	err  error
}

// Success is the status of sessions terminating without fatal errors.
var Success = Status{word: uefi.EFI_SUCCESS}

// errorStatus maps a fatal session error to its EFI status word, a lost
// console maps to a device error, anything else to a load error.
func errorStatus(err error) Status {
	word := uint64(uefi.EFI_LOAD_ERROR)

	if errors.Is(err, ErrConsoleWrite) {
		word = uefi.EFI_DEVICE_ERROR
	}

	return Status{
		word: word,
		err:  err,
	}
}

// Success reports whether the status represents normal completion.
func (s Status) Success() bool {
	return s.word == uefi.EFI_SUCCESS
}

// EFI returns the EFI status word for EFI_BOOT_SERVICES.Exit().
func (s Status) EFI() uint64 {
	return s.word
}

// Err returns the fatal session error folded in the status, if any.
func (s Status) Err() error {
	return s.err
}

// String returns the specification name of the status EFI word.
func (s Status) String() string {
	if s.word == uefi.EFI_SUCCESS {
		return "EFI_SUCCESS"
	}

	return uefi.StatusName(s.word)
}
