// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"fmt"
)

// the EFI_STATUS high bit marks error codes
const efiError = 1 << 63

// EFI Status Codes
// https://uefi.org/specs/UEFI/2.10/Apx_D_Status_Codes.html
const (
	EFI_SUCCESS = 0

	EFI_LOAD_ERROR         = efiError | 1
	EFI_INVALID_PARAMETER  = efiError | 2
	EFI_UNSUPPORTED        = efiError | 3
	EFI_BAD_BUFFER_SIZE    = efiError | 4
	EFI_BUFFER_TOO_SMALL   = efiError | 5
	EFI_NOT_READY          = efiError | 6
	EFI_DEVICE_ERROR       = efiError | 7
	EFI_WRITE_PROTECTED    = efiError | 8
	EFI_OUT_OF_RESOURCES   = efiError | 9
	EFI_NOT_FOUND          = efiError | 14
	EFI_TIMEOUT            = efiError | 18
	EFI_ABORTED            = efiError | 21
	EFI_SECURITY_VIOLATION = efiError | 26
)

var statusNames = map[uint64]string{
	EFI_LOAD_ERROR:         "EFI_LOAD_ERROR",
	EFI_INVALID_PARAMETER:  "EFI_INVALID_PARAMETER",
	EFI_UNSUPPORTED:        "EFI_UNSUPPORTED",
	EFI_BAD_BUFFER_SIZE:    "EFI_BAD_BUFFER_SIZE",
	EFI_BUFFER_TOO_SMALL:   "EFI_BUFFER_TOO_SMALL",
	EFI_NOT_READY:          "EFI_NOT_READY",
	EFI_DEVICE_ERROR:       "EFI_DEVICE_ERROR",
	EFI_WRITE_PROTECTED:    "EFI_WRITE_PROTECTED",
	EFI_OUT_OF_RESOURCES:   "EFI_OUT_OF_RESOURCES",
	EFI_NOT_FOUND:          "EFI_NOT_FOUND",
	EFI_TIMEOUT:            "EFI_TIMEOUT",
	EFI_ABORTED:            "EFI_ABORTED",
	EFI_SECURITY_VIOLATION: "EFI_SECURITY_VIOLATION",
}

// StatusName returns the specification name of an EFI status word, or its
// hexadecimal representation when unknown.
func StatusName(status uint64) string {
	if name, ok := statusNames[status]; ok {
		return name
	}

	return fmt.Sprintf("%#x", status)
}

func parseStatus(status uint64) (err error) {
	switch {
	case status != EFI_SUCCESS:
		return fmt.Errorf("EFI_STATUS error %s (%d)", StatusName(status), status&0xff)
	default:
		return
	}
}
