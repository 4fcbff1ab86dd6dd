// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package boot

import (
	"errors"
	"io"

	"github.com/usbarmory/go-efi/uefi"
)

// FirmwareServices adapts an initialized [uefi.Services] instance to the
// session [Services] interface.
//
// The underlying system table remains owned by the firmware, the adapter
// borrows it for the session duration and must not be retained past session
// termination.
type FirmwareServices struct {
	// UEFI services instance
	UEFI *uefi.Services
}

// ConsoleOutput returns the EFI Simple Text Output protocol writer.
func (f *FirmwareServices) ConsoleOutput() (io.Writer, error) {
	if f.UEFI == nil || f.UEFI.Console == nil || f.UEFI.Console.Out == 0 {
		return nil, errors.New("EFI Simple Text Output protocol is not present")
	}

	return f.UEFI.Console, nil
}

// Stall calls EFI_BOOT_SERVICES.Stall().
func (f *FirmwareServices) Stall(usec uint64) error {
	if f.UEFI == nil || f.UEFI.Boot == nil {
		return errors.New("EFI Boot Services are not present")
	}

	return f.UEFI.Boot.Stall(usec)
}

// SetWatchdogTimer calls EFI_BOOT_SERVICES.SetWatchdogTimer(), implementing
// the optional session [Watchdog] capability.
func (f *FirmwareServices) SetWatchdogTimer(sec int) error {
	if f.UEFI == nil || f.UEFI.Boot == nil {
		return errors.New("EFI Boot Services are not present")
	}

	return f.UEFI.Boot.SetWatchdogTimer(sec)
}
