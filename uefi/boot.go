// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package uefi

// EFI Boot Services offsets
const (
	exit             = 0x0d8
	exitBootServices = 0x0e8
	stall            = 0x0f8
	setWatchdogTimer = 0x100
)

// arbitrary but unique code, logged by the firmware if the watchdog fires
const watchdogCode = 0xba3e5e7a1

// Stall calls EFI_BOOT_SERVICES.Stall(), blocking the calling execution
// context for at least usec microseconds.
func (s *BootServices) Stall(usec uint64) (err error) {
	status := callService(s.base+stall,
		[]uint64{
			usec,
		},
	)

	return parseStatus(status)
}

// SetWatchdogTimer calls EFI_BOOT_SERVICES.SetWatchdogTimer(), a zero timeout
// disarms the firmware watchdog.
func (s *BootServices) SetWatchdogTimer(sec int) (err error) {
	status := callService(s.base+setWatchdogTimer,
		[]uint64{
			uint64(sec),
			watchdogCode,
			0,
			0,
		},
	)

	return parseStatus(status)
}

// Exit calls EFI_BOOT_SERVICES.Exit(), returning control to the firmware
// loader with the argument status word.
func (s *BootServices) Exit(code uint64) (err error) {
	status := callService(s.base+exit,
		[]uint64{
			s.imageHandle,
			code,
			0,
			0,
		},
	)

	return parseStatus(status)
}

// ExitBootServices calls EFI_BOOT_SERVICES.ExitBootServices(), relinquishing
// all boot services, only runtime services remain usable afterwards.
func (s *BootServices) ExitBootServices() (err error) {
	memoryMap, err := s.GetMemoryMap()

	if err != nil {
		return
	}

	status := callService(s.base+exitBootServices,
		[]uint64{
			s.imageHandle,
			memoryMap.MapKey,
		},
	)

	return parseStatus(status)
}
