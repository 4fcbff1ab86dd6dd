// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package uefi

import (
	"time"
)

// EFI Runtime Services offsets
const (
	getTime     = 0x18
	resetSystem = 0x68
)

// EFI_RESET_SYSTEM
const (
	EfiResetCold = iota
	EfiResetWarm
	EfiResetShutdown
	EfiResetPlatformSpecific
)

// Time represents an EFI Time descriptor.
type Time struct {
	Year       uint16
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	_          uint8
	Nanosecond uint32
	TimeZone   int16
	Daylight   uint8
	_          uint8
}

// GetTime calls EFI_RUNTIME_SERVICES.GetTime() and converts its result,
// which the firmware reports without time zone applied, to [time.Time].
func (s *RuntimeServices) GetTime() (t time.Time, err error) {
	d := &Time{}

	status := callService(s.base+getTime,
		[]uint64{
			ptrval(d),
			0,
		},
	)

	if err = parseStatus(status); err != nil {
		return
	}

	t = time.Date(
		int(d.Year),
		time.Month(d.Month),
		int(d.Day),
		int(d.Hour),
		int(d.Minute),
		int(d.Second),
		int(d.Nanosecond),
		time.UTC,
	)

	return
}

// ResetSystem calls EFI_RUNTIME_SERVICES.ResetSystem(), which does not
// return on success.
func (s *RuntimeServices) ResetSystem(resetType int) (err error) {
	status := callService(s.base+resetSystem,
		[]uint64{
			uint64(resetType),
			EFI_SUCCESS,
			0,
			0,
		},
	)

	return parseStatus(status)
}
