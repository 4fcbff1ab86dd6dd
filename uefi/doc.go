// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package uefi implements a driver for the Unified Extensible Firmware
// Interface (UEFI) following the specifications at:
//
//	https://uefi.org/specs/UEFI/2.10/
//
// Firmware service invocations are only meant to be used with `GOOS=tamago`
// as supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago, and carry a matching build
// constraint. Data structure handling (status words, GUIDs, memory map
// descriptors) builds with any toolchain.
package uefi
