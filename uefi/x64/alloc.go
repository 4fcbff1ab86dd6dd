// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package x64

import (
	_ "unsafe"

	"github.com/usbarmory/go-efi/uefi"
)

//go:linkname ramStart runtime.ramStart
var ramStart uint64 = 0x10000000

//go:linkname ramSize runtime.ramSize
var ramSize uint64 = 0x40000000

// allocateHeap reserves the runtime memory region with the firmware, as the
// Go heap must not be reclaimed by UEFI boot services allocations.
func allocateHeap() {
	if UEFI.Boot == nil {
		return
	}

	err := UEFI.Boot.AllocatePages(
		uefi.AllocateAddress,
		uefi.EfiLoaderData,
		int(ramSize),
		ramStart,
	)

	if err != nil {
		print("could not allocate runtime heap within UEFI memory\n")
	}
}
