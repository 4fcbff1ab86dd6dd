// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"testing"
)

// buildMemoryMap lays out descriptors at the argument stride, padding each
// entry as firmware carrying vendor extensions does.
func buildMemoryMap(t *testing.T, stride int, descriptors ...*MemoryDescriptor) *MemoryMap {
	t.Helper()

	var buf []byte

	for _, d := range descriptors {
		b, err := marshalBinary(d)

		if err != nil {
			t.Fatal(err)
		}

		for len(b) < stride {
			b = append(b, 0x00)
		}

		buf = append(buf, b...)
	}

	return &MemoryMap{
		MapSize:        uint64(len(buf)),
		DescriptorSize: uint64(stride),
		buf:            buf,
	}
}

func TestMemoryMapParse(t *testing.T) {
	d, _ := marshalBinary(&MemoryDescriptor{})

	// stride exceeding the descriptor structure size
	stride := len(d) + 8

	m := buildMemoryMap(t, stride,
		&MemoryDescriptor{
			Type:          EfiConventionalMemory,
			PhysicalStart: 0x10000000,
			NumberOfPages: 0x100,
		},
		&MemoryDescriptor{
			Type:          EfiBootServicesData,
			PhysicalStart: 0x20000000,
			NumberOfPages: 0x10,
		},
	)

	if err := m.parse(); err != nil {
		t.Fatal(err)
	}

	if len(m.Descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(m.Descriptors))
	}

	if m.Descriptors[1].PhysicalStart != 0x20000000 {
		t.Fatalf("descriptor stride not honored, got start %#x", m.Descriptors[1].PhysicalStart)
	}

	if end := m.Descriptors[0].PhysicalEnd(); end != 0x10000000+0x100*PageSize {
		t.Fatalf("unexpected physical end %#x", end)
	}
}

func TestMemoryMapParseInvalidStride(t *testing.T) {
	m := buildMemoryMap(t, 48, &MemoryDescriptor{})

	// a descriptor size below the structure size cannot be decoded
	m.DescriptorSize = 8

	if err := m.parse(); err == nil {
		t.Fatal("expected error on invalid descriptor size")
	}

	m.DescriptorSize = 0

	if err := m.parse(); err == nil {
		t.Fatal("expected error on zero descriptor size")
	}
}
