// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uefi

import (
	"testing"
)

func TestParseGUID(t *testing.T) {
	// EFI_ACPI_20_TABLE_GUID
	s := "8868e871-e4f1-11d3-bc22-0080c73c8881"

	g, err := ParseGUID(s)

	if err != nil {
		t.Fatal(err)
	}

	// first three fields are stored little-endian
	if g[0] != 0x71 || g[3] != 0x88 || g[4] != 0xf1 || g[8] != 0xbc {
		t.Fatalf("unexpected native layout % x", g)
	}

	if g.String() != s {
		t.Fatalf("expected %q, got %q", s, g.String())
	}
}

func TestParseGUIDInvalid(t *testing.T) {
	if _, err := ParseGUID("8868e871-e4f1-11d3-bc22"); err == nil {
		t.Fatal("expected error on truncated GUID")
	}

	if _, err := ParseGUID("8868e871e4f111d3bc220080c73c8881"); err == nil {
		t.Fatal("expected error on missing separators")
	}
}

func TestStatusName(t *testing.T) {
	if name := StatusName(EFI_DEVICE_ERROR); name != "EFI_DEVICE_ERROR" {
		t.Fatalf("unexpected status name %q", name)
	}

	// every declared status word must resolve to its name
	for status, name := range statusNames {
		if StatusName(status) != name {
			t.Fatalf("unexpected status name for %#x", status)
		}
	}

	if name := StatusName(EFI_SECURITY_VIOLATION); name != "EFI_SECURITY_VIOLATION" {
		t.Fatalf("unexpected status name %q", name)
	}

	if err := parseStatus(EFI_SUCCESS); err != nil {
		t.Fatal(err)
	}

	if err := parseStatus(EFI_NOT_READY); err == nil {
		t.Fatal("expected error status")
	}
}
