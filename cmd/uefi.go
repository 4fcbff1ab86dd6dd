// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package cmd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strconv"
	"unicode/utf16"

	"github.com/usbarmory/go-efi/shell"
	"github.com/usbarmory/go-efi/uefi"
)

const maxVendorSize = 32

func init() {
	shell.Add(shell.Cmd{
		Name: "uefi",
		Help: "UEFI information",
		Fn:   uefiCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "protocol",
		Args:    1,
		Pattern: regexp.MustCompile(`^protocol ([[:xdigit:]]{8}-[[:xdigit:]]{4}-[[:xdigit:]]{4}-[[:xdigit:]]{4}-[[:xdigit:]]{12})$`),
		Syntax:  "<registry format GUID>",
		Help:    "EFI_BOOT_SERVICES.LocateProtocol()",
		Fn:      locateCmd,
	})

	shell.Add(shell.Cmd{
		Name: "memmap",
		Help: "EFI_BOOT_SERVICES.GetMemoryMap()",
		Fn:   memmapCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "alloc",
		Args:    2,
		Pattern: regexp.MustCompile(`^alloc ([[:xdigit:]]+) (\d+)$`),
		Syntax:  "<hex offset> <size>",
		Help:    "EFI_BOOT_SERVICES.AllocatePages()",
		Fn:      allocCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "reset",
		Args:    1,
		Pattern: regexp.MustCompile(`reset(?: (cold|warm))?$`),
		Help:    "EFI_RUNTIME_SERVICES.ResetSystem()",
		Syntax:  "(cold|warm)?",
		Fn:      resetCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "halt, shutdown",
		Args:    1,
		Pattern: regexp.MustCompile(`^(halt|shutdown)$`),
		Help:    "shutdown system",
		Fn:      shutdownCmd,
	})
}

func firmwareVendor(t *uefi.SystemTable) string {
	var s []uint16

	b, err := dmaRead(uint(t.FirmwareVendor), maxVendorSize)

	if err != nil {
		return ""
	}

	for i := 0; i < maxVendorSize; i += 2 {
		if b[i] == 0x00 && b[i+1] == 0x00 {
			break
		}

		s = append(s, binary.LittleEndian.Uint16(b[i:i+2]))
	}

	return string(utf16.Decode(s))
}

func uefiCmd(_ *shell.Interface, _ []string) (res string, err error) {
	var buf bytes.Buffer

	if UEFI == nil || UEFI.SystemTable == nil {
		return "", errors.New("EFI System Table is not present")
	}

	t := UEFI.SystemTable

	fmt.Fprintf(&buf, "Firmware Vendor ....: %s\n", firmwareVendor(t))
	fmt.Fprintf(&buf, "Firmware Revision ..: %#x\n", t.FirmwareRevision)
	fmt.Fprintf(&buf, "Runtime Services ...: %#x\n", t.RuntimeServices)
	fmt.Fprintf(&buf, "Boot Services ......: %#x\n", t.BootServices)
	fmt.Fprintf(&buf, "Configuration Tables: %#x\n", t.ConfigurationTable)

	if c, err := t.ConfigurationTables(); err == nil {
		for _, e := range c {
			fmt.Fprintf(&buf, "  %s (%#x)\n", e.GUID, e.VendorTable)
		}
	}

	return buf.String(), err
}

func locateCmd(_ *shell.Interface, arg []string) (res string, err error) {
	if UEFI == nil || UEFI.Boot == nil {
		return "", errors.New("EFI Boot Services are not present")
	}

	addr, err := UEFI.Boot.LocateProtocolString(arg[0])
	return fmt.Sprintf("%s: %#08x", arg[0], addr), err
}

func memmapCmd(_ *shell.Interface, _ []string) (res string, err error) {
	var buf bytes.Buffer
	var memoryMap *uefi.MemoryMap

	if UEFI == nil || UEFI.Boot == nil {
		return "", errors.New("EFI Boot Services are not present")
	}

	if memoryMap, err = UEFI.Boot.GetMemoryMap(); err != nil {
		return
	}

	fmt.Fprintf(&buf, "Type Start            End              Pages            Attributes\n")

	for _, d := range memoryMap.Descriptors {
		fmt.Fprintf(&buf, "%02d   %016x %016x %016x %016x\n",
			d.Type, d.PhysicalStart, d.PhysicalEnd(), d.NumberOfPages, d.Attribute)
	}

	return buf.String(), err
}

func allocCmd(_ *shell.Interface, arg []string) (res string, err error) {
	if UEFI == nil || UEFI.Boot == nil {
		return "", errors.New("EFI Boot Services are not present")
	}

	addr, err := strconv.ParseUint(arg[0], 16, 64)

	if err != nil {
		return "", fmt.Errorf("invalid address, %v", err)
	}

	size, err := strconv.ParseUint(arg[1], 10, 32)

	if err != nil {
		return "", fmt.Errorf("invalid size, %v", err)
	}

	if (addr%uefi.PageSize) != 0 || (size%uefi.PageSize) != 0 {
		return "", errors.New("only page aligned accesses are supported")
	}

	err = UEFI.Boot.AllocatePages(
		uefi.AllocateAddress,
		uefi.EfiBootServicesData,
		int(size),
		addr,
	)

	return "", err
}

func resetCmd(_ *shell.Interface, arg []string) (res string, err error) {
	if UEFI == nil || UEFI.Runtime == nil {
		return "", errors.New("EFI Runtime Services are not present")
	}

	switch arg[0] {
	case "", "cold":
		err = UEFI.Runtime.ResetSystem(uefi.EfiResetCold)
	case "warm":
		err = UEFI.Runtime.ResetSystem(uefi.EfiResetWarm)
	}

	return
}

func shutdownCmd(_ *shell.Interface, _ []string) (res string, err error) {
	if UEFI == nil || UEFI.Runtime == nil {
		return "", errors.New("EFI Runtime Services are not present")
	}

	fmt.Printf("Goodbye from %s/%s\n", runtime.GOOS, runtime.GOARCH)

	return "", UEFI.Runtime.ResetSystem(uefi.EfiResetShutdown)
}
