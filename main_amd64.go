// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && amd64

package main

import (
	"log"
	"runtime"

	"github.com/usbarmory/go-efi/boot"
	"github.com/usbarmory/go-efi/cmd"
	"github.com/usbarmory/go-efi/shell"
	"github.com/usbarmory/go-efi/uefi/x64"
)

func main() {
	session := boot.NewSession(&boot.FirmwareServices{
		UEFI: x64.UEFI,
	})

	if err := session.Init(); err != nil {
		// fail fast, there is no I/O path to report anything better
		log.Printf("could not initialize boot session, %v", err)
		runtime.Exit(1)
	}

	session.Log(cmd.Banner)

	cmd.Session = session
	cmd.UEFI = x64.UEFI

	iface := &shell.Interface{
		Banner:     cmd.Banner,
		ReadWriter: x64.UEFI.Console,
	}

	iface.Start()

	status := session.Finalize()

	if x64.UEFI.Boot != nil {
		if err := x64.UEFI.Boot.Exit(status.EFI()); err != nil {
			log.Printf("could not exit to firmware, %v", err)
		}
	}

	runtime.Exit(0)
}
