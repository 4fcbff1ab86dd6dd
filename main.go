// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/usbarmory/go-efi/cmd"
)

func init() {
	log.SetFlags(0)

	cmd.Banner = fmt.Sprintf("%s/%s (%s) • UEFI boot services",
		runtime.GOOS, runtime.GOARCH, runtime.Version())
}
