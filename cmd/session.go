// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package cmd

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/hako/durafmt"

	"github.com/usbarmory/go-efi/shell"
)

// demoStall is the duration of the `hello` command demonstration wait.
const demoStall = 10 * time.Second

func init() {
	shell.Add(shell.Cmd{
		Name: "hello",
		Help: "log greeting and stall for 10 seconds",
		Fn:   helloCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "stall",
		Args:    1,
		Pattern: regexp.MustCompile(`^stall (\d+)$`),
		Syntax:  "<microseconds>",
		Help:    "EFI_BOOT_SERVICES.Stall()",
		Fn:      stallCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "wdog",
		Args:    1,
		Pattern: regexp.MustCompile(`^wdog (\d+)$`),
		Syntax:  "<seconds>",
		Help:    "EFI_BOOT_SERVICES.SetWatchdogTimer()",
		Fn:      wdogCmd,
	})
}

func helloCmd(_ *shell.Interface, _ []string) (res string, err error) {
	if Session == nil {
		return "", errors.New("no boot session")
	}

	if err = Session.Log("Hello EFI world from Go!"); err != nil {
		return
	}

	if err = Session.Stall(demoStall); err != nil {
		return
	}

	return fmt.Sprintf("stalled %s", durafmt.Parse(demoStall)), nil
}

func stallCmd(_ *shell.Interface, arg []string) (res string, err error) {
	if Session == nil {
		return "", errors.New("no boot session")
	}

	usec, err := strconv.ParseUint(arg[0], 10, 64)

	if err != nil {
		return "", fmt.Errorf("invalid duration, %v", err)
	}

	d := time.Duration(usec) * time.Microsecond

	if err = Session.Stall(d); err != nil {
		return
	}

	return fmt.Sprintf("stalled %s", durafmt.Parse(d)), nil
}

func wdogCmd(_ *shell.Interface, arg []string) (res string, err error) {
	if UEFI == nil || UEFI.Boot == nil {
		return "", errors.New("EFI Boot Services are not present")
	}

	sec, err := strconv.Atoi(arg[0])

	if err != nil {
		return "", fmt.Errorf("invalid timeout, %v", err)
	}

	if err = UEFI.Boot.SetWatchdogTimer(sec); err != nil {
		return
	}

	if sec == 0 {
		return "watchdog disarmed", nil
	}

	return fmt.Sprintf("watchdog armed for %ds", sec), nil
}
