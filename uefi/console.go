// Copyright (c) WithSecure Corporation
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package uefi

import (
	"io"
	"unicode/utf16"
)

const (
	// EFI ConOut offset for OutputString
	outputString = 0x08
	// EFI ConIn offset for ReadKeyStroke
	readKeyStroke = 0x08
)

// InputKey represents an EFI Input Key descriptor.
type InputKey struct {
	ScanCode    uint16
	UnicodeChar [2]byte
}

// Console implements the [io.ReadWriter] interface over EFI Simple Text
// Input/Output protocol.
type Console struct {
	io.ReadWriter

	// ForceLine controls whether line feeds (LF) should be supplemented
	// with a carriage return (CR).
	ForceLine bool

	// ReplaceTabs controls whether Console I/O output should have Tab
	// characters replaced with a number of spaces.
	ReplaceTabs int

	// In is the EFI Simple Text Input protocol instance pointer.
	In uint64

	// Out is the EFI Simple Text Output protocol instance pointer.
	Out uint64
}

// Input reads a single keystroke, the returned status is EFI_NOT_READY when
// no keystroke is pending.
func (c *Console) Input(k *InputKey) (status uint64) {
	if c.In == 0 {
		return EFI_UNSUPPORTED
	}

	return callService(c.In+readKeyStroke,
		[]uint64{
			c.In,
			ptrval(k),
		},
	)
}

// Output writes a null terminated UCS-2 string to the console.
func (c *Console) Output(p []byte) (status uint64) {
	if c.Out == 0 {
		return EFI_UNSUPPORTED
	}

	if len(p) < 2 || p[len(p)-1] != 0x00 || p[len(p)-2] != 0x00 {
		p = append(p, []byte{0x00, 0x00}...)
	}

	return callService(c.Out+outputString,
		[]uint64{
			c.Out,
			ptrval(&p[0]),
		},
	)
}

// ClearScreen empties the console and resets the cursor position.
func (c *Console) ClearScreen() {
	c.Write([]byte("\x1b[2J\x1b[H"))
}

// Read available data to buffer from console.
func (c *Console) Read(p []byte) (n int, err error) {
	k := &InputKey{}

	for n = 0; n < len(p); n += 2 {
		status := c.Input(k)

		switch {
		case status == EFI_SUCCESS:
			copy(p[n:], k.UnicodeChar[:])
		case status == EFI_NOT_READY:
			return
		default:
			return n, parseStatus(status)
		}
	}

	return
}

// Write data from buffer to console, converting UTF-8 input to the UCS-2
// encoding expected by the EFI Simple Text Output protocol.
func (c *Console) Write(p []byte) (n int, err error) {
	var s []byte

	if len(p) == 0 {
		return
	}

	b := utf16.Encode([]rune(string(p)))

	for _, r := range b {
		if r == 0x09 && c.ReplaceTabs > 0 { // Tab
			for i := 0; i < c.ReplaceTabs; i++ {
				s = append(s, []byte{0x20, 0x00}...) // Space
			}
			continue
		}

		if r == 0x0a && c.ForceLine { // LF
			s = append(s, []byte{0x0d, 0x00}...) // CR
		}

		s = append(s, byte(r&0xff))
		s = append(s, byte(r>>8))
	}

	if status := c.Output(s); status != EFI_SUCCESS {
		return 0, parseStatus(status)
	}

	return len(p), nil
}
