// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package boot implements the boot services facade for UEFI applications,
// which owns the one-time initialization of firmware console logging, exposes
// a blocking stall primitive and maps the session outcome to the EFI status
// word returned to the firmware loader.
//
// UEFI applications run with a single thread of control before the operating
// system takes over, all operations are synchronous and the facade therefore
// requires no locking.
package boot

import (
	"fmt"
	"io"
	"log"
	"time"
)

// State represents the lifecycle state of a boot session.
type State int

// Boot session lifecycle
const (
	Uninitialized State = iota
	Initialized
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Services provides the firmware primitives borrowed by a session for its
// duration: console output discovery and the firmware timing service.
type Services interface {
	// ConsoleOutput returns the firmware text output sink.
	ConsoleOutput() (io.Writer, error)

	// Stall blocks the calling execution context for at least the
	// requested number of microseconds.
	Stall(usec uint64) error
}

// Watchdog is optionally implemented by firmware services exposing the boot
// watchdog timer, which Init disarms to keep the firmware from resetting the
// platform while the session owns the console.
type Watchdog interface {
	SetWatchdogTimer(sec int) error
}

// Session represents a boot session, the execution window between the
// firmware loader handing control to the application and the application
// returning a status.
//
// The firmware allows exactly one such window per boot, the zero value is a
// session in Uninitialized state ready for Init.
type Session struct {
	svc     Services
	state   State
	console io.Writer
	fatal   error
}

// NewSession returns a boot session over the argument firmware services.
func NewSession(svc Services) *Session {
	return &Session{
		svc: svc,
	}
}

// State returns the current session lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Init binds the session to the firmware console, registers the global [log]
// backend on it and disarms the boot watchdog when the firmware exposes one.
//
// It must be called at most once per session, further calls fail with
// [ErrAlreadyInitialized] leaving the session state unchanged. A console
// discovery failure is returned wrapping [ErrUnavailable] and keeps the
// session Uninitialized.
func (s *Session) Init() (err error) {
	if s.state != Uninitialized {
		return ErrAlreadyInitialized
	}

	console, err := s.svc.ConsoleOutput()

	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.console = console
	s.state = Initialized

	log.SetFlags(0)
	log.SetOutput(console)

	if wdog, ok := s.svc.(Watchdog); ok {
		// best-effort, sessions outliving the stock 5 minute timeout
		// would otherwise trigger a platform reset
		_ = wdog.SetWatchdogTimer(0)
	}

	return
}

// Log writes a message, supplemented with a trailing newline, to the firmware
// console.
//
// The write is synchronous, a write failure leaves no fallback I/O path and
// is therefore recorded as fatal for the remainder of the session, surfacing
// in the Finalize status.
func (s *Session) Log(msg string) (err error) {
	if s.state != Initialized {
		return ErrNotInitialized
	}

	if _, err = fmt.Fprintln(s.console, msg); err != nil {
		s.fatal = fmt.Errorf("%w: %v", ErrConsoleWrite, err)
		return s.fatal
	}

	return
}

// Stall blocks the calling execution context for at least the argument
// duration, rounded up to whole microseconds, using the firmware timing
// service.
//
// There is no operating system scheduler to yield to, the wait cannot be
// cancelled or woken early.
func (s *Session) Stall(d time.Duration) (err error) {
	if s.state != Initialized {
		return ErrNotInitialized
	}

	if d < 0 {
		return fmt.Errorf("invalid stall duration %v", d)
	}

	usec := uint64((d + time.Microsecond - 1) / time.Microsecond)

	if err = s.svc.Stall(usec); err != nil {
		s.fatal = fmt.Errorf("%w: %v", ErrUnavailable, err)
		return s.fatal
	}

	return
}

// Finalize terminates the session and maps its outcome to the firmware-level
// status, [Success] on normal completion or the first recorded fatal error
// otherwise.
//
// No explicit teardown takes place as the firmware reclaims the environment
// once the application returns, no further session calls are valid.
func (s *Session) Finalize() Status {
	s.state = Terminated

	if s.fatal != nil {
		return errorStatus(s.fatal)
	}

	return Success
}
