// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package boot

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"
)

// testConsole is a mock firmware console recording output lines.
type testConsole struct {
	strings.Builder

	writes int
	err    error
}

func (c *testConsole) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}

	c.writes += 1

	return c.Builder.Write(p)
}

// testServices is a mock firmware services instance recording stall and
// watchdog requests.
type testServices struct {
	console    *testConsole
	consoleErr error

	stalls   []uint64
	stallErr error

	wdog []int
}

func (m *testServices) ConsoleOutput() (io.Writer, error) {
	if m.consoleErr != nil {
		return nil, m.consoleErr
	}

	return m.console, nil
}

func (m *testServices) Stall(usec uint64) error {
	if m.stallErr != nil {
		return m.stallErr
	}

	m.stalls = append(m.stalls, usec)

	return nil
}

func (m *testServices) SetWatchdogTimer(sec int) error {
	m.wdog = append(m.wdog, sec)
	return nil
}

func testSession() (*Session, *testServices) {
	svc := &testServices{
		console: &testConsole{},
	}

	return NewSession(svc), svc
}

func restoreLog(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
	})
}

func TestLogBeforeInit(t *testing.T) {
	s, svc := testSession()

	if err := s.Log("x"); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	if svc.console.writes != 0 {
		t.Fatalf("expected zero console writes, got %d", svc.console.writes)
	}
}

func TestStallBeforeInit(t *testing.T) {
	s, svc := testSession()

	if err := s.Stall(time.Second); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	if len(svc.stalls) != 0 {
		t.Fatalf("expected zero stall requests, got %d", len(svc.stalls))
	}
}

func TestDoubleInit(t *testing.T) {
	restoreLog(t)

	s, svc := testSession()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	writes := svc.console.writes
	wdog := len(svc.wdog)

	if err := s.Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}

	if s.State() != Initialized {
		t.Fatalf("expected state %v, got %v", Initialized, s.State())
	}

	if svc.console.writes != writes || len(svc.wdog) != wdog {
		t.Fatal("second Init affected console or timer state")
	}
}

func TestInitFirmwareUnavailable(t *testing.T) {
	restoreLog(t)

	s, svc := testSession()
	svc.consoleErr = errors.New("no console protocol")

	err := s.Init()

	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if s.State() != Uninitialized {
		t.Fatalf("expected state %v, got %v", Uninitialized, s.State())
	}

	// a failed initialization may be retried
	svc.consoleErr = nil

	if err = s.Init(); err != nil {
		t.Fatal(err)
	}
}

func TestHelloScenario(t *testing.T) {
	restoreLog(t)

	s, svc := testSession()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if err := s.Log("Hello EFI world"); err != nil {
		t.Fatal(err)
	}

	if err := s.Stall(10 * time.Second); err != nil {
		t.Fatal(err)
	}

	if status := s.Finalize(); !status.Success() {
		t.Fatalf("expected success status, got %v", status)
	}

	if out := svc.console.String(); out != "Hello EFI world\n" {
		t.Fatalf("unexpected console output %q", out)
	}

	if svc.console.writes != 1 {
		t.Fatalf("expected exactly one console line, got %d writes", svc.console.writes)
	}

	if len(svc.stalls) != 1 || svc.stalls[0] != 10_000_000 {
		t.Fatalf("unexpected stall requests %v", svc.stalls)
	}
}

func TestStallDuration(t *testing.T) {
	restoreLog(t)

	s, svc := testSession()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	// sub-microsecond waits round up to honor the lower bound
	if err := s.Stall(1500 * time.Nanosecond); err != nil {
		t.Fatal(err)
	}

	if len(svc.stalls) != 1 || svc.stalls[0] != 2 {
		t.Fatalf("unexpected stall requests %v", svc.stalls)
	}

	if err := s.Stall(-time.Second); err == nil {
		t.Fatal("expected error on negative duration")
	}

	if len(svc.stalls) != 1 {
		t.Fatalf("negative duration reached the timing service, %v", svc.stalls)
	}
}

func TestWatchdogDisarm(t *testing.T) {
	restoreLog(t)

	s, svc := testSession()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if len(svc.wdog) != 1 || svc.wdog[0] != 0 {
		t.Fatalf("expected single watchdog disarm, got %v", svc.wdog)
	}
}

func TestConsoleWriteFailure(t *testing.T) {
	restoreLog(t)

	s, svc := testSession()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	svc.console.err = errors.New("device error")

	if err := s.Log("x"); !errors.Is(err, ErrConsoleWrite) {
		t.Fatalf("expected ErrConsoleWrite, got %v", err)
	}

	status := s.Finalize()

	if status.Success() {
		t.Fatal("console write failure must not terminate successfully")
	}

	if !errors.Is(status.Err(), ErrConsoleWrite) {
		t.Fatalf("expected ErrConsoleWrite in status, got %v", status.Err())
	}

	if status.String() != "EFI_DEVICE_ERROR" {
		t.Fatalf("unexpected status %v", status)
	}
}

func TestFinalizeTerminates(t *testing.T) {
	restoreLog(t)

	s, _ := testSession()

	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if status := s.Finalize(); !status.Success() {
		t.Fatalf("expected success status, got %v", status)
	}

	if s.State() != Terminated {
		t.Fatalf("expected state %v, got %v", Terminated, s.State())
	}

	if err := s.Log("x"); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	if err := s.Stall(time.Second); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
