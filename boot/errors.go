// Copyright (c) The go-efi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package boot

import (
	"errors"
)

// Session errors
var (
	// ErrAlreadyInitialized is returned by Init on sessions past their
	// one-time initialization.
	ErrAlreadyInitialized = errors.New("boot session already initialized")

	// ErrNotInitialized is returned by operations requiring a session in
	// Initialized state.
	ErrNotInitialized = errors.New("boot session not initialized")

	// ErrConsoleWrite wraps firmware console write failures, fatal as no
	// fallback I/O path exists once console access is lost.
	ErrConsoleWrite = errors.New("console write failure")

	// ErrUnavailable wraps firmware service failures, fatal at Init time
	// as well as for the timing service afterwards.
	ErrUnavailable = errors.New("firmware service unavailable")
)
