// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a specific exit code without an extra error line.
// The command is expected to have written its own output; main checks
// for the ExitCode method and exits silently with the code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the requested process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}
