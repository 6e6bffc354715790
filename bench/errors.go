// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a Config that Run cannot execute.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrVerifyFailed reports that dense and sparse results disagreed, or that
	// the dense product disagreed with the gonum oracle.
	ErrVerifyFailed = errors.New("bench: verification failed")

	// ErrEmptyReport is returned by SaveChart when there is nothing to draw.
	ErrEmptyReport = errors.New("bench: empty report")
)

// configErrorf wraps ErrInvalidConfig with a formatted detail.
func configErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// verifyErrorf wraps ErrVerifyFailed with the size, iteration and operation.
func verifyErrorf(size, iter int, op Operation, detail string) error {
	return fmt.Errorf("size %d, iteration %d, %s: %s: %w", size, iter, op, detail, ErrVerifyFailed)
}
