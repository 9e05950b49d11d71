// Package cli renders calculator results and errors for the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/agbru/bigcalc/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/format"
)

var (
	opColor     = color.New(color.FgBlue)
	resultColor = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
	noteColor   = color.New(color.Faint)
)

// Presenter writes operation outcomes. Quiet mode reduces output to the bare
// result so it can be piped; verbose mode adds timing.
type Presenter struct {
	Verbose bool
	Quiet   bool
}

// PresentResult writes one operation result. Results longer than
// TruncationLimit characters are truncated to their edges unless quiet mode
// asked for the raw value.
func (p Presenter) PresentResult(out io.Writer, op, result string, elapsed time.Duration) {
	if p.Quiet {
		fmt.Fprintln(out, result)
		return
	}
	display := format.TruncateNumeral(result, TruncationLimit, DisplayEdges)
	fmt.Fprintf(out, "%s = %s\n", opColor.Sprint(op), resultColor.Sprint(display))
	if p.Verbose {
		fmt.Fprintf(out, "%s\n", noteColor.Sprintf("computed in %s", format.FormatExecutionDuration(elapsed)))
	}
}

// PresentError writes the failure and maps it to the process exit code.
func (p Presenter) PresentError(out io.Writer, op string, err error) int {
	fmt.Fprintf(out, "%s\n", errColor.Sprintf("bigcalc: %s: %v", op, err))
	return ExitCodeFor(err)
}

// ExitCodeFor classifies an error into the exit code taxonomy of
// internal/errors.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	}

	var timeoutErr apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		return apperrors.ExitErrorTimeout
	}

	var configErr apperrors.ConfigError
	var validationErr apperrors.ValidationError
	var digitErr bigint.InvalidDigitError
	var radixErr bigint.InvalidRadixError
	var coerceErr bigint.CoercionError
	if errors.As(err, &configErr) || errors.As(err, &validationErr) ||
		errors.As(err, &digitErr) || errors.As(err, &radixErr) || errors.As(err, &coerceErr) {
		return apperrors.ExitErrorConfig
	}

	var divErr bigint.DivisionByZeroError
	var invErr bigint.NotInvertibleError
	var expErr bigint.InvalidExponentError
	var shiftErr bigint.ShiftRangeError
	if errors.As(err, &divErr) || errors.As(err, &invErr) ||
		errors.As(err, &expErr) || errors.As(err, &shiftErr) {
		return apperrors.ExitErrorDomain
	}

	return apperrors.ExitErrorGeneric
}
