package parser

import (
	"errors"
	"strings"

	"github.com/specialistvlad/cleago/internal/param"
)

// ArgumentsMissingError is returned when the scan ends with positional
// descriptors still unfilled.
type ArgumentsMissingError struct {
	// Missing holds the metavars of the unfilled descriptors, in declaration
	// order.
	Missing []string
}

func (e *ArgumentsMissingError) Error() string {
	return "Missing argument for positional arguments " + strings.Join(e.Missing, ", ")
}

// ExtraArgumentError is returned for an unknown or repeated flag, or for a
// positional token with no descriptor left to bind it.
type ExtraArgumentError struct {
	Flag string
	Arg  string
}

func (e *ExtraArgumentError) Error() string {
	if e.Flag != "" {
		return "Extra argument provided with flag `" + e.Flag + "`"
	}
	return "Extra argument provided `" + e.Arg + "`"
}

// IsUsageError reports whether err belongs to the user-input taxonomy:
// ParsingError, ArgumentsMissingError or ExtraArgumentError.
func IsUsageError(err error) bool {
	var (
		perr *param.ParsingError
		merr *ArgumentsMissingError
		xerr *ExtraArgumentError
	)
	return errors.As(err, &perr) || errors.As(err, &merr) || errors.As(err, &xerr)
}
