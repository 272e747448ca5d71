package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true and no explicit format was requested, it returns a
// TUI (Bubble Tea) that calls cancel when the user quits. Otherwise it
// returns a SimpleUI writing to cmd.
func NewUI(cmd *cobra.Command, useTTY bool, format Format, cancel context.CancelFunc) UI {
	if useTTY && format == FormatAuto {
		return NewTUI(cmd.OutOrStdout(), cancel)
	}

	if format == FormatAuto {
		format = FormatPlain
	}

	return NewSimpleUI(cmd, format)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
