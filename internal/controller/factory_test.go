package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_TTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true, FormatAuto, nil)

	if _, ok := ui.(*TUI); !ok {
		t.Errorf("NewUI(true, auto) returned %T, want *TUI", ui)
	}
}

func TestNewUI_TTYWithExplicitFormat(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true, FormatTable, nil)

	simple, ok := ui.(*SimpleUI)
	if !ok {
		t.Fatalf("NewUI(true, table) returned %T, want *SimpleUI", ui)
	}

	if simple.format != FormatTable {
		t.Errorf("format = %q, want %q", simple.format, FormatTable)
	}
}

func TestNewUI_NonTTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, false, FormatAuto, nil)

	simple, ok := ui.(*SimpleUI)
	if !ok {
		t.Fatalf("NewUI(false, auto) returned %T, want *SimpleUI", ui)
	}

	if simple.format != FormatPlain {
		t.Errorf("format = %q, want %q", simple.format, FormatPlain)
	}
}

func TestIsTTY_WithBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) = true, want false")
	}
}

func TestIsTTY_WithRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	if IsTTY(f) {
		t.Error("IsTTY(regular file) = true, want false")
	}
}
