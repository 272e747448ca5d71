package cmd

import (
	"bytes"
	"testing"

	"github.com/mouse-blink/calcsolve/internal/domain"
)

// useWorkflow installs wf for the duration of the test. A nil wf makes the
// command wire the real workflow against its own writers.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

func execute(args ...string) (string, string, error) {
	cmd := newRootCmd()
	cmd.AddCommand(newBatchCmd(), newButtonsCmd())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}
