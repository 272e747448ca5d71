package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestCLI_PlainOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"several_solutions", []string{"2", "4", "1", "+1", "*2", "+2"}},
		{"live_discovery_order", []string{"--live", "2", "4", "1", "+1", "*2", "+2"}},
		{"stop_at_first", []string{"--first", "2", "4", "1", "+1", "*2", "+2"}},
		{"parallel", []string{"-p", "4", "--format", "plain", "2", "4", "1", "+1", "*2", "+2"}},
		{"negative_goal", []string{"3", "-10", "0", "+5", "+/-"}},
		{"aliases_deduplicated", []string{"1", "0", "7", "<", "<<"}},
		{"zero_moves", []string{"0", "5", "5"}},
		{"no_solution", []string{"2", "1", "0", "5", "<<"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useWorkflow(t, nil)

			stdout, _, err := execute(tt.args...)
			require.NoError(t, err)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestCLI_BatchOutput(t *testing.T) {
	useWorkflow(t, nil)

	path := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: 1
games:
  - name: first
    moves: 1
    goal: 8
    initial: 5
    actions: ["+3"]
  - name: second
    moves: 3
    goal: 21
    initial: 0
    actions: ["+1", "2", "reverse"]
`), 0o600))

	stdout, _, err := execute("batch", path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "batch", []byte(stdout))
}
