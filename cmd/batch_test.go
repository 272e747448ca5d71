package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/calcsolve/internal/domain"
	domainmocks "github.com/mouse-blink/calcsolve/internal/domain/mocks"
	m "github.com/mouse-blink/calcsolve/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_PassesPathAndOptions(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Batch", mock.Anything, domain.BatchArgs{
		Path:          m.Path("games.yaml"),
		SearchOptions: domain.SearchOptions{Live: true, Threads: 2},
	}).Return(nil)

	_, _, err := execute("batch", "--live", "-p", "2", "games.yaml")
	require.NoError(t, err)
}

func TestBatchCmd_RequiresFile(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	_, _, err := execute("batch")
	assert.Error(t, err)
}

func TestBatchCmd_UnsupportedVersion(t *testing.T) {
	useWorkflow(t, nil)

	path := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 9\ngames: []\n"), 0o600))

	_, _, err := execute("batch", path)
	assert.ErrorContains(t, err, "unsupported")
}
