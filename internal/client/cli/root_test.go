package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	h := newHarness(t, "")

	out, err := h.exec(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
}

func TestExecute_PersistsAcrossRuns(t *testing.T) {
	t.Setenv("WORDTRAIL_LOG_LEVEL", "error")
	store := filepath.Join(t.TempDir(), "data", "wordtrail.db")
	ctx := context.Background()

	var out, errOut bytes.Buffer
	err := Execute(ctx, []string{"-d", store, "language", "set", "de"}, strings.NewReader(""), &out, &errOut)
	require.NoError(t, err, errOut.String())

	out.Reset()
	err = Execute(ctx, []string{"language", "show", "--store", store}, strings.NewReader(""), &out, &errOut)
	require.NoError(t, err, errOut.String())
	assert.Contains(t, out.String(), "Deutsch (de)")
}

func TestExecute_ReportsCommandError(t *testing.T) {
	t.Setenv("WORDTRAIL_STORE_PATH", ":memory:")

	var out, errOut bytes.Buffer
	err := Execute(context.Background(), []string{"whoami"}, strings.NewReader(""), &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Error: not authenticated")
}

func TestExecute_InvalidConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), []string{"-a", "ftp://x", "whoami"}, strings.NewReader(""), &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Error:")
}
