//go:build unit

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReferenceBuild(t *testing.T) {
	out, err := run(t, "reference", "build", "--workspace", "192535", "--minutes", "30")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "workspace_id=192535-minutes=30-timestamp="))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "-type=RECARGA_MINUTOS"))

	_, err = run(t, "reference", "build", "--minutes", "0")
	assert.Error(t, err)
}

func TestReferenceParse(t *testing.T) {
	out, err := run(t, "reference", "parse", "workspace_id=66666-minutes=30")
	require.NoError(t, err)
	assert.Contains(t, out, "partial")
	assert.Contains(t, out, "66666")
	assert.Contains(t, out, "30")
	assert.NotContains(t, out, "timestamp:")
}

func TestSign(t *testing.T) {
	ref := "workspace_id=66666-minutes=30-timestamp=1741964966535-type=RECARGA_MINUTOS"

	out, err := run(t, "sign", "--reference", ref, "--amount-in-cents", "3000000", "--secret", "test_integrity_secret")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 64)

	_, err = run(t, "sign", "--reference", ref, "--amount-in-cents", "3000000", "--currency", "EUR", "--secret", "s")
	assert.Error(t, err)

	t.Setenv("WOMPI_INTEGRITY_SECRET", "")
	_, err = run(t, "sign", "--reference", ref, "--amount-in-cents", "3000000")
	assert.Error(t, err)
}

func TestAttemptShowRequiresReference(t *testing.T) {
	_, err := run(t, "attempt", "show")
	assert.Error(t, err)
}
