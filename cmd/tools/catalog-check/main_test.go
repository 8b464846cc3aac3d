package main

import (
	"path/filepath"
	"strings"
	"testing"

	"career-advisor/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	for _, cmd := range []string{"validate", "list", "select", "export", "help"} {
		assert.Contains(t, usage, "\n  "+cmd)
	}
	assert.True(t, strings.HasSuffix(usage, "\n"))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "React"}, splitSkills(" Python, ,React ,"))
	assert.Nil(t, splitSkills(""))
}

func TestExportDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")
	require.NoError(t, exportDefault(path))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Default().Careers), len(c.Careers))
	assert.NotEmpty(t, c.LastUpdated)
}
