package badger

import (
	"context"
	"testing"

	"github.com/coursechat/coursechat/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestPersistenceAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	catalogRepo, err := NewCatalogRepository(backend)
	require.NoError(t, err)

	course := &core.Course{
		Title:  "Introduction to MCP",
		Vector: []float32{0.1, 0.2, 0.3},
	}
	require.NoError(t, catalogRepo.AddCourses(ctx, course))
	require.NoError(t, catalogRepo.Close())
	require.NoError(t, backend.Close())

	// Reopening the same path must reconstruct prior entries
	backend, err = OpenBackend(tmpDir, false)
	require.NoError(t, err)
	defer backend.Close()
	catalogRepo, err = NewCatalogRepository(backend)
	require.NoError(t, err)
	defer catalogRepo.Close()

	found, err := catalogRepo.HasCourse(ctx, "Introduction to MCP")
	require.NoError(t, err)
	assert.True(t, found)

	titles, err := catalogRepo.ListCourseTitles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Introduction to MCP"}, titles)
}

func TestDotProduct(t *testing.T) {
	assert.InDelta(t, 1.0, dotProduct([]float32{1, 0}, []float32{1, 0}), 1e-6)
	assert.InDelta(t, 0.0, dotProduct([]float32{1, 0}, []float32{0, 1}), 1e-6)

	// Mismatched lengths use the shorter vector
	assert.InDelta(t, 0.5, dotProduct([]float32{0.5, 9}, []float32{1}), 1e-6)
}
