package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	first, err := embedder.EmbedText(ctx, "introduction to retrieval")
	require.NoError(t, err)
	second, err := embedder.EmbedText(ctx, "introduction to retrieval")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same text should produce the same vector")
	assert.Len(t, first, 384)
	assert.Equal(t, 2, embedder.CallCount())
}

func TestMockEmbedder_ConcurrentCalls(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	const workers = 8
	const callsPerWorker = 16

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < callsPerWorker; i++ {
				_, err := embedder.EmbedTexts(ctx, []string{"lesson one", "lesson two"})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*callsPerWorker, embedder.CallCount())
}

func TestMockEmbedder_Reset(t *testing.T) {
	embedder := NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1}, nil
	}

	_, err := embedder.EmbedText(context.Background(), "anything")
	require.NoError(t, err)
	require.Equal(t, 1, embedder.CallCount())

	embedder.Reset()

	assert.Equal(t, 0, embedder.CallCount())
	assert.Nil(t, embedder.EmbedTextFunc)
}
