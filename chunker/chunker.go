// Copyright 2026 Coursechat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chunker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coursechat/coursechat/core"
)

const (
	// DefaultChunkSize is the maximum chunk length in characters.
	DefaultChunkSize = 800

	// DefaultOverlap is the number of trailing characters shared
	// between consecutive chunks of the same lesson.
	DefaultOverlap = 100
)

var sentencePattern = regexp.MustCompile(`[^.!?]+(?:[.!?]+)?`)

// Chunker splits lesson text into overlapping sentence-aligned chunks.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures a Chunker.
type Option func(*Chunker) error

// WithChunkSize sets the maximum chunk length in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
		}
		c.chunkSize = size
		return nil
	}
}

// WithOverlap sets the target overlap between consecutive chunks.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) error {
		if overlap < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidOverlap, overlap)
		}
		c.overlap = overlap
		return nil
	}
}

// New creates a Chunker with the given options.
func New(opts ...Option) (*Chunker, error) {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.overlap >= c.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d, chunk size %d", ErrInvalidOverlap, c.overlap, c.chunkSize)
	}
	return c, nil
}

// ChunkDocument splits every lesson of doc into chunks. Chunk indexes
// are sequential across the whole course, so each chunk has a stable
// position even when lessons are short.
func (c *Chunker) ChunkDocument(doc *Document) []core.Chunk {
	var chunks []core.Chunk
	index := 0

	for _, lesson := range doc.Lessons {
		prefix := ""
		if lesson.Number != core.NoLesson {
			prefix = fmt.Sprintf("Lesson %d content: ", lesson.Number)
		}

		pieces := c.chunkText(lesson.Text, len(prefix))
		for i, piece := range pieces {
			content := piece
			if i == 0 && prefix != "" {
				content = prefix + piece
			}
			chunks = append(chunks, core.Chunk{
				Content:      content,
				CourseTitle:  doc.Course.Title,
				LessonNumber: lesson.Number,
				ChunkIndex:   index,
			})
			index++
		}
	}

	return chunks
}

// chunkText splits text into pieces of at most c.chunkSize characters,
// with the first piece shortened by firstReserve to leave room for a
// lesson prefix. Consecutive pieces share whole trailing sentences
// adding up to at least c.overlap characters where possible.
func (c *Chunker) chunkText(text string, firstReserve int) []string {
	text = normalizeWhitespace(text)
	if text == "" {
		return nil
	}

	sentences := splitSentences(text)
	var pieces []string

	i := 0
	for i < len(sentences) {
		budget := c.chunkSize
		if len(pieces) == 0 && firstReserve < budget {
			budget -= firstReserve
		}

		// A single sentence longer than the budget is split hard.
		if len(sentences[i]) > budget {
			pieces = append(pieces, hardSplit(sentences[i], budget)...)
			i++
			continue
		}

		j := i
		length := 0
		for j < len(sentences) {
			add := len(sentences[j])
			if length > 0 {
				add++ // joining space
			}
			if length+add > budget {
				break
			}
			length += add
			j++
		}
		pieces = append(pieces, strings.Join(sentences[i:j], " "))

		if j >= len(sentences) {
			break
		}

		// Start the next piece inside the tail of this one, keeping
		// whole sentences worth at least the overlap, but always
		// advancing by at least one sentence.
		k := j
		kept := 0
		for k > i+1 && kept < c.overlap {
			kept += len(sentences[k-1]) + 1
			if kept >= c.overlap {
				k--
				break
			}
			k--
		}
		if k <= i {
			k = i + 1
		}
		i = k
	}

	return pieces
}

// splitSentences splits text into sentences, keeping terminal
// punctuation attached.
func splitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// hardSplit cuts an oversized sentence into budget-sized parts on
// word boundaries where possible.
func hardSplit(sentence string, budget int) []string {
	var parts []string
	words := strings.Fields(sentence)
	var b strings.Builder

	for _, word := range words {
		add := len(word)
		if b.Len() > 0 {
			add++
		}
		if b.Len()+add > budget && b.Len() > 0 {
			parts = append(parts, b.String())
			b.Reset()
		}
		for len(word) > budget {
			parts = append(parts, word[:budget])
			word = word[budget:]
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
