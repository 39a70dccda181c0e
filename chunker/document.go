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
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/coursechat/coursechat/core"
)

// LessonText is the raw transcript text of a single lesson.
type LessonText struct {
	Number int
	Title  string
	Text   string
}

// Document is a parsed course transcript: the course metadata plus the
// raw text of each lesson, in document order.
type Document struct {
	Course  core.Course
	Lessons []LessonText
}

var lessonMarker = regexp.MustCompile(`^Lesson\s+(\d+):\s*(.*)$`)

const (
	titlePrefix      = "Course Title:"
	linkPrefix       = "Course Link:"
	instructorPrefix = "Course Instructor:"
	lessonLinkPrefix = "Lesson Link:"
)

// ParseFile reads and parses the course transcript at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open course document: %w", err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument parses a course transcript. The document must begin
// with a "Course Title:" header line; "Course Link:" and
// "Course Instructor:" lines are optional. Lesson sections start at
// "Lesson N: title" marker lines, each optionally followed by a
// "Lesson Link:" line. Text before the first marker, beyond the
// header, belongs to no lesson.
func ParseDocument(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &Document{}
	headerDone := false
	current := -1 // index into doc.Lessons, -1 means preamble
	var preamble strings.Builder
	var body strings.Builder

	flush := func() {
		text := strings.TrimSpace(body.String())
		body.Reset()
		if current < 0 {
			preamble.WriteString(text)
			return
		}
		doc.Lessons[current].Text = text
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if !headerDone {
			switch {
			case doc.Course.Title == "" && strings.HasPrefix(trimmed, titlePrefix):
				doc.Course.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, titlePrefix))
				continue
			case strings.HasPrefix(trimmed, linkPrefix):
				doc.Course.Link = strings.TrimSpace(strings.TrimPrefix(trimmed, linkPrefix))
				continue
			case strings.HasPrefix(trimmed, instructorPrefix):
				doc.Course.Instructor = strings.TrimSpace(strings.TrimPrefix(trimmed, instructorPrefix))
				continue
			case trimmed == "":
				continue
			}
			headerDone = true
		}

		if m := lessonMarker.FindStringSubmatch(trimmed); m != nil {
			flush()
			number, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("%w: bad lesson number %q", ErrBadFormat, m[1])
			}
			doc.Lessons = append(doc.Lessons, LessonText{Number: number, Title: m[2]})
			doc.Course.Lessons = append(doc.Course.Lessons, core.Lesson{Number: number, Title: m[2]})
			current = len(doc.Lessons) - 1
			continue
		}

		if current >= 0 && doc.Lessons[current].Text == "" && body.Len() == 0 &&
			strings.HasPrefix(trimmed, lessonLinkPrefix) {
			doc.Course.Lessons[current].Link = strings.TrimSpace(strings.TrimPrefix(trimmed, lessonLinkPrefix))
			continue
		}

		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course document: %w", err)
	}
	flush()

	if doc.Course.Title == "" {
		return nil, fmt.Errorf("%w: missing %q header line", ErrBadFormat, titlePrefix)
	}

	// A transcript with no lesson markers is still usable: the whole
	// body is indexed without a lesson association.
	if text := strings.TrimSpace(preamble.String()); text != "" && len(doc.Lessons) == 0 {
		doc.Lessons = append(doc.Lessons, LessonText{Number: core.NoLesson, Text: text})
	}

	return doc, nil
}
