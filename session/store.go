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

package session

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultMaxExchanges is how many question/answer pairs a session
// retains when no limit option is given.
const DefaultMaxExchanges = 2

// Exchange is one completed question/answer pair.
type Exchange struct {
	UserMessage      string
	AssistantMessage string
}

// Store keeps bounded in-memory conversation history per session.
// Sessions are created lazily: adding to or reading an unknown session
// ID simply starts it empty. Safe for concurrent use.
type Store struct {
	mu           sync.Mutex
	sessions     map[string][]Exchange
	maxExchanges int
	counter      int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxExchanges sets how many recent exchanges each session keeps.
// Values below 1 fall back to the default.
func WithMaxExchanges(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.maxExchanges = n
		}
	}
}

// NewStore creates an empty session store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions:     make(map[string][]Exchange),
		maxExchanges: DefaultMaxExchanges,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSessionID issues a fresh session identifier.
func (s *Store) NewSessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("session_%d", s.counter)
}

// AddExchange appends a completed exchange to the session, evicting
// the oldest exchange once the session is at capacity.
func (s *Store) AddExchange(sessionID, userMessage, assistantMessage string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[sessionID], Exchange{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	})
	if len(history) > s.maxExchanges {
		history = history[len(history)-s.maxExchanges:]
	}
	s.sessions[sessionID] = history
}

// History renders the session's retained exchanges oldest first, in
// the form consumed by the chat prompt. Returns "" for an empty or
// unknown session.
func (s *Store) History(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.sessions[sessionID]
	if len(history) == 0 {
		return ""
	}

	lines := make([]string, 0, len(history))
	for _, ex := range history {
		lines = append(lines, fmt.Sprintf("User: %s\nAssistant: %s", ex.UserMessage, ex.AssistantMessage))
	}
	return strings.Join(lines, "\n")
}

// Clear forgets the session's history. The session ID remains usable.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
