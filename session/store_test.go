package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionIDsAreUnique(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "session_1", s.NewSessionID())
	assert.Equal(t, "session_2", s.NewSessionID())
}

func TestHistoryFormat(t *testing.T) {
	s := NewStore()
	id := s.NewSessionID()

	assert.Empty(t, s.History(id))

	s.AddExchange(id, "What is MCP?", "Model Context Protocol.")
	assert.Equal(t, "User: What is MCP?\nAssistant: Model Context Protocol.", s.History(id))

	s.AddExchange(id, "Who teaches it?", "Ada Example.")
	assert.Equal(t,
		"User: What is MCP?\nAssistant: Model Context Protocol.\n"+
			"User: Who teaches it?\nAssistant: Ada Example.",
		s.History(id))
}

func TestOldestExchangeEvicted(t *testing.T) {
	s := NewStore()
	id := s.NewSessionID()

	s.AddExchange(id, "first question", "first answer")
	s.AddExchange(id, "second question", "second answer")
	s.AddExchange(id, "third question", "third answer")

	history := s.History(id)
	assert.NotContains(t, history, "first question")
	assert.Contains(t, history, "second question")
	assert.Contains(t, history, "third question")
}

func TestWithMaxExchanges(t *testing.T) {
	s := NewStore(WithMaxExchanges(1))
	id := s.NewSessionID()

	s.AddExchange(id, "one", "1")
	s.AddExchange(id, "two", "2")

	assert.Equal(t, "User: two\nAssistant: 2", s.History(id))
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewStore()
	a := s.NewSessionID()
	b := s.NewSessionID()

	s.AddExchange(a, "question for a", "answer for a")
	assert.Empty(t, s.History(b))
	assert.Contains(t, s.History(a), "question for a")
}

func TestClear(t *testing.T) {
	s := NewStore()
	id := s.NewSessionID()

	s.AddExchange(id, "question", "answer")
	s.Clear(id)
	assert.Empty(t, s.History(id))

	// Cleared sessions keep working
	s.AddExchange(id, "again", "still works")
	assert.Contains(t, s.History(id), "again")
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := s.NewSessionID()
			for j := 0; j < 20; j++ {
				s.AddExchange(id, fmt.Sprintf("q%d", j), fmt.Sprintf("a%d", j))
				s.History(id)
			}
		}(i)
	}
	wg.Wait()
}
