// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Generator,
// and ai.AIProvider for use in unit tests. The mocks allow tests to run
// without external AI service dependencies and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Scripted chat responses
//	gen := mock.NewMockGenerator().
//	    Enqueue(&ai.GenerateResponse{ToolCalls: []ai.ToolCall{{Name: "search_course_content"}}}).
//	    Enqueue(&ai.GenerateResponse{Text: "final answer"})
//
//	// Inspect what the code under test sent
//	reqs := gen.Requests()
//
// # Default Behavior
//
//   - MockEmbedder: Returns deterministic unit vectors based on text hash
//   - MockGenerator: Returns scripted responses in order, or a canned
//     text response when the script is empty
//   - MockProvider: Aggregates mock embedder and generator
package mock
