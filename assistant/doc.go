// Package assistant orchestrates the two-call conversation protocol:
// the model first sees the question plus the available tools, and if
// it requests a tool round, the results go back in a second call that
// carries no tools and therefore yields the final text answer.
//
// Tool execution failures never abort an answer; they are substituted
// into the tool result text so the model can tell the user what went
// wrong. Only chat service failures surface as errors.
package assistant
