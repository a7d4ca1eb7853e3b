// Package tui provides the terminal output layer for seqpipes.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Optional rotating file logs for cluster debugging
package tui
