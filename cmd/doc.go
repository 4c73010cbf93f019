// Package cmd implements the CLI commands for chat-cli.
//
// # Architecture
//
//   - root.go: Main entry point, App struct, cobra command setup, flags,
//     and one-shot query mode
//   - interactive.go: Interactive REPL session, slash commands, and
//     tab completion
//
// # Startup
//
// Both modes go through internal/bootstrap exactly once: it resolves the
// provider (flag > config > stored credentials > interactive prompt),
// exports credentials, selects the model, and (for interactive mode)
// opens the persisted input history. The history session is closed when
// the REPL returns, flushing entries to disk on normal exit.
package cmd
