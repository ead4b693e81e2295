// Package cli implements the gitgraph command-line interface.
//
// gitgraph reads the object graph and reference state of a git repository
// through the git CLI and renders it as an image via Graphviz. The command
// surface is a single root command: a positional repository path plus flags
// for output location, index suppression, and the size guard.
//
// # Logging
//
// All output meant for humans goes to stdout through the lipgloss-styled
// helpers in ui.go; diagnostics go to stderr through charmbracelet/log.
// The --verbose (-v) flag raises the log level to debug. Loggers are passed
// through context.Context.
//
// # Example
//
//	import "github.com/pkeller/gitgraph/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(cli.ExitCode(err))
//	    }
//	}
package cli
