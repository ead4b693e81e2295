package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pkeller/gitgraph/pkg/buildinfo"
	"github.com/pkeller/gitgraph/pkg/config"
	errs "github.com/pkeller/gitgraph/pkg/errors"
)

// options holds the raw command-line flags.
type options struct {
	output  string // output file path; empty means "use config default"
	noIndex bool   // suppress the staging-area table
	force   bool   // bypass the size guard
}

// settings is the fully resolved run configuration after layering the
// config file under the flags.
type settings struct {
	output       string
	includeIndex bool
	force        bool
	threshold    int
}

// Execute runs the gitgraph CLI and returns an error if the run fails.
//
// The command surface is a single root command: one optional positional
// argument (the repository path, defaulting to the current directory) plus
// flags. Exit-code mapping from the returned error is the caller's job via
// [ExitCode].
func Execute(ctx context.Context) error {
	var (
		verbose bool
		opts    options
	)

	cfg, cfgErr := config.Load()

	root := &cobra.Command{
		Use:           "gitgraph [path]",
		Short:         "gitgraph renders git repository internals as a graph image",
		Long:          `gitgraph reads the commits, trees, blobs, tags, references, and staging index of a git repository through the git CLI and renders them as a directed graph via Graphviz, for learning how git's object model fits together.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if cfgErr != nil {
				logger.Warnf("ignoring malformed config file: %v", cfgErr)
			}
			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}
			return run(cmd.Context(), repoPath, resolveSettings(&opts, cfg))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default "+config.DefaultOutput+")")
	root.Flags().BoolVar(&opts.noIndex, "no-index", false, "exclude the staging-area table from the graph")
	root.Flags().BoolVar(&opts.force, "force", false, "process repositories above the object threshold")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.ExecuteContext(ctx)
}

// resolveSettings layers the config file defaults under the flags.
// Flags always win; the file only fills what was left unset.
func resolveSettings(opts *options, cfg config.Config) settings {
	s := settings{
		output:       opts.output,
		includeIndex: true,
		force:        opts.force,
		threshold:    cfg.ObjectThreshold,
	}
	if s.output == "" {
		s.output = cfg.Output
	}
	if cfg.IncludeIndex != nil {
		s.includeIndex = *cfg.IncludeIndex
	}
	if opts.noIndex {
		s.includeIndex = false
	}
	if s.threshold <= 0 {
		s.threshold = config.DefaultThreshold
	}
	return s
}

// thresholdExceeded implements the size guard boundary: strictly greater
// than the threshold triggers it, an exact match does not.
func thresholdExceeded(count, threshold int) bool {
	return count > threshold
}

// ExitCode maps an error from [Execute] onto the process exit code.
//
//	0  success
//	1  path missing, not a repository, or a git invocation failed
//	2  git not found
//	3  graphviz not found
//	4  size threshold exceeded without --force
//	5  output-path or render failure
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch errs.GetCode(err) {
	case errs.ErrCodeGitNotFound:
		return 2
	case errs.ErrCodeGraphvizNotFound:
		return 3
	case errs.ErrCodeRepoTooLarge:
		return 4
	case errs.ErrCodeInvalidFormat, errs.ErrCodeOutput:
		return 5
	default:
		return 1
	}
}
