package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkeller/gitgraph/pkg/dot"
	errs "github.com/pkeller/gitgraph/pkg/errors"
	"github.com/pkeller/gitgraph/pkg/gitcli"
	"github.com/pkeller/gitgraph/pkg/render"
)

// run executes the full pipeline: prerequisite checks, repository
// validation, output validation, the size guard, object acquisition, DOT
// generation, and rendering. Every failure is wrapped with the error code
// that drives the process exit status.
func run(ctx context.Context, repoPath string, s settings) error {
	logger := loggerFromContext(ctx)

	gitVersion, err := gitcli.Available(ctx)
	if err != nil {
		return errs.Wrap(errs.ErrCodeGitNotFound, err, "git is not installed or not on PATH")
	}
	logger.Debugf("found %s", gitVersion)

	dotVersion, err := render.Available(ctx)
	if err != nil {
		return errs.Wrap(errs.ErrCodeGraphvizNotFound, err, "graphviz is not installed or not on PATH")
	}
	logger.Debugf("found %s", dotVersion)

	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "invalid path %q", repoPath)
	}
	info, statErr := os.Stat(absPath)
	if statErr != nil || !info.IsDir() {
		return errs.New(errs.ErrCodeInvalidPath, "path %q does not exist or is not a directory", repoPath)
	}
	if !gitcli.IsRepository(ctx, absPath) {
		return errs.New(errs.ErrCodeNotRepository, "%q is not a git repository", repoPath)
	}
	if gitDir, dirErr := gitcli.GitDir(ctx, absPath); dirErr == nil {
		logger.Debugf("git dir %s", gitDir)
	}

	if err := render.ValidateFormat(s.output); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "cannot write %q", s.output)
	}
	if err := checkOutputDir(s.output); err != nil {
		return errs.Wrap(errs.ErrCodeOutput, err, "cannot write %q", s.output)
	}

	count, err := gitcli.CountObjects(ctx, absPath)
	if err != nil {
		return errs.Wrap(errs.ErrCodeGitCommand, err, "failed to enumerate repository objects")
	}
	logger.Debugf("%d objects in database", count)
	if thresholdExceeded(count, s.threshold) && !s.force {
		return errs.New(errs.ErrCodeRepoTooLarge,
			"repository has %d objects (threshold %d); pass --force to render it anyway", count, s.threshold)
	}

	printInfo("Reading repository data...")
	readProgress := newProgress(logger)
	repo, err := gitcli.ReadRepository(ctx, absPath, s.includeIndex)
	if err != nil {
		return errs.Wrap(errs.ErrCodeGitCommand, err, "failed to read repository data")
	}
	readProgress.done(fmt.Sprintf("read %d objects", repo.ObjectCount()))
	printCounts([]countStat{
		{label: "commits", n: len(repo.Commits)},
		{label: "trees", n: len(repo.Trees)},
		{label: "blobs", n: len(repo.Blobs)},
		{label: "tags", n: len(repo.Tags)},
		{label: "refs", n: len(repo.Refs)},
		{label: "staged files", n: len(repo.IndexEntries)},
	})

	headTarget, attached := gitcli.HeadTargetRef(ctx, absPath)
	headExists := true
	if attached {
		headExists = gitcli.RefExists(ctx, absPath, headTarget)
	} else {
		headTarget = ""
	}

	printInfo("Generating graph...")
	source := dot.Generate(repo, dot.Options{
		IncludeIndex:     s.includeIndex,
		HeadTargetRef:    headTarget,
		HeadTargetExists: headExists,
	})
	logger.Debugf("generated %d bytes of DOT", len(source))

	printInfo("Rendering %s...", s.output)
	renderProgress := newProgress(logger)
	if err := render.ToFile(ctx, source, s.output); err != nil {
		if stderrors.Is(err, render.ErrDotNotFound) {
			return errs.Wrap(errs.ErrCodeGraphvizNotFound, err, "graphviz disappeared during render")
		}
		return errs.Wrap(errs.ErrCodeOutput, err, "failed to render %q", s.output)
	}
	renderProgress.done("rendered " + render.FormatFor(s.output))

	printSuccess("Done!")
	printFile(s.output)
	return nil
}

// checkOutputDir probes that the output's directory exists and is
// writable before any git work happens, so a doomed run fails fast.
func checkOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory %q does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}
	probe, err := os.CreateTemp(dir, ".gitgraph-*")
	if err != nil {
		return fmt.Errorf("directory %q is not writable", dir)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
