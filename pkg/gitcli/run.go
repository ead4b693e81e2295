package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandError is a typed failure from a git invocation: the command line,
// its exit code, and whatever it wrote to stderr. ExitCode is -1 when the
// process could not be started at all.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with code %d: %s", e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
}

// runGit executes git with the given arguments in dir and returns stdout.
// Non-zero exits and start failures both come back as a *CommandError.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	stdout, stderr, code, err := runGitStatus(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &CommandError{
			Command:  "git " + strings.Join(args, " "),
			ExitCode: code,
			Stderr:   stderr,
		}
	}
	return stdout, nil
}

// runGitStatus executes git and returns stdout, stderr, and the exit code
// without treating a non-zero exit as an error. Callers that branch on the
// exit code (symbolic-ref, show-ref) use this directly.
func runGitStatus(ctx context.Context, dir string, args ...string) (stdout, stderr string, code int, err error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if runErr == nil {
		return stdout, stderr, 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return stdout, stderr, exitErr.ExitCode(), nil
	}
	// git itself could not be started (missing binary, bad dir, cancelled ctx)
	return "", "", -1, &CommandError{
		Command:  "git " + strings.Join(args, " "),
		ExitCode: -1,
		Stderr:   runErr.Error(),
	}
}
