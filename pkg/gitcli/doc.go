// Package gitcli reads repository state by shelling out to the git CLI.
//
// # Overview
//
// Everything the model layer holds comes through here: object listings from
// `git cat-file --batch-check --batch-all-objects`, per-object detail from
// `git cat-file -p`, references from `git for-each-ref`, HEAD resolution via
// `git symbolic-ref` and `git rev-parse`, and staging state from
// `git ls-files --stage`. Output parsing is split into pure functions so it
// can be tested without a git binary.
//
// # Errors
//
// A git invocation that exits non-zero surfaces as a [*CommandError] carrying
// the command line, the exit code, and the captured stderr. Callers never
// retry; every failure is terminal for the invocation.
//
// # Usage
//
//	repo, err := gitcli.ReadRepository(ctx, path, true)
//	if err != nil { ... }
package gitcli
