package gitcli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkeller/gitgraph/pkg/object"
)

// Available reports whether the git CLI can be invoked, returning its
// version line on success.
func Available(ctx context.Context) (string, error) {
	out, err := runGit(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepository reports whether path is inside a git repository.
func IsRepository(ctx context.Context, path string) bool {
	_, _, code, err := runGitStatus(ctx, path, "rev-parse", "--git-dir")
	return err == nil && code == 0
}

// GitDir resolves the .git directory for the repository at path, as an
// absolute path.
func GitDir(ctx context.Context, path string) (string, error) {
	out, err := runGit(ctx, path, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	dir := strings.TrimSpace(out)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(path, dir)
	}
	return filepath.Clean(dir), nil
}

// ListAllObjects lists every object in the repository with its type and size.
func ListAllObjects(ctx context.Context, path string) ([]ObjectInfo, error) {
	out, err := runGit(ctx, path, "cat-file", "--batch-check", "--batch-all-objects")
	if err != nil {
		return nil, err
	}
	return parseBatchCheck(out), nil
}

// CountObjects counts objects without materializing per-object detail.
// The size guard runs on this before any further acquisition work.
func CountObjects(ctx context.Context, path string) (int, error) {
	infos, err := ListAllObjects(ctx, path)
	if err != nil {
		return 0, err
	}
	return len(infos), nil
}

// ReadCommit reads one commit object.
func ReadCommit(ctx context.Context, path, hash string) (*object.Commit, error) {
	out, err := runGit(ctx, path, "cat-file", "-p", hash)
	if err != nil {
		return nil, err
	}
	return parseCommit(hash, out), nil
}

// ReadTree reads one tree object with its entries.
func ReadTree(ctx context.Context, path, hash string) (*object.Tree, error) {
	out, err := runGit(ctx, path, "cat-file", "-p", hash)
	if err != nil {
		return nil, err
	}
	return parseTree(hash, out), nil
}

// ReadTag reads one annotated tag object.
func ReadTag(ctx context.Context, path, hash string) (*object.Tag, error) {
	out, err := runGit(ctx, path, "cat-file", "-p", hash)
	if err != nil {
		return nil, err
	}
	return parseTag(hash, out), nil
}

// ListRefs lists all references with their targets and configured upstreams.
func ListRefs(ctx context.Context, path string) ([]object.Ref, error) {
	format := "%(refname)" + refFieldSep + "%(objectname)" + refFieldSep + "%(upstream)"
	out, err := runGit(ctx, path, "for-each-ref", "--format="+format)
	if err != nil {
		return nil, err
	}
	return parseRefs(out), nil
}

// ResolveHead resolves HEAD to a reference value, or nil when HEAD does not
// exist at all. The Target is empty for an unborn branch.
func ResolveHead(ctx context.Context, path string) (*object.Ref, error) {
	hashOut, _, code, err := runGitStatus(ctx, path, "rev-parse", "HEAD")
	if err != nil {
		return nil, err
	}
	target := ""
	if code == 0 {
		target = strings.TrimSpace(hashOut)
	}

	// Either symbolic (attached) or direct (detached); both render as the
	// singleton HEAD node.
	_, _, symCode, err := runGitStatus(ctx, path, "symbolic-ref", "HEAD")
	if err != nil {
		return nil, err
	}
	if symCode != 0 && target == "" {
		return nil, nil
	}
	return &object.Ref{Name: "HEAD", Target: target, Kind: object.RefHead}, nil
}

// HeadTargetRef returns the full name of the reference HEAD points at, or
// false when HEAD is detached.
func HeadTargetRef(ctx context.Context, path string) (string, bool) {
	out, _, code, err := runGitStatus(ctx, path, "symbolic-ref", "HEAD")
	if err != nil || code != 0 {
		return "", false
	}
	return strings.TrimSpace(out), true
}

// RefExists reports whether the fully qualified reference name resolves to a
// concrete reference.
func RefExists(ctx context.Context, path, name string) bool {
	_, _, code, err := runGitStatus(ctx, path, "show-ref", "--verify", "--quiet", name)
	return err == nil && code == 0
}

// ReadIndexEntries reads the staging area. A repository without an index
// (or a bare repository) yields no entries rather than an error.
func ReadIndexEntries(ctx context.Context, path string) []object.IndexEntry {
	out, _, code, err := runGitStatus(ctx, path, "ls-files", "--stage")
	if err != nil || code != 0 {
		return nil
	}
	return parseIndex(out)
}

// ReadRepository performs the single population pass: object listing, then
// per-object detail, then references, HEAD, and optionally the index. The
// returned container is complete and ready for generation.
func ReadRepository(ctx context.Context, path string, includeIndex bool) (*object.Repository, error) {
	repo := object.NewRepository(path)

	infos, err := ListAllObjects(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		switch info.Type {
		case "commit":
			commit, err := ReadCommit(ctx, path, info.Hash)
			if err != nil {
				return nil, err
			}
			repo.AddCommit(commit)
		case "tree":
			tree, err := ReadTree(ctx, path, info.Hash)
			if err != nil {
				return nil, err
			}
			repo.AddTree(tree)
		case "blob":
			repo.AddBlob(&object.Blob{Hash: info.Hash, Size: info.Size})
		case "tag":
			tag, err := ReadTag(ctx, path, info.Hash)
			if err != nil {
				return nil, err
			}
			repo.AddTag(tag)
		}
	}

	refs, err := ListRefs(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		repo.AddRef(ref)
	}

	head, err := ResolveHead(ctx, path)
	if err != nil {
		return nil, err
	}
	if head != nil {
		repo.SetHead(*head)
	}

	if includeIndex {
		for _, entry := range ReadIndexEntries(ctx, path) {
			repo.AddIndexEntry(entry)
		}
	}

	return repo, nil
}
