package gitcli

import (
	"strconv"
	"strings"

	"github.com/pkeller/gitgraph/pkg/object"
)

// ObjectInfo is one row of `git cat-file --batch-check --batch-all-objects`.
type ObjectInfo struct {
	Hash string
	Type string // "commit", "tree", "blob", or "tag"
	Size int64
}

// refFieldSep separates fields in the for-each-ref format string. A plain
// space would break on empty %(upstream) expansions.
const refFieldSep = "|||"

// parseBatchCheck parses `cat-file --batch-check` output: one
// "<hash> <type> <size>" row per line. Malformed lines are skipped.
func parseBatchCheck(out string) []ObjectInfo {
	var infos []ObjectInfo
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		size, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			continue
		}
		infos = append(infos, ObjectInfo{Hash: fields[0], Type: fields[1], Size: size})
	}
	return infos
}

// parseCommit parses `cat-file -p` output for a commit: header lines (tree,
// parent, author) up to the first blank line, then the message. Only the
// first message line is kept.
func parseCommit(hash, out string) *object.Commit {
	commit := &object.Commit{Hash: hash}

	var messageLines []string
	inMessage := false
	for _, line := range strings.Split(out, "\n") {
		switch {
		case inMessage:
			messageLines = append(messageLines, line)
		case line == "":
			inMessage = true
		case strings.HasPrefix(line, "tree "):
			commit.TreeHash = strings.TrimSpace(line[len("tree "):])
		case strings.HasPrefix(line, "parent "):
			commit.Parents = append(commit.Parents, strings.TrimSpace(line[len("parent "):]))
		case strings.HasPrefix(line, "author "):
			commit.Author = parseIdentity(line[len("author "):])
		}
	}
	commit.Message = firstLine(messageLines)
	return commit
}

// parseTree parses `cat-file -p` output for a tree:
// "<mode> <type> <hash>\t<name>" per line. Names may contain spaces, so the
// split on tab happens first.
func parseTree(hash, out string) *object.Tree {
	tree := &object.Tree{Hash: hash}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		meta, name, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		fields := strings.Fields(meta)
		if len(fields) < 3 {
			continue
		}
		tree.Entries = append(tree.Entries, object.TreeEntry{
			Mode: fields[0],
			Type: fields[1],
			Hash: fields[2],
			Name: name,
		})
	}
	return tree
}

// parseTag parses `cat-file -p` output for an annotated tag.
func parseTag(hash, out string) *object.Tag {
	tag := &object.Tag{Hash: hash}

	var messageLines []string
	inMessage := false
	for _, line := range strings.Split(out, "\n") {
		switch {
		case inMessage:
			messageLines = append(messageLines, line)
		case line == "":
			inMessage = true
		case strings.HasPrefix(line, "object "):
			tag.Target = strings.TrimSpace(line[len("object "):])
		case strings.HasPrefix(line, "tag "):
			tag.Name = strings.TrimSpace(line[len("tag "):])
		case strings.HasPrefix(line, "tagger "):
			tag.Tagger = parseIdentity(line[len("tagger "):])
		}
	}
	tag.Message = firstLine(messageLines)
	return tag
}

// parseRefs parses for-each-ref output in the
// "%(refname)|||%(objectname)|||%(upstream)" format.
func parseRefs(out string) []object.Ref {
	var refs []object.Ref
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, refFieldSep)
		if len(parts) < 2 {
			continue
		}
		ref := object.Ref{
			Name:   parts[0],
			Target: parts[1],
			Kind:   object.KindForRefName(parts[0]),
		}
		if len(parts) >= 3 {
			ref.Upstream = parts[2]
		}
		refs = append(refs, ref)
	}
	return refs
}

// parseIndex parses `ls-files --stage` output:
// "<mode> <hash> <stage>\t<path>" per line. The mode is not modeled.
func parseIndex(out string) []object.IndexEntry {
	var entries []object.IndexEntry
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		meta, path, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		fields := strings.Fields(meta)
		if len(fields) < 3 {
			continue
		}
		stage, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		entries = append(entries, object.IndexEntry{
			Hash:  fields[1],
			Path:  path,
			Stage: stage,
		})
	}
	return entries
}

// parseIdentity extracts the display name from a "Name <email> ts tz" line.
func parseIdentity(s string) string {
	if name, _, found := strings.Cut(s, " <"); found {
		return name
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// firstLine joins collected message lines, trims surrounding whitespace, and
// keeps only the first line.
func firstLine(lines []string) string {
	msg := strings.TrimSpace(strings.Join(lines, "\n"))
	if msg == "" {
		return ""
	}
	first, _, _ := strings.Cut(msg, "\n")
	return first
}
