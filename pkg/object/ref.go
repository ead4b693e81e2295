package object

import "strings"

// RefKind classifies a reference.
type RefKind int

const (
	RefLocalBranch RefKind = iota
	RefRemoteBranch
	RefTag
	RefHead
)

// String returns the kind as a short lowercase word.
func (k RefKind) String() string {
	switch k {
	case RefLocalBranch:
		return "local"
	case RefRemoteBranch:
		return "remote"
	case RefTag:
		return "tag"
	case RefHead:
		return "head"
	default:
		return "unknown"
	}
}

// Well-known reference namespaces, in the order short-name stripping tries them.
const (
	PrefixHeads   = "refs/heads/"
	PrefixRemotes = "refs/remotes/"
	PrefixTags    = "refs/tags/"
)

// refPrefixes is the fixed stripping order; first match wins.
var refPrefixes = []string{PrefixHeads, PrefixRemotes, PrefixTags}

// Ref is a named pointer to an object hash: a branch, a tag ref, or HEAD.
type Ref struct {
	Name     string // full form, e.g. "refs/heads/main"
	Target   string // object hash, may be empty for an unborn HEAD
	Kind     RefKind
	Upstream string // full upstream ref name; only meaningful for local branches
}

// ShortName returns the name with its well-known namespace prefix stripped.
// A name outside the three namespaces is returned unchanged.
func (r Ref) ShortName() string {
	return ShortRefName(r.Name)
}

// ShortHash returns the abbreviated target hash.
func (r Ref) ShortHash() string { return Abbrev(r.Target) }

// Equal reports whether two refs are the same snapshot: identical name and
// identical target hash. A branch observed before and after it moved
// compares unequal; dedup logic depends on that.
func (r Ref) Equal(other Ref) bool {
	return r.Name == other.Name && r.Target == other.Target
}

// ShortRefName strips the first matching well-known prefix from a full
// reference name. Used both for Ref values and for bare names, such as the
// unborn branch HEAD points at in a freshly initialized repository.
func ShortRefName(name string) string {
	for _, prefix := range refPrefixes {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	return name
}

// KindForRefName derives the reference kind from its namespace.
// Names outside the known namespaces are treated as local branches.
func KindForRefName(name string) RefKind {
	switch {
	case strings.HasPrefix(name, PrefixHeads):
		return RefLocalBranch
	case strings.HasPrefix(name, PrefixRemotes):
		return RefRemoteBranch
	case strings.HasPrefix(name, PrefixTags):
		return RefTag
	default:
		return RefLocalBranch
	}
}

// IndexEntry is one staging-area row. Multiple entries may share a path when
// the merge stage is non-zero (unmerged conflict stages 1-3).
type IndexEntry struct {
	Hash  string
	Path  string // repository-relative
	Stage int    // 0 normal, 1-3 conflict stages
}

// ShortHash returns the abbreviated blob hash of the entry.
func (e IndexEntry) ShortHash() string { return Abbrev(e.Hash) }
