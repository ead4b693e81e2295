package object

// shortHashLen is the number of hex characters kept in the display form.
const shortHashLen = 7

// Object is the shared capability contract implemented by every versioned
// repository object (commit, tree, blob, annotated tag).
type Object interface {
	// ObjectHash returns the full content hash.
	ObjectHash() string
	// ShortHash returns the abbreviated hash used for display.
	ShortHash() string
}

// Abbrev shortens a hash to its 7-character display form.
// An empty hash stays empty.
func Abbrev(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}

// Equal reports whether two objects share the same content hash.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ObjectHash() == b.ObjectHash()
}

// Commit is a commit object: a snapshot root plus ancestry.
type Commit struct {
	Hash     string
	TreeHash string   // may be empty only in degenerate input
	Parents  []string // zero for a root commit, two or more for a merge
	Message  string   // first line only
	Author   string   // display name, may be empty
}

func (c *Commit) ObjectHash() string { return c.Hash }
func (c *Commit) ShortHash() string  { return Abbrev(c.Hash) }

// TreeEntry is one directory-listing row inside a tree.
type TreeEntry struct {
	Mode string // file mode string, e.g. "100644" or "040000"
	Type string // "blob" or "tree"
	Hash string
	Name string // path segment, unescaped
}

// ShortHash returns the abbreviated target hash of the entry.
func (e TreeEntry) ShortHash() string { return Abbrev(e.Hash) }

// Tree is a tree object with its ordered entries.
type Tree struct {
	Hash    string
	Entries []TreeEntry
}

func (t *Tree) ObjectHash() string { return t.Hash }
func (t *Tree) ShortHash() string  { return Abbrev(t.Hash) }

// Blob is a blob object. Content is never loaded, only its size.
type Blob struct {
	Hash string
	Size int64
}

func (b *Blob) ObjectHash() string { return b.Hash }
func (b *Blob) ShortHash() string  { return Abbrev(b.Hash) }

// Tag is an annotated tag object.
type Tag struct {
	Hash    string
	Target  string // hash of the tagged object
	Name    string
	Message string // first line only
	Tagger  string // display name, may be empty
}

func (t *Tag) ObjectHash() string { return t.Hash }
func (t *Tag) ShortHash() string  { return Abbrev(t.Hash) }
