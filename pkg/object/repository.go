package object

import "strings"

// Repository owns everything read from one repository: versioned objects,
// references, HEAD, and index entries, all kept in first-seen order.
//
// It is write-once: the acquisition layer populates it in one pass and the
// graph generator reads it afterwards. Nothing can be removed.
type Repository struct {
	Path string

	Commits []*Commit
	Trees   []*Tree
	Blobs   []*Blob
	Tags    []*Tag

	Refs         []Ref
	IndexEntries []IndexEntry
	Head         *Ref

	byHash map[string]Object
}

// NewRepository creates an empty container for the repository at path.
func NewRepository(path string) *Repository {
	return &Repository{
		Path:   path,
		byHash: make(map[string]Object),
	}
}

// AddCommit appends a commit and registers it for hash lookup.
func (r *Repository) AddCommit(c *Commit) {
	r.Commits = append(r.Commits, c)
	r.byHash[c.Hash] = c
}

// AddTree appends a tree and registers it for hash lookup.
func (r *Repository) AddTree(t *Tree) {
	r.Trees = append(r.Trees, t)
	r.byHash[t.Hash] = t
}

// AddBlob appends a blob and registers it for hash lookup.
func (r *Repository) AddBlob(b *Blob) {
	r.Blobs = append(r.Blobs, b)
	r.byHash[b.Hash] = b
}

// AddTag appends an annotated tag object and registers it for hash lookup.
func (r *Repository) AddTag(t *Tag) {
	r.Tags = append(r.Tags, t)
	r.byHash[t.Hash] = t
}

// AddRef appends a reference.
func (r *Repository) AddRef(ref Ref) {
	r.Refs = append(r.Refs, ref)
}

// AddIndexEntry appends a staging-area entry.
func (r *Repository) AddIndexEntry(e IndexEntry) {
	r.IndexEntries = append(r.IndexEntries, e)
}

// SetHead records the HEAD reference. At most one HEAD exists.
func (r *Repository) SetHead(head Ref) {
	r.Head = &head
}

// ObjectByHash looks up an object by full or abbreviated hash.
// Exact match is tried first; otherwise the stored hashes are scanned for
// one starting with the given prefix. O(n) in the fallback case, which is
// fine under the tool's small-repository ceiling.
func (r *Repository) ObjectByHash(hash string) (Object, bool) {
	if hash == "" {
		return nil, false
	}
	if obj, ok := r.byHash[hash]; ok {
		return obj, true
	}
	for full, obj := range r.byHash {
		if strings.HasPrefix(full, hash) {
			return obj, true
		}
	}
	return nil, false
}

// ObjectCount returns the total number of versioned objects.
func (r *Repository) ObjectCount() int {
	return len(r.Commits) + len(r.Trees) + len(r.Blobs) + len(r.Tags)
}

// AllObjects returns every versioned object grouped by kind, each group in
// first-seen order.
func (r *Repository) AllObjects() []Object {
	out := make([]Object, 0, r.ObjectCount())
	for _, c := range r.Commits {
		out = append(out, c)
	}
	for _, t := range r.Trees {
		out = append(out, t)
	}
	for _, b := range r.Blobs {
		out = append(out, b)
	}
	for _, t := range r.Tags {
		out = append(out, t)
	}
	return out
}
