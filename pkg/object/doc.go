// Package object defines the in-memory model of a Git repository's object
// graph and reference state.
//
// # Overview
//
// The model mirrors what the git CLI reports: versioned objects (commits,
// trees, blobs, annotated tags) identified by their content hash, plus the
// non-versioned state around them (references, HEAD, index entries). All
// values are plain data; nothing here touches the filesystem or spawns
// processes.
//
// # Identity
//
// Every versioned object implements [Object]: its full content hash is its
// identity, and two objects are equal iff their hashes are equal. The
// 7-character short form returned by ShortHash is for display only.
//
// References are different: a [Ref] is identified by its (name, target hash)
// pair, so the same branch observed at two different commits compares
// unequal. Set and dedup operations rely on this.
//
// # Lifecycle
//
// A [Repository] is constructed empty, populated once by the acquisition
// layer (see package gitcli), and then treated as read-only by the graph
// generator. There are no removal operations.
package object
