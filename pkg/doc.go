// Package pkg provides the core libraries for gitgraph repository visualization.
//
// # Overview
//
// Gitgraph reads a repository's object database and references through the
// git CLI and renders them as a directed graph, so the hidden plumbing of a
// repository (commits pointing at trees, trees pointing at blobs, refs
// pointing at commits) becomes something you can look at. The pkg directory
// is organized into four main areas:
//
//  1. [object] - Domain model (commits, trees, blobs, tags, refs, the repository aggregate)
//  2. [gitcli] - Acquisition (running git and parsing its plumbing output)
//  3. [dot] - Graph generation (DOT text with escaping and rank constraints)
//  4. [render] - Output (driving the Graphviz dot tool to produce image files)
//
// # Architecture
//
// The typical data flow through gitgraph:
//
//	Git repository on disk
//	         ↓
//	gitcli (cat-file, for-each-ref, ls-files)
//	         ↓
//	object.Repository
//	         ↓
//	dot.Generate → DOT source text
//	         ↓
//	render.ToFile → svg / png / pdf
//
// Supporting packages: [config] loads the optional TOML config file,
// [errors] carries the structured error codes the CLI maps onto exit
// statuses, and [buildinfo] holds version metadata stamped at build time.
package pkg
