// Package dot turns a populated repository model into Graphviz DOT source.
//
// # Overview
//
// Generation is one deterministic pass: header, node declarations grouped by
// kind, rank constraints, edge declarations grouped by kind, the optional
// index table, footer. Given the same repository and the same HEAD inputs,
// the output is byte-identical across runs.
//
// # Node identity
//
// Versioned objects use their full hash as the node identifier. References
// use "ref_" plus the full reference name with every '/' and '.' replaced by
// '_'; the same derivation is applied at every site that mentions a
// reference node, otherwise the graph falls apart into disconnected pieces.
//
// # Escaping
//
// Two quoting contexts exist in DOT and they escape differently: plain
// labels ([EscapeLabel]) and HTML-like table cells ([EscapeHTML]). Every
// user-controlled string goes through the function matching its destination.
//
// # Usage
//
//	src := dot.Generate(repo, dot.Options{
//	    IncludeIndex:     true,
//	    HeadTargetRef:    "refs/heads/main",
//	    HeadTargetExists: true,
//	})
package dot
