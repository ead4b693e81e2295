package dot

import (
	"fmt"
	"strings"

	"github.com/pkeller/gitgraph/pkg/object"
)

// Fill colors per node kind.
const (
	colorCommit = "#ffff99" // yellow
	colorTree   = "#99ff99" // green
	colorBlob   = "#99ccff" // blue
	colorTag    = "#ffcc99" // orange
	colorRef    = "#cccccc" // gray
)

// Shapes per node kind.
const (
	shapeCommit = "ellipse"
	shapeTree   = "folder"
	shapeBlob   = "cylinder"
	shapeTag    = "note"
	shapeRef    = "box"
)

// messageLabelLen caps how much of a commit message appears in its label.
const messageLabelLen = 30

// Options control generation.
type Options struct {
	// IncludeIndex emits the staging-area table when entries exist.
	IncludeIndex bool
	// HeadTargetRef is the full name of the reference HEAD points at,
	// empty when HEAD is detached or absent.
	HeadTargetRef string
	// HeadTargetExists reports whether HeadTargetRef resolves to a concrete
	// reference. False means an unborn branch: a dashed placeholder node is
	// drawn so the HEAD edge still has somewhere to go.
	HeadTargetExists bool
}

// Generate renders the complete DOT document for a repository.
func Generate(repo *object.Repository, opts Options) string {
	var parts []string

	parts = append(parts, header())

	// Node declarations, grouped by kind.
	parts = append(parts, "    // Commit nodes")
	for _, c := range repo.Commits {
		parts = append(parts, commitNode(c))
	}
	parts = append(parts, "")

	parts = append(parts, "    // Tree nodes")
	for _, t := range repo.Trees {
		parts = append(parts, treeNode(t))
	}
	parts = append(parts, "")

	parts = append(parts, "    // Blob nodes")
	for _, b := range repo.Blobs {
		parts = append(parts, blobNode(b))
	}
	parts = append(parts, "")

	if len(repo.Tags) > 0 {
		parts = append(parts, "    // Tag object nodes")
		for _, t := range repo.Tags {
			parts = append(parts, tagNode(t))
		}
		parts = append(parts, "")
	}

	parts = append(parts, "    // Reference nodes")
	for _, ref := range repo.Refs {
		parts = append(parts, refNode(ref, ref.Name == opts.HeadTargetRef))
	}
	if opts.HeadTargetRef != "" && !opts.HeadTargetExists {
		parts = append(parts, missingRefNode(opts.HeadTargetRef))
	}
	if repo.Head != nil {
		parts = append(parts, headNode())
	}
	parts = append(parts, "")

	parts = append(parts, rankConstraints(repo, opts)...)

	// Edge declarations, grouped by kind.
	parts = append(parts, "    // Commit edges")
	for _, c := range repo.Commits {
		parts = append(parts, commitEdges(c)...)
	}
	parts = append(parts, "")

	parts = append(parts, "    // Tree edges")
	for _, t := range repo.Trees {
		parts = append(parts, treeEdges(t)...)
	}
	parts = append(parts, "")

	if len(repo.Tags) > 0 {
		parts = append(parts, "    // Tag edges")
		for _, t := range repo.Tags {
			parts = append(parts, tagEdges(t)...)
		}
		parts = append(parts, "")
	}

	parts = append(parts, "    // Reference edges")
	for _, ref := range repo.Refs {
		parts = append(parts, refEdges(ref)...)
	}

	if upstream := upstreamEdges(repo.Refs); len(upstream) > 0 {
		parts = append(parts, "")
		parts = append(parts, "    // Upstream tracking edges")
		parts = append(parts, upstream...)
	}

	if repo.Head != nil {
		parts = append(parts, headEdges(*repo.Head, opts.HeadTargetRef)...)
	}
	parts = append(parts, "")

	if opts.IncludeIndex && len(repo.IndexEntries) > 0 {
		parts = append(parts, indexTable(repo.IndexEntries))
		parts = append(parts, "")
	}

	parts = append(parts, footer())

	return strings.Join(parts, "\n")
}

func header() string {
	return strings.Join([]string{
		"digraph git_repository {",
		"    // Graph settings",
		"    rankdir=LR;",
		`    node [fontname="Helvetica", fontsize=10];`,
		`    edge [fontname="Helvetica", fontsize=9];`,
		"",
	}, "\n")
}

func footer() string {
	return "}\n"
}

// =============================================================================
// Node declarations
// =============================================================================

func commitNode(c *object.Commit) string {
	label := fmt.Sprintf(`%s\n%s`, c.ShortHash(), EscapeLabel(truncate(c.Message, messageLabelLen)))
	return fmt.Sprintf(`    "%s" [label="%s", shape=%s, style=filled, fillcolor="%s"];`,
		c.Hash, label, shapeCommit, colorCommit)
}

func treeNode(t *object.Tree) string {
	label := fmt.Sprintf(`tree\n%s`, t.ShortHash())
	return fmt.Sprintf(`    "%s" [label="%s", shape=%s, style=filled, fillcolor="%s"];`,
		t.Hash, label, shapeTree, colorTree)
}

func blobNode(b *object.Blob) string {
	label := fmt.Sprintf(`blob\n%s\n(%d bytes)`, b.ShortHash(), b.Size)
	return fmt.Sprintf(`    "%s" [label="%s", shape=%s, style=filled, fillcolor="%s"];`,
		b.Hash, label, shapeBlob, colorBlob)
}

func tagNode(t *object.Tag) string {
	label := fmt.Sprintf(`tag: %s\n%s`, EscapeLabel(t.Name), t.ShortHash())
	return fmt.Sprintf(`    "%s" [label="%s", shape=%s, style=filled, fillcolor="%s"];`,
		t.Hash, label, shapeTag, colorTag)
}

func refNode(ref object.Ref, isHeadTarget bool) string {
	style := "filled"
	if isHeadTarget {
		style = "filled,bold"
	}
	return fmt.Sprintf(`    "%s" [label="%s", shape=%s, style="%s", fillcolor="%s"];`,
		RefNodeID(ref.Name), EscapeLabel(ref.ShortName()), shapeRef, style, colorRef)
}

// missingRefNode declares a dashed placeholder for a reference that does not
// exist yet, such as the unborn branch of a freshly initialized repository.
func missingRefNode(name string) string {
	return fmt.Sprintf(`    "%s" [label="%s", shape=%s, style="dashed,bold", fillcolor="%s"];`,
		RefNodeID(name), EscapeLabel(object.ShortRefName(name)), shapeRef, colorRef)
}

func headNode() string {
	return fmt.Sprintf(`    "HEAD" [label="HEAD", shape=%s, style="filled,bold", fillcolor="%s"];`,
		shapeRef, colorRef)
}

// =============================================================================
// Rank constraints
// =============================================================================

// rankConstraints pins references, commits, and blobs each to one rank.
// Trees are deliberately unconstrained: their nesting depth varies.
func rankConstraints(repo *object.Repository, opts Options) []string {
	var parts []string

	var refIDs []string
	for _, ref := range repo.Refs {
		refIDs = append(refIDs, quote(RefNodeID(ref.Name)))
	}
	if opts.HeadTargetRef != "" && !opts.HeadTargetExists {
		refIDs = append(refIDs, quote(RefNodeID(opts.HeadTargetRef)))
	}
	if repo.Head != nil {
		refIDs = append(refIDs, quote("HEAD"))
	}
	if len(refIDs) > 0 {
		parts = append(parts,
			"    // Rank constraint: references at same level",
			fmt.Sprintf("    { rank=same; %s }", strings.Join(refIDs, "; ")),
			"")
	}

	if len(repo.Commits) > 0 {
		ids := make([]string, 0, len(repo.Commits))
		for _, c := range repo.Commits {
			ids = append(ids, quote(c.Hash))
		}
		parts = append(parts,
			"    // Rank constraint: commits at same level",
			fmt.Sprintf("    { rank=same; %s }", strings.Join(ids, "; ")),
			"")
	}

	if len(repo.Blobs) > 0 {
		ids := make([]string, 0, len(repo.Blobs))
		for _, b := range repo.Blobs {
			ids = append(ids, quote(b.Hash))
		}
		parts = append(parts,
			"    // Rank constraint: blobs at same level",
			fmt.Sprintf("    { rank=same; %s }", strings.Join(ids, "; ")),
			"")
	}

	return parts
}

func quote(s string) string { return `"` + s + `"` }

// =============================================================================
// Edge declarations
// =============================================================================

// commitEdges links a commit to its tree and to each parent, in parent
// order. An empty tree hash or an empty parent list is a valid terminal
// state and simply produces no edge.
func commitEdges(c *object.Commit) []string {
	var edges []string
	if c.TreeHash != "" {
		edges = append(edges, fmt.Sprintf(`    "%s" -> "%s" [color=darkgreen];`, c.Hash, c.TreeHash))
	}
	for _, parent := range c.Parents {
		edges = append(edges, fmt.Sprintf(`    "%s" -> "%s" [color=black];`, c.Hash, parent))
	}
	return edges
}

// treeEdges links a tree to every entry target, labeled with the entry
// name. Entries sharing a target still get one edge each.
func treeEdges(t *object.Tree) []string {
	edges := make([]string, 0, len(t.Entries))
	for _, entry := range t.Entries {
		edges = append(edges, fmt.Sprintf(`    "%s" -> "%s" [color=darkgreen, label="%s"];`,
			t.Hash, entry.Hash, EscapeLabel(entry.Name)))
	}
	return edges
}

// tagEdges links an annotated tag to its target, dashed to keep the tag
// layer visually apart from the object graph.
func tagEdges(t *object.Tag) []string {
	if t.Target == "" {
		return nil
	}
	return []string{fmt.Sprintf(`    "%s" -> "%s" [style=dashed, color=orange];`, t.Hash, t.Target)}
}

func refEdges(ref object.Ref) []string {
	if ref.Target == "" {
		return nil
	}
	return []string{fmt.Sprintf(`    "%s" -> "%s" [style=solid, color=gray];`, RefNodeID(ref.Name), ref.Target)}
}

// upstreamEdges links each local branch to its configured upstream, but only
// when that upstream is present in the loaded reference set. A dangling
// upstream that was deleted on the remote produces no edge, not an error.
func upstreamEdges(refs []object.Ref) []string {
	existing := make(map[string]bool, len(refs))
	for _, ref := range refs {
		existing[ref.Name] = true
	}

	var edges []string
	for _, ref := range refs {
		if ref.Kind != object.RefLocalBranch || ref.Upstream == "" {
			continue
		}
		if !existing[ref.Upstream] {
			continue
		}
		edges = append(edges, fmt.Sprintf(`    "%s" -> "%s" [style=dashed, color=gray];`,
			RefNodeID(ref.Name), RefNodeID(ref.Upstream)))
	}
	return edges
}

// headEdges draws the HEAD edge: bold to the named branch when attached
// (including an unborn placeholder), dotted straight to the object hash when
// detached.
func headEdges(head object.Ref, headTargetRef string) []string {
	if headTargetRef != "" {
		return []string{fmt.Sprintf(`    "HEAD" -> "%s" [style=bold, color=gray];`, RefNodeID(headTargetRef))}
	}
	if head.Target != "" {
		return []string{fmt.Sprintf(`    "HEAD" -> "%s" [style=dotted, color=gray];`, head.Target)}
	}
	return nil
}

// =============================================================================
// Index table
// =============================================================================

// indexTable renders the staging area as an HTML-like table inside its own
// cluster. Callers must not invoke this with zero entries; the enclosing
// cluster is never emitted empty.
func indexTable(entries []object.IndexEntry) string {
	lines := []string{
		"    // Index table",
		"    subgraph cluster_index {",
		`        label="Git Index";`,
		"        style=filled;",
		`        fillcolor="#f0f0f0";`,
		"        node [shape=plaintext];",
		"        index_table [label=<",
		`            <TABLE BORDER="1" CELLBORDER="1" CELLSPACING="0" CELLPADDING="4">`,
		`                <TR><TD BGCOLOR="#dddddd"><B>Hash</B></TD><TD BGCOLOR="#dddddd"><B>Path</B></TD></TR>`,
	}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("                <TR><TD>%s</TD><TD>%s</TD></TR>",
			EscapeHTML(entry.ShortHash()), EscapeHTML(entry.Path)))
	}
	lines = append(lines,
		"            </TABLE>",
		"        >];",
		"    }")
	return strings.Join(lines, "\n")
}
