package render

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"svg", "graph.svg", false},
		{"png", "graph.png", false},
		{"pdf", "graph.pdf", false},
		{"uppercase extension", "graph.SVG", false},
		{"nested path", filepath.Join("out", "dir", "graph.png"), false},
		{"gif rejected", "graph.gif", true},
		{"dot rejected", "graph.dot", true},
		{"no extension", "graph", true},
		{"trailing dot", "graph.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"svg", "a.svg", "svg"},
		{"png", "a.png", "png"},
		{"pdf", "a.pdf", "pdf"},
		{"case insensitive", "a.PNG", "png"},
		{"unknown falls back to svg", "a.xyz", "svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFor(tt.path); got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRenderErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *RenderError
		want string
	}{
		{"with details", &RenderError{Message: "dot failed", Details: "syntax error near line 3\n"}, "dot failed: syntax error near line 3"},
		{"without details", &RenderError{Message: "dot failed"}, "dot failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScratchPath(t *testing.T) {
	first := scratchPath()
	second := scratchPath()

	if first == second {
		t.Error("scratchPath() returned the same path twice")
	}
	for _, p := range []string{first, second} {
		base := filepath.Base(p)
		if !strings.HasPrefix(base, "gitgraph-") || !strings.HasSuffix(base, ".dot") {
			t.Errorf("scratch file name %q does not match gitgraph-*.dot", base)
		}
	}
}
