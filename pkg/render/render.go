// Package render writes DOT source to an image file via the Graphviz dot
// binary.
//
// The output format comes from the output path's extension, restricted to
// svg, png, and pdf; anything else is rejected before any external work.
// The DOT source goes to a scratch file which is removed on every exit path.
// Removal is best-effort and never replaces the primary result of the render
// step.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrDotNotFound indicates the dot binary is absent from PATH. Callers may
// test for it with errors.Is, both from [Available] and from a render that
// failed because the binary disappeared mid-run.
var ErrDotNotFound = errors.New("graphviz dot not found in PATH")

// RenderError is a typed render failure: a short message plus whatever
// detail the layout tool produced.
type RenderError struct {
	Message string
	Details string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, strings.TrimSpace(e.Details))
	}
	return e.Message
}

// formatByExt maps recognized output extensions to dot -T formats.
var formatByExt = map[string]string{
	".svg": "svg",
	".png": "png",
	".pdf": "pdf",
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{"svg", "png", "pdf"}
}

// FormatFor returns the dot output format for a path. Unrecognized
// extensions fall back to svg; run [ValidateFormat] first to reject them.
func FormatFor(path string) string {
	if format, ok := formatByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return format
	}
	return "svg"
}

// ValidateFormat rejects output paths whose extension is not on the
// allow-list. This runs before any external invocation.
func ValidateFormat(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := formatByExt[ext]; ok {
		return nil
	}
	supported := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		supported = append(supported, "."+f)
	}
	return &RenderError{
		Message: fmt.Sprintf("unsupported output format %q, supported formats: %s", ext, strings.Join(supported, ", ")),
	}
}

// Available reports whether the Graphviz dot binary can be invoked,
// returning its version line on success. dot prints its version to stderr.
func Available(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("dot"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDotNotFound, err)
	}
	cmd := exec.CommandContext(ctx, "dot", "-V")
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", &RenderError{Message: "graphviz dot returned an error", Details: errOut.String()}
	}
	version := strings.TrimSpace(errOut.String())
	if version == "" {
		version = strings.TrimSpace(out.String())
	}
	return version, nil
}

// ToFile renders DOT source into the file at outputPath, with the format
// taken from the path extension. The single dot invocation is synchronous;
// no timeout is imposed beyond ctx.
func ToFile(ctx context.Context, dotSource, outputPath string) error {
	if err := ValidateFormat(outputPath); err != nil {
		return err
	}
	format := FormatFor(outputPath)

	scratch := scratchPath()
	if err := os.WriteFile(scratch, []byte(dotSource), 0o600); err != nil {
		return &RenderError{Message: "failed to write scratch DOT file", Details: err.Error()}
	}
	// Removal must happen on every exit path; a failed removal is tolerated
	// silently so it cannot mask the render result.
	defer os.Remove(scratch)

	cmd := exec.CommandContext(ctx, "dot", "-T"+format, "-o", outputPath, scratch)
	var errOut bytes.Buffer
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if _, lookErr := exec.LookPath("dot"); lookErr != nil {
			return fmt.Errorf("%w: %v", ErrDotNotFound, lookErr)
		}
		return &RenderError{Message: "graphviz dot command failed", Details: errOut.String()}
	}
	return nil
}

// scratchPath names a unique scratch file in the system temp directory.
func scratchPath() string {
	return filepath.Join(os.TempDir(), "gitgraph-"+uuid.NewString()+".dot")
}
