package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output != "gitgraph.svg" {
		t.Errorf("Output = %q, want gitgraph.svg", cfg.Output)
	}
	if cfg.ObjectThreshold != 100 {
		t.Errorf("ObjectThreshold = %d, want 100", cfg.ObjectThreshold)
	}
	if cfg.IncludeIndex != nil {
		t.Errorf("IncludeIndex = %v, want nil (unset)", *cfg.IncludeIndex)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantOutput    string
		wantThreshold int
		wantIndex     *bool
		wantErr       bool
	}{
		{
			name:          "all fields",
			content:       "output = \"repo.png\"\ninclude_index = false\nobject_threshold = 250\n",
			wantOutput:    "repo.png",
			wantThreshold: 250,
			wantIndex:     boolPtr(false),
		},
		{
			name:          "partial file keeps defaults",
			content:       "output = \"custom.svg\"\n",
			wantOutput:    "custom.svg",
			wantThreshold: 100,
		},
		{
			name:          "zero threshold ignored",
			content:       "object_threshold = 0\n",
			wantOutput:    "gitgraph.svg",
			wantThreshold: 100,
		},
		{
			name:          "malformed file returns defaults and error",
			content:       "output = not quoted\n",
			wantOutput:    "gitgraph.svg",
			wantThreshold: 100,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cfg.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", cfg.Output, tt.wantOutput)
			}
			if cfg.ObjectThreshold != tt.wantThreshold {
				t.Errorf("ObjectThreshold = %d, want %d", cfg.ObjectThreshold, tt.wantThreshold)
			}
			if (cfg.IncludeIndex == nil) != (tt.wantIndex == nil) {
				t.Fatalf("IncludeIndex set = %v, want set = %v", cfg.IncludeIndex != nil, tt.wantIndex != nil)
			}
			if cfg.IncludeIndex != nil && *cfg.IncludeIndex != *tt.wantIndex {
				t.Errorf("IncludeIndex = %v, want %v", *cfg.IncludeIndex, *tt.wantIndex)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope", "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile() on missing file error = %v, want nil", err)
	}
	if cfg.Output != "gitgraph.svg" || cfg.ObjectThreshold != 100 {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestPathUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/custom/config", "gitgraph", "config.toml")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

func boolPtr(b bool) *bool { return &b }
