package object

import "testing"

func TestAbbrev(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want string
	}{
		{"full hash", "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0", "a1b2c3d"},
		{"exactly seven", "a1b2c3d", "a1b2c3d"},
		{"shorter than seven", "a1b2", "a1b2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abbrev(tt.hash); got != tt.want {
				t.Errorf("Abbrev(%q) = %q, want %q", tt.hash, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	commit := &Commit{Hash: "aaaa"}
	tree := &Tree{Hash: "aaaa"}
	other := &Blob{Hash: "bbbb"}

	tests := []struct {
		name string
		a, b Object
		want bool
	}{
		{"same hash same kind", commit, &Commit{Hash: "aaaa"}, true},
		{"same hash different kind", commit, tree, true},
		{"different hash", commit, other, false},
		{"nil left", nil, commit, false},
		{"nil right", commit, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortRefName(t *testing.T) {
	tests := []struct {
		name    string
		refName string
		want    string
	}{
		{"local branch", "refs/heads/main", "main"},
		{"nested local branch", "refs/heads/feature/login", "feature/login"},
		{"remote branch", "refs/remotes/origin/main", "origin/main"},
		{"tag", "refs/tags/v1.0", "v1.0"},
		{"no known prefix", "HEAD", "HEAD"},
		{"prefix order first match wins", "refs/heads/refs/tags/x", "refs/tags/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortRefName(tt.refName); got != tt.want {
				t.Errorf("ShortRefName(%q) = %q, want %q", tt.refName, got, tt.want)
			}
		})
	}
}

func TestKindForRefName(t *testing.T) {
	tests := []struct {
		name    string
		refName string
		want    RefKind
	}{
		{"local", "refs/heads/main", RefLocalBranch},
		{"remote", "refs/remotes/origin/dev", RefRemoteBranch},
		{"tag", "refs/tags/v2", RefTag},
		{"unknown defaults to local", "refs/stash", RefLocalBranch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindForRefName(tt.refName); got != tt.want {
				t.Errorf("KindForRefName(%q) = %v, want %v", tt.refName, got, tt.want)
			}
		})
	}
}

func TestRefEqual(t *testing.T) {
	base := Ref{Name: "refs/heads/main", Target: "aaaa", Kind: RefLocalBranch}

	tests := []struct {
		name  string
		other Ref
		want  bool
	}{
		{"same name and target", Ref{Name: "refs/heads/main", Target: "aaaa"}, true},
		{"moved branch", Ref{Name: "refs/heads/main", Target: "bbbb"}, false},
		{"renamed branch", Ref{Name: "refs/heads/dev", Target: "aaaa"}, false},
		{"upstream does not affect identity", Ref{Name: "refs/heads/main", Target: "aaaa", Upstream: "refs/remotes/origin/main"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRepositoryLookup(t *testing.T) {
	repo := NewRepository("/tmp/demo")
	repo.AddCommit(&Commit{Hash: "c0ffee0000000000000000000000000000000001"})
	repo.AddTree(&Tree{Hash: "dead00000000000000000000000000000000beef"})
	repo.AddBlob(&Blob{Hash: "b10b0000000000000000000000000000000000aa", Size: 12})

	tests := []struct {
		name     string
		hash     string
		wantHash string
		wantOK   bool
	}{
		{"exact match", "dead00000000000000000000000000000000beef", "dead00000000000000000000000000000000beef", true},
		{"prefix match", "c0ffee", "c0ffee0000000000000000000000000000000001", true},
		{"short prefix match", "b10b", "b10b0000000000000000000000000000000000aa", true},
		{"no match", "123456", "", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := repo.ObjectByHash(tt.hash)
			if ok != tt.wantOK {
				t.Fatalf("ObjectByHash(%q) ok = %v, want %v", tt.hash, ok, tt.wantOK)
			}
			if ok && obj.ObjectHash() != tt.wantHash {
				t.Errorf("ObjectByHash(%q) = %q, want %q", tt.hash, obj.ObjectHash(), tt.wantHash)
			}
		})
	}
}

func TestRepositoryCountsAndOrder(t *testing.T) {
	repo := NewRepository(".")
	repo.AddCommit(&Commit{Hash: "c1"})
	repo.AddCommit(&Commit{Hash: "c2"})
	repo.AddTree(&Tree{Hash: "t1"})
	repo.AddBlob(&Blob{Hash: "b1"})
	repo.AddTag(&Tag{Hash: "g1"})
	repo.AddRef(Ref{Name: "refs/heads/main", Target: "c2"})

	if got := repo.ObjectCount(); got != 5 {
		t.Errorf("ObjectCount() = %d, want 5", got)
	}

	all := repo.AllObjects()
	wantOrder := []string{"c1", "c2", "t1", "b1", "g1"}
	if len(all) != len(wantOrder) {
		t.Fatalf("AllObjects() length = %d, want %d", len(all), len(wantOrder))
	}
	for i, want := range wantOrder {
		if all[i].ObjectHash() != want {
			t.Errorf("AllObjects()[%d] = %q, want %q", i, all[i].ObjectHash(), want)
		}
	}

	if len(repo.Refs) != 1 {
		t.Errorf("Refs length = %d, want 1 (refs are not versioned objects)", len(repo.Refs))
	}
}

func TestSetHead(t *testing.T) {
	repo := NewRepository(".")
	if repo.Head != nil {
		t.Fatal("new repository should have no HEAD")
	}
	repo.SetHead(Ref{Name: "HEAD", Target: "abc", Kind: RefHead})
	if repo.Head == nil || repo.Head.Target != "abc" {
		t.Errorf("Head = %+v, want target abc", repo.Head)
	}
}
