package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// base/
	//   project/ (.agenda)
	//     sub/
	//       nested/
	//   loose/
	//     .agenda (file, not a marker)
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	subDir := filepath.Join(projectDir, "sub")
	nestedDir := filepath.Join(subDir, "nested")
	looseDir := filepath.Join(baseDir, "loose")

	for _, d := range []string{nestedDir, looseDir, filepath.Join(projectDir, ".agenda")} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(looseDir, ".agenda"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{"Start at Root", projectDir, projectDir, false},
		{"Start in Subdir", subDir, projectDir, false},
		{"Start Nested Deeply", nestedDir, projectDir, false},
		{"Marker Must Be a Directory", looseDir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrRootNotFound) {
					t.Errorf("FindRoot() error = %v, want ErrRootNotFound", err)
				}
				return
			}
			if filepath.Clean(got) != filepath.Clean(tt.wantRoot) {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}

func TestResolveDir(t *testing.T) {
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	if err := os.MkdirAll(filepath.Join(projectDir, ".meetings", "x"), 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("Explicit Wins", func(t *testing.T) {
		want := filepath.Join(baseDir, "elsewhere")
		got, err := ResolveDir(want, projectDir, ".meetings")
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ResolveDir() = %v, want %v", got, want)
		}
	})

	t.Run("Project Marker", func(t *testing.T) {
		got, err := ResolveDir("", filepath.Join(projectDir, ".meetings", "x"), ".meetings")
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(projectDir, ".meetings"); got != want {
			t.Errorf("ResolveDir() = %v, want %v", got, want)
		}
	})

	t.Run("User Config Fallback", func(t *testing.T) {
		cfg := filepath.Join(baseDir, "cfg")
		t.Setenv("XDG_CONFIG_HOME", cfg)
		t.Setenv("HOME", baseDir)
		t.Setenv("AppData", cfg)

		got, err := ResolveDir("", baseDir, ".no-such-marker")
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(got) != AppName {
			t.Errorf("ResolveDir() = %v, want a directory named %s", got, AppName)
		}
	})
}

func TestResolveDataDir(t *testing.T) {
	inTemp := filepath.Join(os.TempDir(), "agenda-test-data")
	if got := ResolveDataDir(inTemp, true); got != inTemp {
		t.Errorf("temp paths are trusted, got %v", got)
	}

	outside := filepath.Join(string(os.PathSeparator), "srv", "team")
	if got := ResolveDataDir(outside, false); got != outside {
		t.Errorf("unsandboxed path changed: %v", got)
	}
	want := filepath.Join(os.TempDir(), devDirName, "team")
	if got := ResolveDataDir(outside, true); got != want {
		t.Errorf("ResolveDataDir() = %v, want %v", got, want)
	}
}

func TestIsDevRun(t *testing.T) {
	if !IsDevRun() {
		t.Error("test binaries must be detected as dev runs")
	}
}
