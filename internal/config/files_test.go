package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDefaultFiles(t *testing.T) {
	t.Parallel()

	if len(DefaultFiles) != 10 {
		t.Errorf("DefaultFiles has %d entries, want 10", len(DefaultFiles))
	}
	if !slices.Contains(DefaultFiles, ".env") {
		t.Error("DefaultFiles should contain .env")
	}
	if !slices.Contains(DefaultFiles, ".vscode/settings.json") {
		t.Error("DefaultFiles should contain .vscode/settings.json")
	}
	for _, f := range DefaultFiles {
		if filepath.IsAbs(f) {
			t.Errorf("default entry %q must be relative", f)
		}
	}
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()
		files, err := LoadFiles(t.TempDir())
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		if !slices.Equal(files, DefaultFiles) {
			t.Errorf("LoadFiles = %v, want defaults", files)
		}
	})

	t.Run("defaults are a copy", func(t *testing.T) {
		t.Parallel()
		files, _ := LoadFiles(t.TempDir())
		files[0] = "mutated"
		if DefaultFiles[0] == "mutated" {
			t.Fatal("LoadFiles leaked the DefaultFiles backing array")
		}
	})

	t.Run("parses entries comments and blanks", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		content := "# header comment\n\n.env\n   # indented comment\n.vscode/settings.json\n\nmy docs/notes file.md\n"
		if err := os.WriteFile(filepath.Join(root, FilesName), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		files, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		want := []string{".env", ".vscode/settings.json", "my docs/notes file.md"}
		if !slices.Equal(files, want) {
			t.Errorf("LoadFiles = %v, want %v", files, want)
		}
	})

	t.Run("empty file means empty list", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, FilesName), []byte("# nothing here\n"), 0644); err != nil {
			t.Fatal(err)
		}

		files, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		if len(files) != 0 {
			t.Errorf("LoadFiles = %v, want empty list", files)
		}
	})

	t.Run("unreadable file yields defaults with error", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		// A directory named like the config file makes ReadFile fail
		if err := os.Mkdir(filepath.Join(root, FilesName), 0755); err != nil {
			t.Fatal(err)
		}

		files, err := LoadFiles(root)
		if err == nil {
			t.Fatal("LoadFiles = nil error, want read failure")
		}
		if !slices.Equal(files, DefaultFiles) {
			t.Errorf("LoadFiles on error = %v, want defaults", files)
		}
	})

	t.Run("line longer than 64KB kept with its successors", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		long := strings.Repeat("x", 70*1024)
		content := ".env\n" + long + "\n.mcp.json\n"
		if err := os.WriteFile(filepath.Join(root, FilesName), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		files, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		if len(files) != 3 {
			t.Fatalf("LoadFiles = %d entries, want 3", len(files))
		}
		if files[0] != ".env" || files[1] != long || files[2] != ".mcp.json" {
			t.Errorf("entries dropped or reordered: [%q, %d bytes, %q]",
				files[0], len(files[1]), files[2])
		}
	})

	t.Run("binary content degrades to literal entries", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		content := append([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x02, 0x01}, []byte("\n.env\n")...)
		if err := os.WriteFile(filepath.Join(root, FilesName), content, 0644); err != nil {
			t.Fatal(err)
		}

		files, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		want := []string{"\x7fELF\x00\x02\x01", ".env"}
		if !slices.Equal(files, want) {
			t.Errorf("LoadFiles = %q, want %q", files, want)
		}
	})

	t.Run("crlf line endings stripped", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		content := ".env\r\n.vscode/settings.json\r\n"
		if err := os.WriteFile(filepath.Join(root, FilesName), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		files, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		want := []string{".env", ".vscode/settings.json"}
		if !slices.Equal(files, want) {
			t.Errorf("LoadFiles = %q, want %q", files, want)
		}
	})
}

func TestSaveFiles(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		want := []string{".env", "conf/app local.yaml", ".idea/workspace.xml"}

		if err := SaveFiles(root, want); err != nil {
			t.Fatalf("SaveFiles = %v", err)
		}
		got, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("round trip = %v, want %v", got, want)
		}
	})

	t.Run("writes header", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		if err := SaveFiles(root, []string{".env"}); err != nil {
			t.Fatalf("SaveFiles = %v", err)
		}
		data, err := os.ReadFile(filepath.Join(root, FilesName))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "# wtm config files\n") {
			t.Errorf("saved file missing header, got %q", string(data))
		}
	})

	t.Run("empty list persists as empty", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		if err := SaveFiles(root, nil); err != nil {
			t.Fatalf("SaveFiles = %v", err)
		}
		files, err := LoadFiles(root)
		if err != nil {
			t.Fatalf("LoadFiles = %v", err)
		}
		if len(files) != 0 {
			t.Errorf("LoadFiles = %v, want empty", files)
		}
	})
}

func TestRemoveFile(t *testing.T) {
	t.Parallel()

	t.Run("removes present entry", func(t *testing.T) {
		t.Parallel()
		files := []string{".env", ".env.local", ".mcp.json"}
		got, removed := RemoveFile(files, ".env.local")
		if !removed {
			t.Fatal("removed = false, want true")
		}
		want := []string{".env", ".mcp.json"}
		if !slices.Equal(got, want) {
			t.Errorf("RemoveFile = %v, want %v", got, want)
		}
		// Input slice is untouched
		if !slices.Equal(files, []string{".env", ".env.local", ".mcp.json"}) {
			t.Errorf("input mutated: %v", files)
		}
	})

	t.Run("absent entry reports false", func(t *testing.T) {
		t.Parallel()
		files := []string{".env"}
		got, removed := RemoveFile(files, "nope.txt")
		if removed {
			t.Error("removed = true, want false")
		}
		if !slices.Equal(got, files) {
			t.Errorf("RemoveFile = %v, want unchanged", got)
		}
	})
}
