// Package copier carries per-repo config files into new worktrees.
//
// Copying is best effort: missing sources are skipped, existing
// destinations are never overwritten, and failures are reported per
// entry without aborting the run.
package copier

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Status classifies what happened to one configured entry.
type Status int

const (
	// StatusCopied means the entry was written into the worktree.
	StatusCopied Status = iota
	// StatusSkippedMissing means the source does not exist in the repo.
	StatusSkippedMissing
	// StatusSkippedExists means the destination already exists.
	StatusSkippedExists
	// StatusFailed means the copy was attempted and failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusSkippedMissing:
		return "not found"
	case StatusSkippedExists:
		return "already present"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records the outcome for one configured entry.
type FileResult struct {
	Path   string // entry as configured, relative to the repo root
	Status Status
	Err    error // set when Status is StatusFailed
}

// Report aggregates the results of one copy run.
type Report struct {
	Files   []FileResult
	Copied  int
	Skipped int
	Failed  int
}

// Copy carries each configured entry from the repository root into
// dest. Entries may be files or directories; directories copy
// recursively. One failing entry does not stop the rest.
func Copy(root, dest string, files []string) Report {
	var rep Report
	for _, f := range files {
		res := copyEntry(root, dest, f)
		rep.Files = append(rep.Files, res)
		switch res.Status {
		case StatusCopied:
			rep.Copied++
		case StatusFailed:
			rep.Failed++
		default:
			rep.Skipped++
		}
	}
	return rep
}

func copyEntry(root, dest, entry string) FileResult {
	src := filepath.Join(root, entry)
	dst := filepath.Join(dest, entry)

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileResult{Path: entry, Status: StatusSkippedMissing}
		}
		return FileResult{Path: entry, Status: StatusFailed, Err: err}
	}

	if info.IsDir() {
		n, err := copyTree(src, dst)
		if err != nil {
			return FileResult{Path: entry, Status: StatusFailed, Err: err}
		}
		if n == 0 {
			return FileResult{Path: entry, Status: StatusSkippedExists}
		}
		return FileResult{Path: entry, Status: StatusCopied}
	}

	copied, err := CopyFile(src, dst)
	if err != nil {
		return FileResult{Path: entry, Status: StatusFailed, Err: err}
	}
	if !copied {
		return FileResult{Path: entry, Status: StatusSkippedExists}
	}
	return FileResult{Path: entry, Status: StatusCopied}
}

// copyTree copies every regular file under src into dst, returning how
// many files were actually written.
func copyTree(src, dst string) (int, error) {
	copied := 0
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		wrote, err := CopyFile(p, filepath.Join(dst, rel))
		if err != nil {
			return fmt.Errorf("%s: %w", rel, err)
		}
		if wrote {
			copied++
		}
		return nil
	})
	return copied, err
}

// CopyFile copies src to dst, creating parent directories as needed.
// O_CREATE|O_EXCL skips destinations that already exist, so local
// edits in a reused worktree never get clobbered. Permission bits
// carry over from the source. Returns true when the file was written.
func CopyFile(src, dst string) (bool, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil // skip existing files
		}
		return false, err
	}
	defer dstFile.Close()

	srcFile, err := os.Open(src)
	if err != nil {
		os.Remove(dst) // clean up empty dst
		return false, err
	}
	defer srcFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		os.Remove(dst) // clean up partial dst
		return false, err
	}

	return true, nil
}
