// Package attachments manages the claim's file attachments: a de-duplicated
// collection with a per-file size cap, and the encoder that turns files into
// the backend's transmissible form.
package attachments

import (
	"fmt"
	"io"
)

// MaxFileSize is the per-file cap, enforced before any file content is read.
const MaxFileSize = 20 * 1024 * 1024 // 20 MiB

// File is a user-selected file staged for submission. Content is read lazily
// through Open so that staging a file costs no I/O.
type File struct {
	Name      string
	MediaType string
	Size      int64
	Open      func() (io.ReadCloser, error)
}

// OversizedError reports the first file in a batch that exceeds MaxFileSize.
type OversizedError struct {
	Name string
}

func (e *OversizedError) Error() string {
	return fmt.Sprintf("Die Datei %q ist zu groß (max. 20 MB)", e.Name)
}

// Collection holds the staged attachments. It is mutated only from the UI
// goroutine; no locking is needed.
type Collection struct {
	files []File
}

// Add stages a batch of files. If any file in the batch exceeds MaxFileSize
// the whole batch is rejected and the collection is left untouched. Files
// already present (same name and size) are skipped silently.
func (c *Collection) Add(batch ...File) error {
	for _, f := range batch {
		if f.Size > MaxFileSize {
			return &OversizedError{Name: f.Name}
		}
	}
	for _, f := range batch {
		if !c.contains(f.Name, f.Size) {
			c.files = append(c.files, f)
		}
	}
	return nil
}

// Remove drops the attachment at index i. Out-of-range indexes are ignored.
func (c *Collection) Remove(i int) {
	if i < 0 || i >= len(c.files) {
		return
	}
	c.files = append(c.files[:i], c.files[i+1:]...)
}

// Files returns the staged attachments in insertion order.
func (c *Collection) Files() []File {
	out := make([]File, len(c.files))
	copy(out, c.files)
	return out
}

func (c *Collection) Len() int { return len(c.files) }

func (c *Collection) contains(name string, size int64) bool {
	for _, f := range c.files {
		if f.Name == name && f.Size == size {
			return true
		}
	}
	return false
}

// DisplayName shortens long filenames for list rendering.
func DisplayName(name string) string {
	if len(name) > 20 {
		return name[:17] + "..."
	}
	return name
}
