package attachments

import (
	"errors"
	"testing"
)

func stub(name string, size int64) File {
	return File{Name: name, Size: size}
}

func TestCollection_AddDeduplicates(t *testing.T) {
	t.Parallel()

	var c Collection
	if err := c.Add(stub("beleg.pdf", 100)); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if err := c.Add(stub("beleg.pdf", 100)); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("len=%d, want 1", c.Len())
	}

	// Same name with a different size is a different file.
	if err := c.Add(stub("beleg.pdf", 101)); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("len=%d, want 2", c.Len())
	}
}

func TestCollection_OversizedRejectsWholeBatch(t *testing.T) {
	t.Parallel()

	var c Collection
	if err := c.Add(stub("ok.pdf", 10)); err != nil {
		t.Fatalf("Add err=%v", err)
	}

	err := c.Add(stub("klein.pdf", 5), stub("riesig.bin", MaxFileSize+1))
	oe := (*OversizedError)(nil)
	if !errors.As(err, &oe) || oe.Name != "riesig.bin" {
		t.Fatalf("err=%v, want OversizedError for riesig.bin", err)
	}
	if c.Len() != 1 {
		t.Fatalf("len=%d, want collection unchanged", c.Len())
	}
}

func TestCollection_Remove(t *testing.T) {
	t.Parallel()

	var c Collection
	_ = c.Add(stub("a", 1), stub("b", 2), stub("c", 3))
	c.Remove(1)
	files := c.Files()
	if len(files) != 2 || files[0].Name != "a" || files[1].Name != "c" {
		t.Fatalf("files=%v", files)
	}
	c.Remove(99) // ignored
	if c.Len() != 2 {
		t.Fatalf("len=%d", c.Len())
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := DisplayName("kurz.pdf"); got != "kurz.pdf" {
		t.Errorf("got %q", got)
	}
	long := "ein-sehr-langer-dateiname.pdf"
	if got := DisplayName(long); got != "ein-sehr-langer-d..." {
		t.Errorf("got %q", got)
	}
}
