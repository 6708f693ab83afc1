package attachments

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
)

func openable(name, content string) File {
	return File{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestEncodeAll_Empty(t *testing.T) {
	t.Parallel()

	got, err := EncodeAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got=%v, want empty", got)
	}
}

func TestEncodeAll_EncodesContent(t *testing.T) {
	t.Parallel()

	files := []File{
		openable("a.txt", "hallo"),
		{Name: "b.bin", Size: 4, Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("welt")), nil
		}},
	}
	got, err := EncodeAll(context.Background(), files)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].Name != "a.txt" || got[0].DataBase64 != base64.StdEncoding.EncodeToString([]byte("hallo")) {
		t.Fatalf("got[0]=%+v", got[0])
	}
	// Missing media type falls back to a generic binary type.
	if got[1].Type != "application/octet-stream" {
		t.Fatalf("type=%q", got[1].Type)
	}
}

func TestEncodeAll_FailsEntirelyOnSingleReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("read failed")
	files := []File{
		openable("ok.txt", "inhalt"),
		{Name: "kaputt.txt", Open: func() (io.ReadCloser, error) { return nil, readErr }},
	}
	got, err := EncodeAll(context.Background(), files)
	if !errors.Is(err, readErr) {
		t.Fatalf("err=%v, want %v", err, readErr)
	}
	if got != nil {
		t.Fatalf("got=%v, want no partial results", got)
	}
}
