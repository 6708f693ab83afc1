package attachments

import (
	"context"
	"encoding/base64"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/drk-digital/erstattungsportal/internal/ports/out/gateway"
)

// EncodeAll reads every file's content and produces the backend's wire form,
// with content base64-encoded for JSON embedding. All files are read
// concurrently; if any single read fails the whole operation fails and no
// partial result is returned. An empty input returns an empty list with no
// I/O. Size capping is the collection's job, not the encoder's.
func EncodeAll(ctx context.Context, files []File) ([]gateway.FilePayload, error) {
	if len(files) == 0 {
		return []gateway.FilePayload{}, nil
	}

	out := make([]gateway.FilePayload, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			payload, err := encodeOne(ctx, f)
			if err != nil {
				return err
			}
			out[i] = payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeOne(ctx context.Context, f File) (gateway.FilePayload, error) {
	if err := ctx.Err(); err != nil {
		return gateway.FilePayload{}, err
	}
	rc, err := f.Open()
	if err != nil {
		return gateway.FilePayload{}, err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return gateway.FilePayload{}, err
	}

	mediaType := f.MediaType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return gateway.FilePayload{
		Name:       f.Name,
		Type:       mediaType,
		Size:       f.Size,
		DataBase64: base64.StdEncoding.EncodeToString(content),
	}, nil
}
