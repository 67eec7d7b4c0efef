package crud

import (
	"context"
	"fmt"
	"io"

	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// MediaPath is the route prefix uploaded files are served from, relative
// to the API root.
const MediaPath = "/media/"

// Upload is a file stored ahead of the record change that references it.
// A nil Upload means no file was sent.
type Upload struct {
	media     *storage.Media
	name      string
	committed bool
}

// SaveUpload stores the file sent as field. Callers defer Discard and call
// Commit once the record referencing the file is stored.
func SaveUpload(c *fiber.Ctx, media *storage.Media, p *Patch, field string) (*Upload, error) {
	fh := p.File(field)
	if fh == nil {
		return nil, nil //nolint:nilnil //no file sent
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	name, err := media.Save(c.UserContext(), fh.Filename, contentType, data)
	if err != nil {
		return nil, err //nolint:wrapcheck //already wrapped
	}

	return &Upload{media: media, name: name}, nil
}

// URL is the relative URL of the stored file, "" when no file was sent.
func (u *Upload) URL() string {
	if u == nil {
		return ""
	}

	return MediaPath + u.name
}

// Commit keeps the file.
func (u *Upload) Commit() {
	if u != nil {
		u.committed = true
	}
}

// Discard removes the file unless it was committed.
func (u *Upload) Discard(ctx context.Context) {
	if u == nil || u.committed {
		return
	}

	_ = u.media.Delete(ctx, u.name)
}
