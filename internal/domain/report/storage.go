package report

import "context"

// ImageFile is one uploaded photo, fully read into memory.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type StoredImage struct {
	Key string
	URL string
}

// ImageStore persists report photos and hands back a public URL for each.
type ImageStore interface {
	Upload(ctx context.Context, file ImageFile) (StoredImage, error)
	Delete(ctx context.Context, key string) error
}
