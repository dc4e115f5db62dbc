package contract

import (
	"context"
)

// IHasher covers password hashing and token digest helpers.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IEmailService sends membership decision notifications. Callers treat sends
// as fire-and-forget: a failure is logged, never propagated.
type IEmailService interface {
	SendApprovalEmail(ctx context.Context, name, to string) error
	SendRejectionEmail(ctx context.Context, name, to string) error
}

// UploadedImage is the asset host's handle for a stored image.
type UploadedImage struct {
	URL string
	Ref string
}

// IImageService uploads content images to the external asset host. An upload
// failure aborts the enclosing content write.
type IImageService interface {
	Upload(ctx context.Context, data []byte, filename, hint string) (*UploadedImage, error)
	// Delete removes an asset by ref; an already-missing asset is not an error.
	Delete(ctx context.Context, ref string) error
}

// IUUIDGenerator abstracts ID generation for testability.
type IUUIDGenerator interface {
	NewUUID() string
}
