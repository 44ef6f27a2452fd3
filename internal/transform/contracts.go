package transform

import "context"

// Func is the image transform collaborator: original entry bytes in,
// recognition-ready bytes out. The job kind picks the implementation.
type Func func(ctx context.Context, filename string, img []byte) ([]byte, error)

// Passthrough submits the original bytes unchanged.
func Passthrough(_ context.Context, _ string, img []byte) ([]byte, error) {
	return img, nil
}
