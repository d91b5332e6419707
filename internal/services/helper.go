package service

import (
	stderrors "errors"

	repository "github.com/vortexgear/storefront/internal/repositories"
)

// isCorrupt reports whether a load failed on the stored bytes rather than on
// the storage backend. Such state is discarded instead of blocking startup.
func isCorrupt(err error) bool {
	return stderrors.Is(err, repository.ErrCorrupt) || stderrors.Is(err, repository.ErrUnsupportedVersion)
}
