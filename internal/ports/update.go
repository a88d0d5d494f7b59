package ports

import (
	"context"

	"github.com/renato0307/devcon/internal/domain"
)

// UpdateHandler receives the transitions of one update check. The update
// channel calls these synchronously from inside CheckForUpdate.
type UpdateHandler interface {
	// DownloadComplete is called once the image is written. It does not
	// return when the restart succeeds.
	DownloadComplete(ctx context.Context) bool
	// DownloadFailed is called when a started download cannot finish
	DownloadFailed(ctx context.Context, code int)
	// UpdateAvailable is called before the download starts. Returning false
	// aborts the download.
	UpdateAvailable(ctx context.Context) bool
}

// UpdateChannel checks for and applies over-the-air updates.
// Failures are returned as *domain.UpdateError carrying the result code.
type UpdateChannel interface {
	CheckForUpdate(ctx context.Context, handler UpdateHandler) (domain.UpdateStatus, error)
}
