package ports

import "github.com/renato0307/devcon/internal/domain"

// StatusIndicator is the single global status sink. Any task may write to
// it; the last writer wins.
type StatusIndicator interface {
	Current() domain.Color
	Set(color domain.Color)
}
