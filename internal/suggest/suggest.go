package suggest

import (
	"context"
	"strings"

	"github.com/sajidbaba1/yt/internal/models"
)

// DefaultDescription is what a video gets when no suggestion is available.
const DefaultDescription = "Uploaded with YT Planner."

// Suggester proposes upload metadata for a video filename. Implementations
// never return an error: any internal failure yields the filename-derived
// fallback so the scheduling flow is never blocked.
type Suggester interface {
	Suggest(ctx context.Context, filename string) *models.Suggestion
}

// Fallback is the deterministic suggestion used when the upstream model is
// unavailable.
func Fallback(filename string) *models.Suggestion {
	return &models.Suggestion{
		Title:       filename,
		Description: DefaultDescription,
	}
}

// TrimExtension strips a trailing file extension for prompt building.
func TrimExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx]
	}
	return filename
}
