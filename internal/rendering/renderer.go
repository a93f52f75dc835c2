package rendering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AdamPostMontjoie/resumefy/internal/config"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// Renderer converts personal info plus normalized resume content into PDF
// bytes.
type Renderer interface {
	Render(ctx context.Context, personal types.PersonalInfo, content *types.GeneratedResumeContent) ([]byte, error)
}

// New selects the rendering backend from configuration.
func New(backend config.RenderBackend, latexPath string) Renderer {
	if backend == config.RenderLaTeX {
		return &LaTeXRenderer{CompilerPath: latexPath}
	}
	return &HTMLRenderer{}
}

// OutputName produces a collision-resistant PDF filename. Concurrent
// requests write to a shared files directory, so a timestamp alone is not
// enough.
func OutputName() string {
	return fmt.Sprintf("resume-%d-%s.pdf", time.Now().UnixMilli(), uuid.NewString()[:8])
}
