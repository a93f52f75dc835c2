package rendering

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// compileTimeout bounds a single pdflatex run.
const compileTimeout = 30 * time.Second

// CompilePDF writes the LaTeX source to a temporary working directory,
// compiles it, and returns the PDF bytes. All intermediate artifacts (aux,
// log, tex, the directory itself) are removed on every exit path; only the
// returned bytes survive. On compiler failure the diagnostic log is attached
// to the error.
func CompilePDF(ctx context.Context, compilerPath, source string) ([]byte, error) {
	if _, err := exec.LookPath(compilerPath); err != nil {
		return nil, &CompileError{
			Message: fmt.Sprintf("%s not found in PATH; install a LaTeX distribution (e.g., TeX Live)", compilerPath),
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "resumefy-latex-*")
	if err != nil {
		return nil, &CompileError{Message: "failed to create working directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(source), 0o644); err != nil {
		return nil, &CompileError{Message: "failed to write LaTeX source", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, compilerPath, "-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput := stdout.String() + stderr.String()

	pdfPath := filepath.Join(workDir, "resume.pdf")
	pdf, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		return nil, &CompileError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// pdflatex can exit nonzero while still emitting a usable PDF; treat
	// that as success and keep the log out of the response.
	if runErr != nil {
		log.Printf("[RENDER] latex compilation completed with warnings: %v", runErr)
	}

	return pdf, nil
}
