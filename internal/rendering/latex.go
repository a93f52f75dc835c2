package rendering

import (
	"context"
	"strings"
	"text/template"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// latexTemplate is the fixed typeset layout. Only user-supplied values pass
// through the escape function; the template text itself is trusted and must
// not be escaped.
const latexTemplate = `\documentclass[letterpaper,11pt]{article}

\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage[english]{babel}

\pagestyle{empty}
\raggedbottom
\raggedright

\titleformat{\section}{
  \vspace{-4pt}\scshape\raggedright\large
}{}{0em}{}[\color{black}\titlerule \vspace{-5pt}]
\usepackage[usenames,dvipsnames]{color}

\begin{document}

\begin{center}
    \textbf{\Huge \scshape {{escape .Name}}} \\ \vspace{1pt}
    \small {{escape .Email}}{{if .Phone}} $|$ {{escape .Phone}}{{end}}{{if .Location}} $|$ {{escape .Location}}{{end}}
\end{center}

\section{Summary}
{{escape .Content.Summary}}

\section{Skills}
\begin{itemize}[leftmargin=0.15in, label={}, itemsep=0pt]
\item[]\small{ {{- range $i, $s := .Content.Skills}}{{if $i}}, {{end}}{{escape $s}}{{end -}} }
\end{itemize}

\section{Experience}
\begin{itemize}[leftmargin=0.4in, itemsep=0pt]
{{- range .Content.ExperienceBullets}}
  \item \small{ {{- escape . -}} }
{{- end}}
\end{itemize}

\section{Education}
{{- range .Content.Education}}
\hspace{0.3cm} \textbf{ {{- escape .Institution -}} } \hfill {{escape .Year}} \\
\hspace{0.3cm} \textit{ {{- escape .Degree -}} } \\
{{- end}}

\end{document}
`

var latexTmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"escape": EscapeLaTeX,
}).Parse(latexTemplate))

type latexData struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Content  *types.GeneratedResumeContent
}

// BuildLaTeX renders the resume as a LaTeX source document.
func BuildLaTeX(personal types.PersonalInfo, content *types.GeneratedResumeContent) (string, error) {
	data := latexData{
		Name:     strings.TrimSpace(personal.FirstName + " " + personal.LastName),
		Email:    personal.Email,
		Phone:    personal.Phone,
		Location: personal.Location,
		Content:  content,
	}

	var sb strings.Builder
	if err := latexTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute LaTeX template", Cause: err}
	}
	return sb.String(), nil
}

// LaTeXRenderer compiles a templated LaTeX document with pdflatex.
type LaTeXRenderer struct {
	// CompilerPath is the pdflatex binary; defaults to a PATH lookup.
	CompilerPath string
}

// Render implements Renderer.
func (r *LaTeXRenderer) Render(ctx context.Context, personal types.PersonalInfo, content *types.GeneratedResumeContent) ([]byte, error) {
	source, err := BuildLaTeX(personal, content)
	if err != nil {
		return nil, err
	}

	compiler := r.CompilerPath
	if compiler == "" {
		compiler = "pdflatex"
	}
	return CompilePDF(ctx, compiler, source)
}
