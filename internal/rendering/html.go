package rendering

import (
	"html/template"
	"strings"

	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// htmlTemplate is a self-contained styled resume document. All styling is
// inline; the printed page must not reference external assets.
const htmlTemplate = `<!doctype html>
<html><head><meta charset="utf-8"><style>
  body {
    font-family: -apple-system, BlinkMacSystemFont, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
    color: #222;
    padding: 40px;
    line-height: 1.6;
    max-width: 800px;
    margin: 0 auto;
  }
  h1 {
    font-size: 28px;
    margin-bottom: 8px;
    color: #1a1a1a;
    font-weight: 600;
  }
  h2 {
    font-size: 18px;
    margin-top: 28px;
    margin-bottom: 12px;
    color: #2c3e50;
    border-bottom: 2px solid #3498db;
    padding-bottom: 4px;
    font-weight: 600;
  }
  .contact-info {
    color: #555;
    margin-bottom: 24px;
    font-size: 14px;
  }
  ul { margin-top: 8px; padding-left: 20px; }
  li { margin-bottom: 8px; line-height: 1.5; }
  .skills { line-height: 1.8; }
  .skills span {
    display: inline-block;
    background: #f0f0f0;
    padding: 4px 12px;
    border-radius: 4px;
    margin: 4px 4px 4px 0;
    font-size: 14px;
  }
  .education-entry { margin-bottom: 8px; }
  .education-year { color: #666; }
  p { margin: 8px 0; line-height: 1.6; }
</style></head>
<body>
  <h1>{{if .Name}}{{.Name}}{{else}}Professional Resume{{end}}</h1>
  <div class="contact-info">
    {{.Personal.Email}}{{if .Personal.Phone}} &bull; {{.Personal.Phone}}{{end}}{{if .Personal.Location}} &bull; {{.Personal.Location}}{{end}}
  </div>

  <h2>Professional Summary</h2>
  <p>{{.Content.Summary}}</p>

  <h2>Skills</h2>
  <div class="skills">{{range .Content.Skills}}<span>&bull; {{.}}</span>{{end}}{{if not .Content.Skills}}<p>Skills to be added</p>{{end}}</div>

  <h2>Professional Experience</h2>
  <ul>{{range .Content.ExperienceBullets}}<li>{{.}}</li>{{else}}<li>Experience details to be added</li>{{end}}</ul>

  <h2>Education</h2>
  {{range .Content.Education}}<div class="education-entry">
    <strong>{{.Degree}}</strong> &ndash; {{.Institution}} <span class="education-year">({{.Year}})</span>
  </div>{{else}}<p>Education details to be added</p>{{end}}
</body></html>`

var htmlTmpl = template.Must(template.New("resume").Parse(htmlTemplate))

type htmlData struct {
	Name     string
	Personal types.PersonalInfo
	Content  *types.GeneratedResumeContent
}

// BuildHTML renders the resume document as a self-contained HTML page.
// User content is escaped by html/template.
func BuildHTML(personal types.PersonalInfo, content *types.GeneratedResumeContent) (string, error) {
	data := htmlData{
		Name:     strings.TrimSpace(personal.FirstName + " " + personal.LastName),
		Personal: personal,
		Content:  content,
	}

	var sb strings.Builder
	if err := htmlTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute HTML template", Cause: err}
	}
	return sb.String(), nil
}
