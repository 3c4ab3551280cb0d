package render

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/DanRulev/h5pboard.git/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var leaderboardTpl = template.Must(template.ParseFS(templatesFS, "templates/leaderboard.html"))

// HTMLRenderer produces the leaderboard markup fragment. Free text is escaped
// by html/template.
type HTMLRenderer struct {
	opts Options
}

func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{opts: opts.withDefaults()}
}

type htmlView struct {
	Rows   []models.DisplayRow
	Notice string
}

func (h *HTMLRenderer) Render(rows []models.ResultRow) string {
	view := htmlView{
		Rows:   Build(rows, h.opts),
		Notice: EmptyNotice,
	}

	var buf bytes.Buffer
	if err := leaderboardTpl.ExecuteTemplate(&buf, "leaderboard", view); err != nil {
		// unreachable: the template is parsed at init and buffer writes don't fail
		return ""
	}

	return buf.String()
}
