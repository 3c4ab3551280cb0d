package render

import (
	"strconv"
	"strings"

	"github.com/DanRulev/h5pboard.git/internal/models"
)

// TextRenderer lays the leaderboard out as plain text, one block per content
// item, for transports that cannot show markup.
type TextRenderer struct {
	opts Options
}

func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{opts: opts.withDefaults()}
}

func (t *TextRenderer) Render(rows []models.ResultRow) string {
	display := Build(rows, t.opts)
	if len(display) == 0 {
		return EmptyNotice
	}

	var sb strings.Builder

	for i, row := range display {
		if row.Position == 1 {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("🏆 ")
			sb.WriteString(row.ContentTitle)
			sb.WriteString(" (#")
			sb.WriteString(strconv.FormatInt(row.ContentID, 10))
			sb.WriteString(")\n")
		}

		sb.WriteString(strconv.Itoa(row.Position))
		sb.WriteString(". ")
		sb.WriteString(row.UserName)
		sb.WriteString(" (#")
		sb.WriteString(strconv.FormatInt(row.UserID, 10))
		sb.WriteString(") ")
		sb.WriteString(row.ScoreDisplay)
		sb.WriteString(" · ")
		sb.WriteString(row.DateDisplay)
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}
