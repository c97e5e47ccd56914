// Package ui holds the terminal implementations of the board's rendering
// collaborators. They replace the browser DOM/Leaflet surfaces the engine was
// designed against; the contracts are identical.
package ui

import (
	"io"
	"log/slog"
	"sync"
	"text/template"
	"time"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/feed"
	"github.com/Ravishrk124/helpnet.in/internal/service"
)

const feedTmpl = `
=== Community Feed ({{len .Items}} posts) ===
{{- range .Items}}
{{.Post.Type.Emoji}} {{title (printf "%s" .Post.Type)}} [{{.Post.Urgency}}] {{statusBadge .Status}}
  {{.Post.Text}}
  Posted by: {{.Post.Author}} • {{age .Post}} min ago
  🙋 Responders: {{responders .Post}}
  👍 {{.Post.Reactions.Helped}} ❤️ {{.Post.Reactions.Safe}} 👎 {{.Post.Reactions.Unsolved}}
{{- else}}
No posts found for this category.
{{- end}}
`

const historyTmpl = `
=== My Posts ===
{{- range .Entries}}
{{.Post.Type.Emoji}} {{title (printf "%s" .Post.Type)}} ({{.Post.Urgency}}) • {{age .Post}} min ago • {{statusBadge (status .Post)}}
  🧾 {{preview .Post.Text}}
{{- else}}
No posts yet.
{{- end}}
`

// ConsoleRenderer prints full-replacement views to a writer; repeated calls
// simply repaint.
type ConsoleRenderer struct {
	mut     sync.Mutex
	out     io.Writer
	logger  *slog.Logger
	feed    *template.Template
	history *template.Template
	now     func() time.Time
}

func NewConsoleRenderer(out io.Writer, logger *slog.Logger) (*ConsoleRenderer, error) {
	r := &ConsoleRenderer{
		out:    out,
		logger: logger,
		now:    time.Now,
	}

	funcs := template.FuncMap{
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return string(s[0]-'a'+'A') + s[1:]
		},
		"statusBadge": func(s domain.PostStatus) string {
			if s == domain.StatusExpired {
				return "🔴 Expired"
			}
			return "🟢 Active"
		},
		"status": func(p domain.Post) domain.PostStatus {
			return domain.StatusAt(p, r.now())
		},
		"age": func(p domain.Post) int {
			return domain.AgeMinutes(p, r.now())
		},
		"responders": func(p domain.Post) string {
			if len(p.Responders) == 0 {
				return "None"
			}
			out := p.Responders[0]
			for _, name := range p.Responders[1:] {
				out += ", " + name
			}
			return out
		},
		"preview": func(s string) string {
			rs := []rune(s)
			if len(rs) <= 30 {
				return s
			}
			return string(rs[:30]) + "..."
		},
	}

	var err error
	if r.feed, err = template.New("feed").Funcs(funcs).Parse(feedTmpl); err != nil {
		return nil, err
	}
	if r.history, err = template.New("history").Funcs(funcs).Parse(historyTmpl); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ConsoleRenderer) RenderFeed(items []feed.Item) {
	r.mut.Lock()
	defer r.mut.Unlock()
	if err := r.feed.Execute(r.out, map[string]any{"Items": items}); err != nil {
		r.logger.Error("feed render failed", slog.Any("error", err))
	}
}

func (r *ConsoleRenderer) RenderHistory(entries []domain.HistoryEntry) {
	r.mut.Lock()
	defer r.mut.Unlock()
	if err := r.history.Execute(r.out, map[string]any{"Entries": entries}); err != nil {
		r.logger.Error("history render failed", slog.Any("error", err))
	}
}

// UpdateStatuses refreshes only the age/status line of displayed cards. The
// console surface has no per-card regions, so the refresh is logged compactly
// instead of repainting the feed.
func (r *ConsoleRenderer) UpdateStatuses(updates []service.StatusUpdate) {
	for _, u := range updates {
		r.logger.Debug("status refresh",
			slog.String("post_id", u.ID.String()),
			slog.Int("age_min", u.AgeMinutes),
			slog.String("status", string(u.Status)),
		)
	}
}
