// Package ui is the terminal feed browser.
package ui

import (
	"fmt"
	"strings"

	"lumina/internal/auth"
	"lumina/internal/content"
	"lumina/internal/feed"
	"lumina/internal/i18n"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Liker is satisfied by *content.Store.
type Liker interface {
	Like(id string, kind content.Kind) bool
}

// loadedMsg arrives when a load-more has been applied or dropped.
type loadedMsg struct{}

// Browser is the root Bubble Tea model. It reads everything through the
// pager and never caches items between renders.
type Browser struct {
	pager   *feed.Pager
	liker   Liker
	gate    *auth.Gate // nil means anonymous
	t       i18n.Translator
	spinner spinner.Model

	page   feed.Page
	cursor int
	status string
}

func NewBrowser(p *feed.Pager, liker Liker, gate *auth.Gate, t i18n.Translator) Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = activeTab

	b := Browser{pager: p, liker: liker, gate: gate, t: t, spinner: sp}
	b.page = p.Page()
	return b
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)

	case loadedMsg:
		b.page = b.pager.Page()
		return b, nil

	case spinner.TickMsg:
		if b.page.State != feed.Loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		b.pager.Close()
		return b, tea.Quit

	case "tab":
		b.pager.SetFilter(b.page.Filter.Next())
		b.cursor = 0
		b.page = b.pager.Page()
		return b, nil

	case "down", "j":
		if b.cursor < len(b.page.Items)-1 {
			b.cursor++
		}
		return b, nil

	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
		return b, nil

	case "m":
		done, ok := b.pager.LoadMore()
		if !ok {
			return b, nil
		}
		b.page = b.pager.Page()
		return b, tea.Batch(b.spinner.Tick, waitLoaded(done))

	case "l":
		return b.like(), nil
	}
	return b, nil
}

func (b Browser) like() Browser {
	if len(b.page.Items) == 0 {
		return b
	}
	if !b.signedIn() {
		b.status = b.t.T("Sign in to like")
		return b
	}

	it := b.page.Items[b.cursor]
	if b.liker.Like(it.ID(), it.Kind) {
		b.status = fmt.Sprintf("liked %q", it.Title())
	}
	b.page = b.pager.Page()
	return b
}

func (b Browser) signedIn() bool {
	if b.gate == nil {
		return false
	}
	_, ok := b.gate.CurrentUser()
	return ok
}

func waitLoaded(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return loadedMsg{}
	}
}

func (b Browser) View() string {
	var sb strings.Builder

	tabs := make([]string, 0, len(feed.Filters))
	for _, f := range feed.Filters {
		label := b.t.T(string(f))
		if f == b.page.Filter {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabs, " "))
	sb.WriteString("\n\n")

	if len(b.page.Items) == 0 {
		sb.WriteString(normalItem.Render(b.t.T("No content found here yet.")))
		sb.WriteString("\n")
	}
	for i, it := range b.page.Items {
		line := fmt.Sprintf("%s %s  %s  ♥ %d",
			kindBadge.Render(string(it.Kind)),
			truncate(it.Title(), 60),
			dateText.Render(it.DateLabel()),
			it.Likes(),
		)
		if i == b.cursor {
			sb.WriteString(selectedItem.Render(line))
		} else {
			sb.WriteString(normalItem.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	footer := fmt.Sprintf("%d/%d", len(b.page.Items), b.page.Total)
	switch {
	case b.page.State == feed.Loading:
		footer += " " + b.spinner.View()
	case b.page.HasMore:
		footer += "  m: more"
	}
	if b.status != "" {
		footer += "  " + b.status
	}
	sb.WriteString(statusBar.Render(footer))
	sb.WriteString("\n")
	sb.WriteString(helpText.Render("tab filter · ↑/↓ move · l like · q quit"))
	return sb.String()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
