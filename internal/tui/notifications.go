package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/notify"
)

type notificationsModel struct {
	items  []notify.Notification
	cursor int
}

func (m *notificationsModel) reload(a *app.App) {
	viewer, ok := a.Auth.Current()
	if !ok {
		m.items = nil
		return
	}
	m.items = a.Notify.For(viewer.ID)
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

func (m notificationsModel) update(a *app.App, msg tea.Msg) (notificationsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", "r":
		if len(m.items) == 0 {
			return m, nil
		}
		viewer, _ := a.Auth.Current()
		a.Notify.MarkRead(viewer.ID, m.items[m.cursor].ID)
		m.reload(a)
	case "a":
		viewer, ok := a.Auth.Current()
		if !ok {
			return m, nil
		}
		a.Notify.MarkAllRead(viewer.ID)
		m.reload(a)
	case "o":
		if len(m.items) == 0 {
			return m, nil
		}
		return m, showProfile(m.items[m.cursor].ActorID)
	}
	return m, nil
}

func (m notificationsModel) view(a *app.App) string {
	if len(m.items) == 0 {
		return faintStyle.Render("\n  No activity yet.\n")
	}
	var b strings.Builder
	for i, n := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		line := describeNotification(a, n)
		if !n.Read {
			line = unreadStyle.Render("● ") + line
		} else {
			line = faintStyle.Render("○ ") + line
		}
		b.WriteString("\n" + marker + line)
	}
	b.WriteString("\n\n" + faintStyle.Render("  j/k move · r mark read · a mark all read · o actor") + "\n")
	return b.String()
}

func describeNotification(a *app.App, n notify.Notification) string {
	actor := n.ActorID
	if u, ok := a.Feed.UserByID(n.ActorID); ok {
		actor = "@" + u.Username
	}
	actor = usernameStyle.Render(actor)
	switch n.Type {
	case notify.TypeLike:
		return actor + " liked your photo"
	case notify.TypeComment:
		return actor + " commented on your photo"
	case notify.TypeFollow:
		return actor + " started following you"
	}
	return actor + " did something"
}
