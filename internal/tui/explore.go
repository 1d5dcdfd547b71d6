package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/store"
)

type exploreModel struct {
	search    textinput.Model
	searching bool
	users     []store.User
	trending  []store.Post
	cursor    int
}

func newExploreModel() exploreModel {
	search := textinput.New()
	search.Placeholder = "search dogs"
	search.CharLimit = 64
	return exploreModel{search: search}
}

func (m *exploreModel) reload(a *app.App) {
	m.trending = a.Feed.Trending()
	m.users = a.Feed.SearchUsers(m.search.Value())
	if m.cursor >= len(m.users) {
		m.cursor = 0
	}
}

func (m exploreModel) update(a *app.App, msg tea.Msg) (exploreModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	if m.searching {
		switch key.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			m.reload(a)
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.users = a.Feed.SearchUsers(m.search.Value())
		m.cursor = 0
		return m, cmd
	}

	switch key.String() {
	case "/", "s":
		m.searching = true
		m.search.Focus()
		return m, textBlink()
	case "j", "down":
		if m.cursor < len(m.users)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", "o":
		if len(m.users) > 0 {
			return m, showProfile(m.users[m.cursor].ID)
		}
	case "f":
		if len(m.users) == 0 {
			return m, nil
		}
		return m, toggleFollow(a, m.users[m.cursor].ID)
	}
	return m, nil
}

// toggleFollow flips the viewer's follow edge to targetID and reports
// the outcome through the status line.
func toggleFollow(a *app.App, targetID string) tea.Cmd {
	viewer, ok := a.Auth.Current()
	if !ok {
		return nil
	}
	target, ok := a.Feed.UserByID(targetID)
	if !ok {
		return nil
	}
	if contains(viewer.Following, targetID) {
		if err := a.Social.Unfollow(viewer.ID, targetID); err != nil {
			return setStatus(err.Error())
		}
		return setStatus("unfollowed @" + target.Username)
	}
	if err := a.Social.Follow(viewer.ID, targetID); err != nil {
		return setStatus(err.Error())
	}
	return setStatus("now following @" + target.Username)
}

func (m exploreModel) view(a *app.App) string {
	viewer, _ := a.Auth.Current()
	var b strings.Builder
	b.WriteString("\n  " + m.search.View() + "\n")

	if m.search.Value() != "" {
		if len(m.users) == 0 {
			b.WriteString(faintStyle.Render("\n  no dogs found\n"))
		}
		for i, u := range m.users {
			marker := "  "
			if i == m.cursor {
				marker = cursorStyle.Render("> ")
			}
			line := marker + usernameStyle.Render("@"+u.Username) + "  " + u.FullName
			if contains(viewer.Following, u.ID) {
				line += faintStyle.Render("  following")
			}
			b.WriteString("\n" + line)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("\n  Trending\n")
		for _, p := range m.trending {
			author := p.UserID
			if u, ok := a.Feed.UserByID(p.UserID); ok {
				author = u.Username
			}
			b.WriteString(fmt.Sprintf("\n  %s %s  %s",
				usernameStyle.Render("@"+author),
				p.Caption,
				faintStyle.Render(fmt.Sprintf("♥ %d", len(p.Likes)))))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + faintStyle.Render("  / search · j/k move · f follow · enter profile") + "\n")
	return b.String()
}
