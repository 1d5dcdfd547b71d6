package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/store"
)

type feedModel struct {
	posts      []store.Post
	cursor     int
	commenting bool
	comment    textinput.Model
}

func (m *feedModel) reload(a *app.App) {
	viewer, ok := a.Auth.Current()
	if !ok {
		m.posts = nil
		return
	}
	m.posts = a.Feed.FeedFor(viewer.ID)
	if m.cursor >= len(m.posts) {
		m.cursor = 0
	}
}

func (m feedModel) update(a *app.App, msg tea.Msg) (feedModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.commenting {
			var cmd tea.Cmd
			m.comment, cmd = m.comment.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.commenting {
		switch key.String() {
		case "esc":
			m.commenting = false
			return m, nil
		case "enter":
			viewer, _ := a.Auth.Current()
			post := m.posts[m.cursor]
			if _, err := a.Social.AddComment(post.ID, viewer.ID, m.comment.Value()); err != nil {
				return m, setStatus(err.Error())
			}
			m.commenting = false
			m.reload(a)
			return m, setStatus("comment posted")
		}
		var cmd tea.Cmd
		m.comment, cmd = m.comment.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", " ":
		if len(m.posts) == 0 {
			return m, nil
		}
		viewer, _ := a.Auth.Current()
		if _, err := a.Social.ToggleLike(m.posts[m.cursor].ID, viewer.ID); err != nil {
			return m, setStatus(err.Error())
		}
		m.reload(a)
	case "c":
		if len(m.posts) == 0 {
			return m, nil
		}
		m.commenting = true
		m.comment = textinput.New()
		m.comment.Placeholder = "add a comment"
		m.comment.CharLimit = 500
		m.comment.Focus()
		return m, textBlink()
	case "o", "enter":
		if len(m.posts) == 0 {
			return m, nil
		}
		return m, showProfile(m.posts[m.cursor].UserID)
	}
	return m, nil
}

func (m feedModel) view(a *app.App) string {
	if len(m.posts) == 0 {
		return faintStyle.Render("\n  Your feed is empty. Follow some dogs on the Explore page.\n")
	}
	viewer, _ := a.Auth.Current()
	var b strings.Builder
	for i, p := range m.posts {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString("\n" + marker + renderPost(a, p, viewer.ID))
	}
	if m.commenting {
		b.WriteString("\n\n  " + m.comment.View() + "\n")
		b.WriteString(faintStyle.Render("  enter post · esc cancel"))
	} else {
		b.WriteString("\n\n" + faintStyle.Render("  j/k move · l like · c comment · o author · q quit"))
	}
	return b.String() + "\n"
}

func renderPost(a *app.App, p store.Post, viewerID string) string {
	author := "unknown"
	if u, ok := a.Feed.UserByID(p.UserID); ok {
		author = u.Username
	}
	likes := fmt.Sprintf("♥ %d", len(p.Likes))
	if contains(p.Likes, viewerID) {
		likes = likedStyle.Render(likes)
	} else {
		likes = faintStyle.Render(likes)
	}
	var b strings.Builder
	b.WriteString(usernameStyle.Render("@"+author) + "  " + faintStyle.Render(p.CreatedAt.Format("Jan 2 15:04")))
	b.WriteString("\n    " + p.Caption)
	b.WriteString("\n    " + likes + faintStyle.Render(fmt.Sprintf("  💬 %d", len(p.Comments))))
	for _, c := range a.Feed.CommentsForPost(p.ID) {
		name := c.UserID
		if u, ok := a.Feed.UserByID(c.UserID); ok {
			name = u.Username
		}
		b.WriteString("\n      " + usernameStyle.Render(name) + " " + c.Text)
	}
	b.WriteString("\n")
	return b.String()
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
