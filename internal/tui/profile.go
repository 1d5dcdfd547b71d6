package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
)

type profileModel struct {
	userID string
	cursor int
}

func (m *profileModel) load(a *app.App, userID string) {
	m.userID = userID
	m.cursor = 0
}

func (m profileModel) update(a *app.App, msg tea.Msg) (profileModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	posts := a.Feed.PostsByAuthor(m.userID)
	switch key.String() {
	case "j", "down":
		if m.cursor < len(posts)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "l", " ":
		if len(posts) == 0 {
			return m, nil
		}
		viewer, ok := a.Auth.Current()
		if !ok {
			return m, nil
		}
		if _, err := a.Social.ToggleLike(posts[m.cursor].ID, viewer.ID); err != nil {
			return m, setStatus(err.Error())
		}
	case "f":
		viewer, ok := a.Auth.Current()
		if !ok || viewer.ID == m.userID {
			return m, nil
		}
		return m, toggleFollow(a, m.userID)
	case "x":
		viewer, ok := a.Auth.Current()
		if !ok || viewer.ID != m.userID {
			return m, nil
		}
		a.Auth.Deauthenticate()
		return m, navTo(pageLogin)
	case "esc":
		return m, navTo(pageFeed)
	}
	return m, nil
}

func (m profileModel) view(a *app.App) string {
	user, ok := a.Feed.UserByID(m.userID)
	if !ok {
		return faintStyle.Render("\n  profile not found\n")
	}
	viewer, _ := a.Auth.Current()

	var b strings.Builder
	b.WriteString("\n  " + usernameStyle.Render("@"+user.Username) + "  " + user.FullName)
	if contains(viewer.Following, user.ID) {
		b.WriteString(faintStyle.Render("  following"))
	}
	if user.Bio != "" {
		b.WriteString("\n  " + user.Bio)
	}
	b.WriteString("\n  " + faintStyle.Render(fmt.Sprintf("%d posts · %d followers · %d following",
		len(user.Posts), len(user.Followers), len(user.Following))))
	b.WriteString("\n")

	for i, p := range a.Feed.PostsByAuthor(m.userID) {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("\n%s%s  %s", marker, p.Caption,
			faintStyle.Render(fmt.Sprintf("♥ %d 💬 %d", len(p.Likes), len(p.Comments)))))
	}

	help := "  j/k move · l like"
	if viewer.ID != user.ID {
		help += " · f follow/unfollow"
	} else {
		help += " · x sign out"
	}
	b.WriteString("\n\n" + faintStyle.Render(help+" · esc feed") + "\n")
	return b.String()
}
