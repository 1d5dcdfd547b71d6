package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/media"
	"github.com/johnzilla/woofstagram/internal/social"
)

type postCreatedMsg struct{ err error }

type uploadModel struct {
	path      textinput.Model
	caption   textinput.Model
	focus     int
	uploading bool
	spin      spinner.Model
}

func newUploadModel() uploadModel {
	path := textinput.New()
	path.Placeholder = "photo path or URL"
	path.CharLimit = 512
	path.Focus()

	caption := textinput.New()
	caption.Placeholder = "caption"
	caption.CharLimit = 2200

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = cursorStyle

	return uploadModel{path: path, caption: caption, spin: spin}
}

func (m uploadModel) update(a *app.App, msg tea.Msg) (uploadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case postCreatedMsg:
		m.uploading = false
		if msg.err != nil {
			return m, setStatus(msg.err.Error())
		}
		return m, tea.Batch(setStatus("photo shared"), navTo(pageFeed))
	case spinner.TickMsg:
		if !m.uploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.uploading {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.path.Focus()
				m.caption.Blur()
			} else {
				m.caption.Focus()
				m.path.Blur()
			}
			return m, textBlink()
		case "enter":
			return m.submit(a)
		case "esc":
			return m, navTo(pageFeed)
		}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	cmds = append(cmds, cmd)
	m.caption, cmd = m.caption.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m uploadModel) submit(a *app.App) (uploadModel, tea.Cmd) {
	viewer, ok := a.Auth.Current()
	if !ok {
		return m, navTo(pageLogin)
	}
	ref, err := media.Ref(m.path.Value())
	if err != nil {
		return m, setStatus(err.Error())
	}
	req := social.CreatePostRequest{
		ActorID:  viewer.ID,
		ImageURL: ref,
		Caption:  strings.TrimSpace(m.caption.Value()),
	}
	m.uploading = true
	create := func() tea.Msg {
		_, err := a.Social.CreatePost(context.Background(), req)
		return postCreatedMsg{err: err}
	}
	return m, tea.Batch(create, m.spin.Tick)
}

func (m uploadModel) view() string {
	var b strings.Builder
	b.WriteString("\n  Share a photo\n\n")
	b.WriteString("  " + m.path.View() + "\n")
	b.WriteString("  " + m.caption.View() + "\n")
	if m.uploading {
		b.WriteString("\n  " + m.spin.View() + " uploading...\n")
	} else {
		b.WriteString("\n" + faintStyle.Render("  enter share · tab next field · esc back") + "\n")
	}
	return b.String()
}
