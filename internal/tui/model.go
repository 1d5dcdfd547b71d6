package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/notify"
)

type page int

const (
	pageLogin page = iota
	pageFeed
	pageExplore
	pageUpload
	pageNotifications
	pageProfile
)

var tabs = []struct {
	page  page
	label string
	key   string
}{
	{pageFeed, "Feed", "1"},
	{pageExplore, "Explore", "2"},
	{pageUpload, "Upload", "3"},
	{pageNotifications, "Activity", "4"},
	{pageProfile, "Profile", "5"},
}

// navMsg asks the root model to switch pages. An empty userID on
// pageProfile means the signed-in user's own profile.
type navMsg struct {
	page   page
	userID string
}

type statusMsg string

// activityMsg carries a live hub event for the signed-in user.
type activityMsg struct {
	event notify.Event
}

// listen blocks on the client's event channel until the hub pushes the
// next event or the client is unregistered.
func listen(c *notify.Client) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-c.Events
		if !ok {
			return nil
		}
		return activityMsg{event: e}
	}
}

func navTo(p page) tea.Cmd {
	return func() tea.Msg { return navMsg{page: p} }
}

func showProfile(userID string) tea.Cmd {
	return func() tea.Msg { return navMsg{page: pageProfile, userID: userID} }
}

func setStatus(s string) tea.Cmd {
	return func() tea.Msg { return statusMsg(s) }
}

type Model struct {
	app    *app.App
	page   page
	width  int
	status string
	client *notify.Client

	login         loginModel
	feed          feedModel
	explore       exploreModel
	upload        uploadModel
	notifications notificationsModel
	profile       profileModel
}

func NewModel(a *app.App) Model {
	m := Model{
		app:     a,
		page:    pageLogin,
		login:   newLoginModel(),
		explore: newExploreModel(),
		upload:  newUploadModel(),
	}
	if u, ok := a.Auth.Current(); ok {
		m.page = pageFeed
		m.feed.reload(a)
		m.client = a.Notify.Hub().Register(u.ID)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textBlink(), tea.SetWindowTitle("Woofstagram")}
	if m.client != nil {
		cmds = append(cmds, listen(m.client))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case activityMsg:
		m.status = describeNotification(m.app, notify.Notification{
			Type:    msg.event.Type,
			ActorID: msg.event.ActorID,
		})
		switch m.page {
		case pageNotifications:
			m.notifications.reload(m.app)
		case pageFeed:
			m.feed.reload(m.app)
		}
		if m.client == nil {
			return m, nil
		}
		return m, listen(m.client)
	case navMsg:
		return m.navigate(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.page != pageLogin && !m.editing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			default:
				for _, t := range tabs {
					if msg.String() == t.key {
						return m.navigate(navMsg{page: t.page})
					}
				}
			}
		}
	}
	return m.updatePage(msg)
}

func (m Model) navigate(msg navMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.page = msg.page
	var cmd tea.Cmd
	switch msg.page {
	case pageLogin:
		if m.client != nil {
			m.app.Notify.Hub().Unregister(m.client)
			m.client = nil
		}
		m.login = newLoginModel()
		cmd = textBlink()
	case pageFeed:
		if m.client == nil {
			if u, ok := m.app.Auth.Current(); ok {
				m.client = m.app.Notify.Hub().Register(u.ID)
				cmd = listen(m.client)
			}
		}
		m.feed.reload(m.app)
	case pageExplore:
		m.explore.reload(m.app)
	case pageUpload:
		m.upload = newUploadModel()
		cmd = textBlink()
	case pageNotifications:
		m.notifications.reload(m.app)
	case pageProfile:
		id := msg.userID
		if id == "" {
			if u, ok := m.app.Auth.Current(); ok {
				id = u.ID
			}
		}
		m.profile.load(m.app, id)
	}
	return m, cmd
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageLogin:
		m.login, cmd = m.login.update(m.app, msg)
	case pageFeed:
		m.feed, cmd = m.feed.update(m.app, msg)
	case pageExplore:
		m.explore, cmd = m.explore.update(m.app, msg)
	case pageUpload:
		m.upload, cmd = m.upload.update(m.app, msg)
	case pageNotifications:
		m.notifications, cmd = m.notifications.update(m.app, msg)
	case pageProfile:
		m.profile, cmd = m.profile.update(m.app, msg)
	}
	return m, cmd
}

// editing reports whether the active page currently owns the keyboard,
// so single-letter shortcuts must not steal typed characters.
func (m Model) editing() bool {
	switch m.page {
	case pageFeed:
		return m.feed.commenting
	case pageExplore:
		return m.explore.searching
	case pageUpload:
		return true
	}
	return false
}

func (m Model) View() string {
	if m.page == pageLogin {
		return m.login.view() + m.statusLine()
	}
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	switch m.page {
	case pageFeed:
		b.WriteString(m.feed.view(m.app))
	case pageExplore:
		b.WriteString(m.explore.view(m.app))
	case pageUpload:
		b.WriteString(m.upload.view())
	case pageNotifications:
		b.WriteString(m.notifications.view(m.app))
	case pageProfile:
		b.WriteString(m.profile.view(m.app))
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) header() string {
	viewer, _ := m.app.Auth.Current()
	parts := []string{titleStyle.Render("🐾 Woofstagram")}
	for _, t := range tabs {
		style := tabStyle
		if t.page == m.page {
			style = activeTabStyle
		}
		label := t.label
		if t.page == pageNotifications {
			if unread := m.app.Notify.Unread(viewer.ID); unread > 0 {
				label += unreadStyle.Render(fmt.Sprintf(" (%d)", unread))
			}
		}
		parts = append(parts, style.Render(t.key+" "+label))
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return "\n" + statusStyle.Render(m.status)
}
