package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
	"github.com/johnzilla/woofstagram/internal/config"
	"github.com/johnzilla/woofstagram/internal/notify"
)

func testApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(config.Config{
		DataDir:       t.TempDir(),
		SessionSecret: "test-secret",
		UploadDelay:   0,
		LogLevel:      "debug",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func signIn(t *testing.T, a *app.App) {
	t.Helper()
	if _, err := a.Auth.Authenticate("max@example.com", "pw"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
}

func keyPress(m Model, key string) (Model, tea.Cmd) {
	var msg tea.Msg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runCmd executes a command but gives up on ones still blocked on the
// hub, so a fresh listen never stalls the test loop.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// drain runs a command and feeds application-level messages back into
// the model, the way the runtime's event loop would. Cursor blink and
// spinner ticks are dropped since they reschedule themselves forever.
func drain(m Model, cmd tea.Cmd) Model {
	for cmd != nil {
		msg := runCmd(cmd)
		if msg == nil {
			return m
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				m = drain(m, c)
			}
			return m
		}
		switch msg.(type) {
		case navMsg, statusMsg, postCreatedMsg:
			var next tea.Model
			next, cmd = m.Update(msg)
			m = next.(Model)
		default:
			return m
		}
	}
	return m
}

func TestStartsOnLoginWhenAnonymous(t *testing.T) {
	m := NewModel(testApp(t))
	if m.page != pageLogin {
		t.Fatalf("expected login page, got %v", m.page)
	}
}

func TestStartsOnFeedWhenAuthenticated(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)
	if m.page != pageFeed {
		t.Fatalf("expected feed page, got %v", m.page)
	}
	if len(m.feed.posts) == 0 {
		t.Fatalf("expected seeded feed posts")
	}
}

func TestLoginSubmitNavigatesToFeed(t *testing.T) {
	m := NewModel(testApp(t))
	m.login.inputs[0].SetValue("max@example.com")
	m.login.inputs[1].SetValue("pw")

	next, cmd := keyPress(m, "enter")
	next = drain(next, cmd)
	if next.page != pageFeed {
		t.Fatalf("expected feed after sign in, got %v", next.page)
	}
	if next.client == nil {
		t.Fatalf("expected a hub client after sign in")
	}
}

func TestLoginShowsErrorOnBadCredentials(t *testing.T) {
	m := NewModel(testApp(t))
	m.login.inputs[0].SetValue("nobody@example.com")
	m.login.inputs[1].SetValue("pw")

	next, cmd := keyPress(m, "enter")
	next = drain(next, cmd)
	if next.page != pageLogin {
		t.Fatalf("expected to stay on login page")
	}
	if next.login.errMsg == "" {
		t.Fatalf("expected an error message")
	}
}

func TestTabKeysSwitchPages(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)

	for _, tc := range []struct {
		key  string
		want page
	}{
		{"2", pageExplore},
		{"4", pageNotifications},
		{"5", pageProfile},
		{"1", pageFeed},
	} {
		next, cmd := keyPress(m, tc.key)
		m = drain(next, cmd)
		if m.page != tc.want {
			t.Fatalf("key %q: expected page %v, got %v", tc.key, tc.want, m.page)
		}
	}
}

func TestFeedLikeTogglesStore(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)

	postID := m.feed.posts[0].ID
	before, _ := a.Feed.PostByID(postID)

	next, cmd := keyPress(m, "l")
	m = drain(next, cmd)
	after, _ := a.Feed.PostByID(postID)
	if len(after.Likes) == len(before.Likes) {
		t.Fatalf("expected like toggle to change like count")
	}
	if len(m.feed.posts[0].Likes) != len(after.Likes) {
		t.Fatalf("expected view to re-render from store")
	}
}

func TestFeedCommentFlow(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)

	postID := m.feed.posts[0].ID
	before := len(a.Feed.CommentsForPost(postID))

	next, cmd := keyPress(m, "c")
	m = drain(next, cmd)
	if !m.feed.commenting {
		t.Fatalf("expected comment input to open")
	}
	m.feed.comment.SetValue("what a good dog")
	next, cmd = keyPress(m, "enter")
	m = drain(next, cmd)

	comments := a.Feed.CommentsForPost(postID)
	if len(comments) != before+1 {
		t.Fatalf("expected %d comments, got %d", before+1, len(comments))
	}
	if comments[len(comments)-1].Text != "what a good dog" {
		t.Fatalf("unexpected comment text %q", comments[len(comments)-1].Text)
	}
}

func TestCommentInputOwnsShortcutKeys(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)

	next, cmd := keyPress(m, "c")
	m = drain(next, cmd)
	next, cmd = keyPress(m, "2")
	m = drain(next, cmd)
	if m.page != pageFeed {
		t.Fatalf("typed digit must go to the input, not switch pages")
	}
	if m.feed.comment.Value() != "2" {
		t.Fatalf("expected input to capture the rune, got %q", m.feed.comment.Value())
	}
}

func TestNotificationsMarkAllRead(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	viewer, _ := a.Auth.Current()

	// corgi_cooper likes the viewer's oldest post, which they haven't liked yet
	posts := a.Feed.PostsByAuthor(viewer.ID)
	if _, err := a.Social.ToggleLike(posts[len(posts)-1].ID, "2"); err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if a.Notify.Unread(viewer.ID) == 0 {
		t.Fatalf("expected an unread notification")
	}

	m := NewModel(a)
	next, cmd := keyPress(m, "4")
	m = drain(next, cmd)
	next, cmd = keyPress(m, "a")
	m = drain(next, cmd)

	if got := a.Notify.Unread(viewer.ID); got != 0 {
		t.Fatalf("expected 0 unread, got %d", got)
	}
	if len(m.notifications.items) == 0 || !m.notifications.items[0].Read {
		t.Fatalf("expected rendered items marked read")
	}
}

func TestLiveEventReachesSignedInClient(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)
	if m.client == nil {
		t.Fatalf("expected a registered hub client")
	}

	viewer, _ := a.Auth.Current()
	posts := a.Feed.PostsByAuthor(viewer.ID)
	if _, err := a.Social.ToggleLike(posts[len(posts)-1].ID, "2"); err != nil {
		t.Fatalf("toggle like: %v", err)
	}

	msg := listen(m.client)()
	ev, ok := msg.(activityMsg)
	if !ok {
		t.Fatalf("expected a live event, got %T", msg)
	}
	if ev.event.Type != notify.TypeLike {
		t.Fatalf("expected a like event, got %v", ev.event.Type)
	}

	next, cmd := m.Update(msg)
	m = next.(Model)
	if m.status == "" {
		t.Fatalf("expected a status toast for the live event")
	}
	if cmd == nil {
		t.Fatalf("expected the model to keep listening")
	}
}

func TestLiveEventRefreshesOpenActivityPage(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)

	next, cmd := keyPress(m, "4")
	m = drain(next, cmd)
	if len(m.notifications.items) != 0 {
		t.Fatalf("expected an empty activity page")
	}

	viewer, _ := a.Auth.Current()
	posts := a.Feed.PostsByAuthor(viewer.ID)
	if _, err := a.Social.ToggleLike(posts[len(posts)-1].ID, "2"); err != nil {
		t.Fatalf("toggle like: %v", err)
	}

	updated, _ := m.Update(listen(m.client)())
	m = updated.(Model)
	if len(m.notifications.items) != 1 {
		t.Fatalf("expected the open activity page to refresh, got %d items", len(m.notifications.items))
	}
}

func TestActivityTabShowsUnreadBadge(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	viewer, _ := a.Auth.Current()
	posts := a.Feed.PostsByAuthor(viewer.ID)
	if _, err := a.Social.ToggleLike(posts[len(posts)-1].ID, "2"); err != nil {
		t.Fatalf("toggle like: %v", err)
	}

	m := NewModel(a)
	if !strings.Contains(m.header(), "(1)") {
		t.Fatalf("expected an unread badge on the activity tab")
	}

	a.Notify.MarkAllRead(viewer.ID)
	if strings.Contains(m.header(), "(1)") {
		t.Fatalf("expected the badge to clear once everything is read")
	}
}

func TestProfileSignOutReturnsToLogin(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	m := NewModel(a)
	oldClient := m.client
	if oldClient == nil {
		t.Fatalf("expected a hub client while signed in")
	}

	next, cmd := keyPress(m, "5")
	m = drain(next, cmd)
	next, cmd = keyPress(m, "x")
	m = drain(next, cmd)

	if m.page != pageLogin {
		t.Fatalf("expected login page after sign out, got %v", m.page)
	}
	if _, ok := a.Auth.Current(); ok {
		t.Fatalf("expected anonymous session")
	}
	if m.client != nil {
		t.Fatalf("expected the hub client to be released")
	}
	if msg := listen(oldClient)(); msg != nil {
		t.Fatalf("expected the old client channel closed, got %v", msg)
	}
}

func TestUploadCreatesPost(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	viewer, _ := a.Auth.Current()
	before := len(a.Feed.PostsByAuthor(viewer.ID))

	m := NewModel(a)
	next, cmd := keyPress(m, "3")
	m = drain(next, cmd)
	m.upload.path.SetValue("https://images.example.com/dog.jpg")

	next, cmd = keyPress(m, "tab")
	m = drain(next, cmd)
	m.upload.caption.SetValue("beach day")

	next, cmd = keyPress(m, "enter")
	m = drain(next, cmd)

	posts := a.Feed.PostsByAuthor(viewer.ID)
	if len(posts) != before+1 {
		t.Fatalf("expected %d posts, got %d", before+1, len(posts))
	}
	if posts[0].Caption != "beach day" {
		t.Fatalf("expected newest post first, got %q", posts[0].Caption)
	}
	if m.page != pageFeed {
		t.Fatalf("expected to land on feed after sharing, got %v", m.page)
	}
}

func TestUploadRejectsNonImagePath(t *testing.T) {
	a := testApp(t)
	signIn(t, a)
	viewer, _ := a.Auth.Current()
	before := len(a.Feed.PostsByAuthor(viewer.ID))

	m := NewModel(a)
	next, cmd := keyPress(m, "3")
	m = drain(next, cmd)
	m.upload.path.SetValue("/tmp/notes.txt")

	next, cmd = keyPress(m, "enter")
	m = drain(next, cmd)

	if got := len(a.Feed.PostsByAuthor(viewer.ID)); got != before {
		t.Fatalf("expected no new post, got %d", got)
	}
	if m.status == "" {
		t.Fatalf("expected an error in the status line")
	}
}
