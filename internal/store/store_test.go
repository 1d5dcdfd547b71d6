package store

import (
	"testing"
	"time"
)

func TestInsertPostPrependsAndPatchesAuthor(t *testing.T) {
	s := New()
	if err := s.InsertUser(User{ID: "u1", Username: "max"}); err != nil {
		t.Fatalf("insert user: %v", err)
	}

	first := Post{ID: "p1", UserID: "u1", ImageURL: "img", CreatedAt: time.Now()}
	second := Post{ID: "p2", UserID: "u1", ImageURL: "img", CreatedAt: time.Now()}
	if err := s.InsertPost(first); err != nil {
		t.Fatalf("insert post: %v", err)
	}
	if err := s.InsertPost(second); err != nil {
		t.Fatalf("insert post: %v", err)
	}

	posts := s.Posts()
	if len(posts) != 2 || posts[0].ID != "p2" || posts[1].ID != "p1" {
		t.Fatalf("expected newest-first storage order, got %v", posts)
	}

	author, ok := s.User("u1")
	if !ok {
		t.Fatalf("author missing")
	}
	if len(author.Posts) != 2 || author.Posts[0] != "p1" || author.Posts[1] != "p2" {
		t.Fatalf("unexpected author post list %v", author.Posts)
	}
}

func TestInsertPostUnknownAuthor(t *testing.T) {
	s := New()
	if err := s.InsertPost(Post{ID: "p1", UserID: "ghost"}); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(s.Posts()) != 0 {
		t.Fatalf("store must be unchanged")
	}
}

func TestInsertCommentAtomicity(t *testing.T) {
	s := New()
	if err := s.InsertComment(Comment{ID: "c1", PostID: "missing"}); err != ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if _, ok := s.Comment("c1"); ok {
		t.Fatalf("comment must not be inserted when post is missing")
	}

	_ = s.InsertUser(User{ID: "u1"})
	_ = s.InsertPost(Post{ID: "p1", UserID: "u1"})
	if err := s.InsertComment(Comment{ID: "c1", PostID: "p1", UserID: "u1", Text: "hi"}); err != nil {
		t.Fatalf("insert comment: %v", err)
	}

	post, _ := s.Post("p1")
	if len(post.Comments) != 1 || post.Comments[0] != "c1" {
		t.Fatalf("post not patched with comment id: %v", post.Comments)
	}
	if got := s.CommentsByPost("p1"); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("unexpected comments %v", got)
	}
}

func TestToggleLikeInvolution(t *testing.T) {
	s := New()
	_ = s.InsertUser(User{ID: "u1"})
	_ = s.InsertPost(Post{ID: "p1", UserID: "u1"})

	liked, err := s.ToggleLike("p1", "u1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(liked.Likes) != 1 || liked.Likes[0] != "u1" {
		t.Fatalf("expected like to be recorded, got %v", liked.Likes)
	}

	unliked, err := s.ToggleLike("p1", "u1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(unliked.Likes) != 0 {
		t.Fatalf("second toggle must remove the like, got %v", unliked.Likes)
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	s := New()
	if _, err := s.ToggleLike("nope", "u1"); err != ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestSetFollowKeepsInverseSets(t *testing.T) {
	s := New()
	_ = s.InsertUser(User{ID: "a"})
	_ = s.InsertUser(User{ID: "b"})

	if err := s.SetFollow("a", "b", true); err != nil {
		t.Fatalf("follow: %v", err)
	}
	// Idempotent.
	if err := s.SetFollow("a", "b", true); err != nil {
		t.Fatalf("follow twice: %v", err)
	}

	a, _ := s.User("a")
	b, _ := s.User("b")
	if len(a.Following) != 1 || a.Following[0] != "b" {
		t.Fatalf("unexpected following %v", a.Following)
	}
	if len(b.Followers) != 1 || b.Followers[0] != "a" {
		t.Fatalf("unexpected followers %v", b.Followers)
	}

	if err := s.SetFollow("a", "b", false); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	a, _ = s.User("a")
	b, _ = s.User("b")
	if len(a.Following) != 0 || len(b.Followers) != 0 {
		t.Fatalf("unfollow must clear both sets")
	}
}

func TestSetFollowSelf(t *testing.T) {
	s := New()
	_ = s.InsertUser(User{ID: "a"})
	if err := s.SetFollow("a", "a", true); err != ErrSelfFollow {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
	a, _ := s.User("a")
	if len(a.Following) != 0 || len(a.Followers) != 0 {
		t.Fatalf("self follow must not mutate the user")
	}
}

func TestInsertUserDuplicate(t *testing.T) {
	s := New()
	_ = s.InsertUser(User{ID: "a"})
	if err := s.InsertUser(User{ID: "a"}); err != ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLookupsByHandleAndEmail(t *testing.T) {
	s := New()
	_ = s.InsertUser(User{ID: "a", Username: "Golden_Max", Email: "Max@Example.com"})

	if _, ok := s.UserByUsername("golden_max"); !ok {
		t.Fatalf("handle lookup must be case-insensitive")
	}
	if _, ok := s.UserByEmail("max@example.com"); !ok {
		t.Fatalf("email lookup must be case-insensitive")
	}
	if _, ok := s.UserByUsername("nobody"); ok {
		t.Fatalf("unknown handle must return false")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	_ = s.InsertUser(User{ID: "a", Following: []string{"b"}})

	u, _ := s.User("a")
	u.Following[0] = "mutated"

	again, _ := s.User("a")
	if again.Following[0] != "b" {
		t.Fatalf("store state leaked to callers")
	}
}

func TestSeededDataset(t *testing.T) {
	s := Seeded()
	if len(s.Users()) != 3 {
		t.Fatalf("expected 3 seed users")
	}
	if len(s.Posts()) != 7 {
		t.Fatalf("expected 7 seed posts")
	}

	max, ok := s.UserByUsername("golden_max")
	if !ok {
		t.Fatalf("golden_max missing")
	}
	if len(max.Posts) != 3 {
		t.Fatalf("expected 3 posts for golden_max, got %v", max.Posts)
	}

	beach, ok := s.Post("1")
	if !ok {
		t.Fatalf("seed post 1 missing")
	}
	if len(beach.Comments) != 2 {
		t.Fatalf("expected 2 comments on post 1, got %v", beach.Comments)
	}

	// every follow edge must appear on both users
	for _, u := range s.Users() {
		for _, id := range u.Following {
			other, ok := s.User(id)
			if !ok {
				t.Fatalf("%s follows unknown user %s", u.Username, id)
			}
			found := false
			for _, f := range other.Followers {
				if f == u.ID {
					found = true
				}
			}
			if !found {
				t.Fatalf("%s follows %s but is not in their followers", u.Username, other.Username)
			}
		}
	}
}
