package store

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")
	ErrUserExists   = errors.New("user already exists")
	ErrSelfFollow   = errors.New("cannot follow yourself")
)

// Repository represents the minimal entity operations used by services.
// Both *Store and test fakes satisfy this interface.
type Repository interface {
	User(id string) (User, bool)
	UserByUsername(username string) (User, bool)
	UserByEmail(email string) (User, bool)
	Users() []User
	Post(id string) (Post, bool)
	Posts() []Post
	Comment(id string) (Comment, bool)
	CommentsByPost(postID string) []Comment
	InsertUser(u User) error
	InsertPost(p Post) error
	InsertComment(c Comment) error
	ToggleLike(postID, userID string) (Post, error)
	SetFollow(followerID, followedID string, follow bool) error
}

// Store holds all entities in memory. Multi-record writes happen under a
// single lock so callers never observe a partial write.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*User
	posts    map[string]*Post
	comments map[string]*Comment

	// postOrder is newest-inserted-first; userOrder and commentOrder are
	// insertion order.
	postOrder    []string
	userOrder    []string
	commentOrder []string
}

func New() *Store {
	return &Store{
		users:    map[string]*User{},
		posts:    map[string]*Post{},
		comments: map[string]*Comment{},
	}
}

func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	return cloneUser(u), true
}

func (s *Store) UserByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		u := s.users[id]
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), true
		}
	}
	return User{}, false
}

func (s *Store) UserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		u := s.users[id]
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), true
		}
	}
	return User{}, false
}

func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, cloneUser(s.users[id]))
	}
	return users
}

func (s *Store) Post(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return Post{}, false
	}
	return clonePost(p), true
}

func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		posts = append(posts, clonePost(s.posts[id]))
	}
	return posts
}

func (s *Store) Comment(id string) (Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return Comment{}, false
	}
	return *c, true
}

func (s *Store) CommentsByPost(postID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var comments []Comment
	for _, id := range s.commentOrder {
		c := s.comments[id]
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments
}

func (s *Store) InsertUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return ErrUserExists
	}
	stored := cloneUser(&u)
	s.users[u.ID] = &stored
	s.userOrder = append(s.userOrder, u.ID)
	return nil
}

// InsertPost prepends the post to the global collection and appends its id to
// the author's post list. Both writes happen or neither does.
func (s *Store) InsertPost(p Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.users[p.UserID]
	if !ok {
		return ErrUserNotFound
	}
	stored := clonePost(&p)
	s.posts[p.ID] = &stored
	s.postOrder = append([]string{p.ID}, s.postOrder...)
	author.Posts = append(author.Posts, p.ID)
	return nil
}

// InsertComment stages the comment record and the parent post patch as one
// critical section; a missing post leaves both collections untouched.
func (s *Store) InsertComment(c Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[c.PostID]
	if !ok {
		return ErrPostNotFound
	}
	s.comments[c.ID] = &c
	s.commentOrder = append(s.commentOrder, c.ID)
	post.Comments = append(post.Comments, c.ID)
	return nil
}

// ToggleLike removes userID from the post's likes when present and appends it
// otherwise. Applying it twice restores the original membership.
func (s *Store) ToggleLike(postID, userID string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	if contains(post.Likes, userID) {
		post.Likes = without(post.Likes, userID)
	} else {
		post.Likes = append(post.Likes, userID)
	}
	return clonePost(post), nil
}

// SetFollow updates the follower's following list and the followed user's
// followers list together, keeping the two directed sets mutual inverses.
// It is idempotent in both directions.
func (s *Store) SetFollow(followerID, followedID string, follow bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if followerID == followedID {
		return ErrSelfFollow
	}
	follower, ok := s.users[followerID]
	if !ok {
		return ErrUserNotFound
	}
	followed, ok := s.users[followedID]
	if !ok {
		return ErrUserNotFound
	}

	if follow {
		if !contains(follower.Following, followedID) {
			follower.Following = append(follower.Following, followedID)
		}
		if !contains(followed.Followers, followerID) {
			followed.Followers = append(followed.Followers, followerID)
		}
	} else {
		follower.Following = without(follower.Following, followedID)
		followed.Followers = without(followed.Followers, followerID)
	}
	return nil
}

func cloneUser(u *User) User {
	c := *u
	c.Followers = append([]string(nil), u.Followers...)
	c.Following = append([]string(nil), u.Following...)
	c.Posts = append([]string(nil), u.Posts...)
	return c
}

func clonePost(p *Post) Post {
	c := *p
	c.Likes = append([]string(nil), p.Likes...)
	c.Comments = append([]string(nil), p.Comments...)
	return c
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
