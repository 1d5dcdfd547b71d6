package feed

import (
	"sort"
	"strings"

	"github.com/johnzilla/woofstagram/internal/store"
)

// Service derives read-only views from the entity store. Every method is
// side-effect-free: calling twice against an unchanged store yields
// identical results.
type Service struct {
	repo store.Repository
}

func NewService(repo store.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) UserByID(id string) (store.User, bool) {
	return s.repo.User(id)
}

func (s *Service) UserByUsername(username string) (store.User, bool) {
	return s.repo.UserByUsername(username)
}

func (s *Service) PostByID(id string) (store.Post, bool) {
	return s.repo.Post(id)
}

// FeedFor returns the posts authored by userID or anyone they follow, newest
// first. Ties on the timestamp keep store insertion order. An unknown user
// gets an empty feed.
func (s *Service) FeedFor(userID string) []store.Post {
	user, ok := s.repo.User(userID)
	if !ok {
		return nil
	}

	relevant := map[string]struct{}{userID: {}}
	for _, id := range user.Following {
		relevant[id] = struct{}{}
	}

	var posts []store.Post
	for _, p := range s.repo.Posts() {
		if _, ok := relevant[p.UserID]; ok {
			posts = append(posts, p)
		}
	}
	return sortNewestFirst(posts)
}

func (s *Service) PostsByAuthor(userID string) []store.Post {
	var posts []store.Post
	for _, p := range s.repo.Posts() {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return sortNewestFirst(posts)
}

// CommentsForPost returns the post's comments oldest first, the natural
// reading order of a thread. Note the deliberate asymmetry with feed order.
func (s *Service) CommentsForPost(postID string) []store.Comment {
	comments := s.repo.CommentsByPost(postID)
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}

// RankedByPopularity stably sorts posts by like count descending; ties keep
// their original relative order.
func RankedByPopularity(posts []store.Post) []store.Post {
	ranked := append([]store.Post(nil), posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Likes) > len(ranked[j].Likes)
	})
	return ranked
}

// Trending returns every post ranked by popularity.
func (s *Service) Trending() []store.Post {
	return RankedByPopularity(s.repo.Posts())
}

// SearchUsers matches the query as a case-insensitive substring of the
// username or full name.
func (s *Service) SearchUsers(query string) []store.User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var users []store.User
	for _, u := range s.repo.Users() {
		if strings.Contains(strings.ToLower(u.Username), query) ||
			strings.Contains(strings.ToLower(u.FullName), query) {
			users = append(users, u)
		}
	}
	return users
}

func sortNewestFirst(posts []store.Post) []store.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}
