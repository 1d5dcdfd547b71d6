package social

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/johnzilla/woofstagram/internal/notify"
	"github.com/johnzilla/woofstagram/internal/store"
)

var (
	ErrEmptyComment  = errors.New("comment text required")
	ErrMissingImage  = errors.New("image required")
	ErrUploadAborted = errors.New("upload aborted")
)

// Service applies user actions directly to the entity store. There is no
// backing server, so the local state change is authoritative; every operation
// either fully succeeds or leaves the store as it was.
type Service struct {
	repo        store.Repository
	notifier    *notify.Service
	log         *logrus.Logger
	validate    *validator.Validate
	uploadDelay time.Duration
}

func NewService(repo store.Repository, notifier *notify.Service, log *logrus.Logger, uploadDelay time.Duration) *Service {
	return &Service{
		repo:        repo,
		notifier:    notifier,
		log:         log,
		validate:    validator.New(),
		uploadDelay: uploadDelay,
	}
}

// ToggleLike likes the post when the actor has not liked it yet and removes
// the like otherwise.
func (s *Service) ToggleLike(postID, actorID string) (store.Post, error) {
	post, err := s.repo.ToggleLike(postID, actorID)
	if err != nil {
		return store.Post{}, err
	}

	liked := false
	for _, id := range post.Likes {
		if id == actorID {
			liked = true
			break
		}
	}

	s.log.WithFields(logrus.Fields{
		"post":  postID,
		"actor": actorID,
		"liked": liked,
	}).Info("like toggled")

	if liked {
		s.notifier.Record(notify.Event{
			Type:        notify.TypeLike,
			ActorID:     actorID,
			RecipientID: post.UserID,
			PostID:      postID,
			CreatedAt:   time.Now(),
		})
	}
	return post, nil
}

// AddComment appends a comment to the post. Whitespace-only text is rejected
// before anything is written.
func (s *Service) AddComment(postID, actorID, text string) (store.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return store.Comment{}, ErrEmptyComment
	}

	comment := store.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    actorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.repo.InsertComment(comment); err != nil {
		return store.Comment{}, err
	}

	s.log.WithFields(logrus.Fields{
		"post":    postID,
		"actor":   actorID,
		"comment": comment.ID,
	}).Info("comment added")

	if post, ok := s.repo.Post(postID); ok {
		s.notifier.Record(notify.Event{
			Type:        notify.TypeComment,
			ActorID:     actorID,
			RecipientID: post.UserID,
			PostID:      postID,
			CreatedAt:   comment.CreatedAt,
		})
	}
	return comment, nil
}

// CreatePost runs the upload flow: validate the request, wait out the
// simulated upload, then commit the post at the front of the collection.
// A cancelled context aborts before anything is written, so a retry is safe.
func (s *Service) CreatePost(ctx context.Context, req CreatePostRequest) (store.Post, error) {
	if err := s.validate.Struct(req); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			for _, f := range fields {
				if f.Field() == "ImageURL" {
					return store.Post{}, ErrMissingImage
				}
			}
		}
		return store.Post{}, fmt.Errorf("invalid post: %w", err)
	}

	if s.uploadDelay > 0 {
		timer := time.NewTimer(s.uploadDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return store.Post{}, fmt.Errorf("%w: %w", ErrUploadAborted, ctx.Err())
		case <-timer.C:
		}
	}

	post := store.Post{
		ID:        uuid.NewString(),
		UserID:    req.ActorID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		Likes:     []string{},
		Comments:  []string{},
		CreatedAt: time.Now(),
	}
	if err := s.repo.InsertPost(post); err != nil {
		return store.Post{}, err
	}

	s.log.WithFields(logrus.Fields{
		"post":  post.ID,
		"actor": req.ActorID,
	}).Info("post created")
	return post, nil
}

// Follow records the directed edge and notifies the followed user.
func (s *Service) Follow(actorID, targetID string) error {
	if err := s.repo.SetFollow(actorID, targetID, true); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"actor": actorID, "target": targetID}).Info("followed")
	s.notifier.Record(notify.Event{
		Type:        notify.TypeFollow,
		ActorID:     actorID,
		RecipientID: targetID,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (s *Service) Unfollow(actorID, targetID string) error {
	if err := s.repo.SetFollow(actorID, targetID, false); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"actor": actorID, "target": targetID}).Info("unfollowed")
	return nil
}
