package notify

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service records notifications per recipient and pushes them to live hub
// clients. Newest notifications come first.
type Service struct {
	hub *Hub
	log *logrus.Logger

	mu     sync.RWMutex
	byUser map[string][]Notification
}

func NewService(hub *Hub, log *logrus.Logger) *Service {
	return &Service{
		hub:    hub,
		log:    log,
		byUser: map[string][]Notification{},
	}
}

func (s *Service) Hub() *Hub {
	return s.hub
}

// Record stores the event for its recipient. Actions on your own content are
// dropped.
func (s *Service) Record(e Event) {
	if e.RecipientID == "" || e.ActorID == e.RecipientID {
		return
	}

	n := Notification{
		ID:        uuid.NewString(),
		Type:      e.Type,
		ActorID:   e.ActorID,
		PostID:    e.PostID,
		CreatedAt: e.CreatedAt,
	}

	s.mu.Lock()
	s.byUser[e.RecipientID] = append([]Notification{n}, s.byUser[e.RecipientID]...)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"type":      e.Type,
		"actor":     e.ActorID,
		"recipient": e.RecipientID,
	}).Debug("notification recorded")

	s.hub.Broadcast(e.RecipientID, e)
}

func (s *Service) For(userID string) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification(nil), s.byUser[userID]...)
}

func (s *Service) Unread(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.byUser[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *Service) MarkRead(userID, notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.byUser[userID] {
		if n.ID == notificationID {
			s.byUser[userID][i].Read = true
			return
		}
	}
}

func (s *Service) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.byUser[userID] {
		s.byUser[userID][i].Read = true
	}
}
