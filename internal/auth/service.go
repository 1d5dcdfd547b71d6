package auth

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnzilla/woofstagram/internal/db"
	"github.com/johnzilla/woofstagram/internal/store"
)

const sessionTTL = 30 * 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
)

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service is the session state machine: Anonymous until Authenticate,
// Register, or Restore succeeds, Anonymous again after Deauthenticate.
// At most one current actor exists at a time.
type Service struct {
	secret   []byte
	repo     store.Repository
	sessions *db.SessionStore
	verifier CredentialVerifier
	validate *validator.Validate
	log      *logrus.Logger

	mu      sync.Mutex
	current *store.User
}

func NewService(secret string, repo store.Repository, sessions *db.SessionStore, verifier CredentialVerifier, log *logrus.Logger) *Service {
	if verifier == nil {
		verifier = AcceptAnyVerifier{}
	}
	return &Service{
		secret:   []byte(secret),
		repo:     repo,
		sessions: sessions,
		verifier: verifier,
		validate: validator.New(),
		log:      log,
	}
}

// Authenticate matches the email case-insensitively and defers the secret
// check to the configured verifier. Failure leaves the session Anonymous.
func (s *Service) Authenticate(email, secret string) (store.User, error) {
	user, ok := s.repo.UserByEmail(email)
	if !ok {
		s.log.WithField("email", email).Warn("login failed: unknown email")
		return store.User{}, ErrInvalidCredentials
	}
	if err := s.verifier.Verify(user, secret); err != nil {
		s.log.WithField("user", user.ID).Warn("login failed: credential check")
		return store.User{}, err
	}

	s.persist(user)
	s.setCurrent(user)
	s.log.WithField("user", user.ID).Info("authenticated")
	return user, nil
}

// Register creates a fresh user once the handle and email are confirmed
// unique (case-insensitive). A duplicate leaves the store untouched.
func (s *Service) Register(req RegisterRequest) (store.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return store.User{}, fmt.Errorf("invalid registration: %w", err)
	}
	if _, ok := s.repo.UserByUsername(req.Username); ok {
		return store.User{}, ErrUsernameTaken
	}
	if _, ok := s.repo.UserByEmail(req.Email); ok {
		return store.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, err
	}

	user := store.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.Username,
		AvatarURL:    fmt.Sprintf("https://i.pravatar.cc/300?img=%d", rand.Intn(70)),
		Bio:          "Dog lover",
		Followers:    []string{},
		Following:    []string{},
		Posts:        []string{},
		PasswordHash: string(hash),
	}
	if err := s.repo.InsertUser(user); err != nil {
		return store.User{}, err
	}

	s.persist(user)
	s.setCurrent(user)
	s.log.WithField("user", user.ID).Info("registered")
	return user, nil
}

// Deauthenticate always succeeds; it clears the current actor and the
// persisted record.
func (s *Service) Deauthenticate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.sessions.Clear(); err != nil {
		s.log.WithError(err).Warn("clearing persisted session failed")
	}
	s.log.Info("deauthenticated")
}

// Restore rebuilds the session from the persisted record at startup. The
// cached snapshot is not trusted: the user is re-fetched from the store and
// the session fails closed (Anonymous, record cleared) when the record is
// invalid or the user no longer exists.
func (s *Service) Restore() (store.User, bool) {
	record, err := s.sessions.Get()
	if err != nil || record == "" {
		return store.User{}, false
	}

	claims, err := s.parseToken(record)
	if err != nil {
		s.log.WithError(err).Warn("discarding invalid session record")
		_ = s.sessions.Clear()
		return store.User{}, false
	}

	user, ok := s.repo.User(claims.UserID)
	if !ok {
		s.log.WithField("user", claims.UserID).Warn("persisted session references unknown user")
		_ = s.sessions.Clear()
		return store.User{}, false
	}

	s.setCurrent(user)
	s.log.WithField("user", user.ID).Info("session restored")
	return user, true
}

// Current returns the authenticated actor, freshly read from the store.
func (s *Service) Current() (store.User, bool) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil {
		return store.User{}, false
	}
	user, ok := s.repo.User(current.ID)
	if !ok {
		return store.User{}, false
	}
	return user, true
}

func (s *Service) setCurrent(user store.User) {
	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()
}

// persist writes the signed session record; a storage failure only costs the
// session its durability, so it is logged and not surfaced.
func (s *Service) persist(user store.User) {
	token, err := s.signToken(user)
	if err == nil {
		err = s.sessions.Put(token)
	}
	if err != nil {
		s.log.WithError(err).Warn("persisting session failed")
	}
}

func (s *Service) signToken(user store.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}
