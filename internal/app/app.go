package app

import (
	"io"
	"os"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/johnzilla/woofstagram/internal/auth"
	"github.com/johnzilla/woofstagram/internal/config"
	"github.com/johnzilla/woofstagram/internal/db"
	"github.com/johnzilla/woofstagram/internal/feed"
	"github.com/johnzilla/woofstagram/internal/notify"
	"github.com/johnzilla/woofstagram/internal/social"
	"github.com/johnzilla/woofstagram/internal/store"
)

// App owns the seeded store and the services built on it. The terminal UI
// calls these services and re-renders from the query layer after every
// mutation.
type App struct {
	Cfg    config.Config
	Log    *logrus.Logger
	Store  *store.Store
	Feed   *feed.Service
	Social *social.Service
	Auth   *auth.Service
	Notify *notify.Service

	sessionDB *badger.DB
	logFile   io.Closer
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return nil, err
	}
	log, logFile := newLogger(cfg)

	sessionDB, err := db.OpenSessionDB(cfg)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, err
	}

	st := store.Seeded()
	notifier := notify.NewService(notify.NewHub(), log)

	a := &App{
		Cfg:       cfg,
		Log:       log,
		Store:     st,
		Feed:      feed.NewService(st),
		Social:    social.NewService(st, notifier, log, cfg.UploadDelay),
		Auth:      auth.NewService(cfg.SessionSecret, st, db.NewSessionStore(sessionDB), nil, log),
		Notify:    notifier,
		sessionDB: sessionDB,
		logFile:   logFile,
	}

	a.Auth.Restore()
	return a, nil
}

func (a *App) Close() error {
	err := a.sessionDB.Close()
	if a.logFile != nil {
		if cerr := a.logFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// newLogger writes to the log file under the data dir; the terminal UI owns
// stdout. When the file cannot be opened logs are dropped rather than
// corrupting the UI.
func newLogger(cfg config.Config) (*logrus.Logger, io.Closer) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	file, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		log.SetOutput(io.Discard)
		return log, nil
	}
	log.SetOutput(file)
	return log, file
}
