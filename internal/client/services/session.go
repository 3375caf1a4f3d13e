package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/saludconecta/internal/common"
	"github.com/dmitrijs2005/saludconecta/internal/dbx"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
)

const notificationsKey = "saludconecta_notifications"

// SessionStore persists the signed-in user and user preferences in the
// local database.
//
// Contract:
//   - Save: write the user under common.SessionUserKey.
//   - Load: read it back; (nil, nil) when there is no usable session.
//     A corrupt record is deleted and reported as no session.
//   - Clear: forget the user.
//   - NotificationsEnabled / SetNotificationsEnabled: the settings toggle.
//   - Reset: wipe every local record.
type SessionStore interface {
	Save(ctx context.Context, u models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
	NotificationsEnabled(ctx context.Context, fallback bool) (bool, error)
	SetNotificationsEnabled(ctx context.Context, v bool) error
	Reset(ctx context.Context) error
}

type sessionStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSessionStore(db *sql.DB, log logging.Logger) SessionStore {
	return &sessionStore{db: db, log: log}
}

func (s *sessionStore) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

func (s *sessionStore) Save(ctx context.Context, u models.User) error {
	if u.ID == "" {
		return fmt.Errorf("save session: %w", common.ErrorUnauthorized)
	}
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Set(ctx, common.SessionUserKey, data)
	})
}

func (s *sessionStore) Load(ctx context.Context) (*models.User, error) {
	data, err := s.repo(s.db).Get(ctx, common.SessionUserKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		s.log.Warn(ctx, "discarding persisted session", "error", fmt.Errorf("%w: %v", common.ErrCorruptSession, err))
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &u, nil
}

func (s *sessionStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, common.SessionUserKey)
	})
}

func (s *sessionStore) NotificationsEnabled(ctx context.Context, fallback bool) (bool, error) {
	data, err := s.repo(s.db).Get(ctx, notificationsKey)
	if err != nil {
		return fallback, err
	}
	switch string(data) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return fallback, nil
	}
}

func (s *sessionStore) SetNotificationsEnabled(ctx context.Context, v bool) error {
	value := "off"
	if v {
		value = "on"
	}
	return s.repo(s.db).Set(ctx, notificationsKey, []byte(value))
}

func (s *sessionStore) Reset(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}
