package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/common"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/dmitrijs2005/saludconecta/internal/metrics"
)

// AuthService defines the session operations used by the screens.
//
// Contract:
//   - Login: authenticate, fetch the full profile and persist it.
//   - Register: create the account and persist the returned user.
//   - Logout: tell the collaborator and forget the persisted user; a
//     collaborator failure does not prevent the local logout.
//   - ForgotPassword: ask for a recovery email.
//   - UpdateProfile: update the directory and persist the merged user.
//   - Restore: rebuild the session persisted by an earlier run.
//
// None of these touch the application state. All methods honor context
// cancellation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	UpdateProfile(ctx context.Context, current models.User, patch models.UserPatch) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
}

type authService struct {
	auth     client.AuthClient
	dir      client.DirectoryClient
	sessions SessionStore
	rec      metrics.Recorder
	log      logging.Logger

	// profileMu orders the load, merge and save of profile updates.
	profileMu sync.Mutex
}

func NewAuthService(auth client.AuthClient, dir client.DirectoryClient, sessions SessionStore, rec metrics.Recorder, log logging.Logger) AuthService {
	return &authService{auth: auth, dir: dir, sessions: sessions, rec: rec, log: log}
}

// persist saves u; a failure only costs the session on the next start.
func (a *authService) persist(ctx context.Context, u models.User) {
	if err := a.sessions.Save(ctx, u); err != nil {
		a.log.Warn(ctx, "session not persisted", "user", u.ID, "error", err)
	}
}

func (a *authService) Login(ctx context.Context, email, password string) (u *models.User, err error) {
	defer observe(a.rec, "auth.login", time.Now(), &err)

	u, err = a.auth.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("login: %w", client.ErrInvalidCredentials)
	}

	profile, err := a.dir.GetUserProfile(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile != nil {
		u = profile
	}

	a.persist(ctx, *u)
	a.log.Info(ctx, "signed in", "user", u.ID)
	return u, nil
}

func (a *authService) Register(ctx context.Context, email, password, name string) (u *models.User, err error) {
	defer observe(a.rec, "auth.register", time.Now(), &err)

	u, err = a.auth.Register(ctx, strings.TrimSpace(email), password, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("register: %w", common.ErrorInternal)
	}

	a.persist(ctx, *u)
	a.log.Info(ctx, "registered", "user", u.ID)
	return u, nil
}

func (a *authService) Logout(ctx context.Context) (err error) {
	defer observe(a.rec, "auth.logout", time.Now(), &err)

	if err := a.auth.Logout(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		a.log.Warn(ctx, "logout collaborator failed", "error", err)
	}
	if err = a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (msg string, err error) {
	defer observe(a.rec, "auth.forgot", time.Now(), &err)

	msg, err = a.auth.ForgotPassword(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return msg, nil
}

func (a *authService) UpdateProfile(ctx context.Context, current models.User, patch models.UserPatch) (u *models.User, err error) {
	defer observe(a.rec, "directory.update", time.Now(), &err)

	if current.ID == "" {
		return nil, common.ErrorUnauthorized
	}
	if err = a.dir.UpdateUserProfile(ctx, current.ID, patch); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	a.profileMu.Lock()
	defer a.profileMu.Unlock()

	// Merge onto the saved session so earlier patches of the same user
	// survive a stale current.
	base := current
	if saved, lerr := a.sessions.Load(ctx); lerr != nil {
		a.log.Warn(ctx, "session not loaded for profile merge", "user", current.ID, "error", lerr)
	} else if saved != nil && saved.ID == current.ID {
		base = *saved
	}

	merged := base.Apply(patch)
	a.persist(ctx, merged)
	return &merged, nil
}

func (a *authService) Restore(ctx context.Context) (u *models.User, err error) {
	defer observe(a.rec, "auth.restore", time.Now(), &err)

	saved, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if saved == nil {
		return nil, nil
	}

	profile, err := a.dir.GetUserProfile(ctx, saved.ID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		a.log.Warn(ctx, "profile refresh failed, using persisted session", "user", saved.ID, "error", err)
		return saved, nil
	}
	if profile == nil {
		a.log.Info(ctx, "persisted user no longer exists", "user", saved.ID)
		if err = a.sessions.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return nil, nil
	}
	return profile, nil
}
