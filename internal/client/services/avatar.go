package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/common"
	"github.com/dmitrijs2005/saludconecta/internal/filex"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/dmitrijs2005/saludconecta/internal/metrics"
	"github.com/google/uuid"
)

// MaxAvatarSize bounds the image files accepted for upload.
const MaxAvatarSize = 5 << 20

var avatarExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

// AvatarService uploads a profile picture and points the profile at it.
type AvatarService interface {
	Upload(ctx context.Context, current models.User, path string) (*models.User, error)
}

type avatarService struct {
	storage client.StorageClient
	auth    AuthService
	rec     metrics.Recorder
	log     logging.Logger
}

func NewAvatarService(storage client.StorageClient, auth AuthService, rec metrics.Recorder, log logging.Logger) AvatarService {
	return &avatarService{storage: storage, auth: auth, rec: rec, log: log}
}

// StorageKey returns a fresh object key for an avatar of userID.
func StorageKey(userID, ext string) string {
	return fmt.Sprintf("users/%s/%s%s", userID, uuid.New(), strings.ToLower(ext))
}

func (s *avatarService) Upload(ctx context.Context, current models.User, path string) (u *models.User, err error) {
	defer observe(s.rec, "storage.upload", time.Now(), &err)

	if current.ID == "" {
		return nil, common.ErrorUnauthorized
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !avatarExts[ext] {
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	data, err := filex.ReadLimited(path, MaxAvatarSize)
	if err != nil {
		return nil, err
	}

	key := StorageKey(current.ID, ext)
	url, err := s.storage.UploadFile(ctx, key, data)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	u, err = s.auth.UpdateProfile(ctx, current, models.UserPatch{Avatar: &url})
	if err != nil {
		// the profile still points at the old picture
		if derr := s.storage.DeleteFile(context.WithoutCancel(ctx), key); derr != nil {
			s.log.Warn(ctx, "orphan avatar left in storage", "key", key, "error", derr)
		}
		return nil, err
	}
	return u, nil
}
