package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/dmitrijs2005/saludconecta/internal/metrics"
)

// CallService opens and closes video calls. Grants are checked before use:
// a token that does not verify, or that names another appointment, is
// rejected.
type CallService interface {
	Join(ctx context.Context, appointmentID string) (*models.CallGrant, error)
	Leave(ctx context.Context, appointmentID string) error
}

type callService struct {
	video  client.VideoClient
	secret []byte
	rec    metrics.Recorder
	log    logging.Logger
}

func NewCallService(video client.VideoClient, secret []byte, rec metrics.Recorder, log logging.Logger) CallService {
	return &callService{video: video, secret: secret, rec: rec, log: log}
}

func (s *callService) Join(ctx context.Context, appointmentID string) (g *models.CallGrant, err error) {
	defer observe(s.rec, "video.init", time.Now(), &err)

	if appointmentID == "" {
		return nil, errors.New("appointment id is required")
	}

	g, err = s.video.InitializeCall(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("initialize call: %w", err)
	}

	claims, err := client.ParseCallToken(g.Token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("call token: %w", err)
	}
	if claims.AppointmentID != appointmentID {
		return nil, fmt.Errorf("call token issued for %q, want %q", claims.AppointmentID, appointmentID)
	}

	s.log.Info(ctx, "call initialized", "appointment", appointmentID, "url", g.URL)
	return g, nil
}

func (s *callService) Leave(ctx context.Context, appointmentID string) (err error) {
	defer observe(s.rec, "video.end", time.Now(), &err)

	if err = s.video.EndCall(ctx, appointmentID); err != nil {
		return fmt.Errorf("end call: %w", err)
	}
	return nil
}
