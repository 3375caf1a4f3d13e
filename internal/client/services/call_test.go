package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/client"
	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/common"
	"github.com/dmitrijs2005/saludconecta/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideo struct {
	Grant   *models.CallGrant
	InitErr error
	EndErr  error
	Ended   []string
}

func (f *fakeVideo) InitializeCall(context.Context, string) (*models.CallGrant, error) {
	return f.Grant, f.InitErr
}

func (f *fakeVideo) EndCall(_ context.Context, id string) error {
	f.Ended = append(f.Ended, id)
	return f.EndErr
}

func TestCallService_JoinWithMockVideo(t *testing.T) {
	secret := []byte("video-secret")
	video := client.NewMockVideo(0, "https://saludconecta-video.com/call/", secret, time.Hour)
	svc := NewCallService(video, secret, &fakeRecorder{}, logging.Discard())

	g, err := svc.Join(context.Background(), "demo-call-1")
	require.NoError(t, err)
	assert.Equal(t, "https://saludconecta-video.com/call/demo-call-1", g.URL)

	require.NoError(t, svc.Leave(context.Background(), "demo-call-1"))
}

func TestCallService_RejectsForeignToken(t *testing.T) {
	video := client.NewMockVideo(0, "https://x/", []byte("other-secret"), time.Hour)
	svc := NewCallService(video, []byte("video-secret"), &fakeRecorder{}, logging.Discard())

	_, err := svc.Join(context.Background(), "1")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestCallService_RejectsTokenForOtherAppointment(t *testing.T) {
	secret := []byte("k")
	g, err := client.NewMockVideo(0, "https://x/", secret, time.Hour).InitializeCall(context.Background(), "other")
	require.NoError(t, err)

	svc := NewCallService(&fakeVideo{Grant: g}, secret, &fakeRecorder{}, logging.Discard())
	_, err = svc.Join(context.Background(), "mine")
	require.ErrorContains(t, err, `issued for "other"`)
}

func TestCallService_Errors(t *testing.T) {
	fv := &fakeVideo{InitErr: errors.New("no media"), EndErr: errors.New("hangup failed")}
	svc := NewCallService(fv, []byte("k"), &fakeRecorder{}, logging.Discard())

	_, err := svc.Join(context.Background(), "")
	require.Error(t, err)

	_, err = svc.Join(context.Background(), "1")
	require.ErrorContains(t, err, "no media")

	require.ErrorContains(t, svc.Leave(context.Background(), "1"), "hangup failed")
	assert.Equal(t, []string{"1"}, fv.Ended)
}
