package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/saludconecta/internal/client/models"
	"github.com/dmitrijs2005/saludconecta/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CallClaims are carried by the tokens of MockVideo.
type CallClaims struct {
	jwt.RegisteredClaims
	AppointmentID string `json:"appointmentId"`
}

// MockVideo hands out call grants whose token is an HS256 JWT bound to the
// appointment.
type MockVideo struct {
	latency Latency
	baseURL string
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewMockVideo(latency time.Duration, baseURL string, secret []byte, ttl time.Duration) *MockVideo {
	return &MockVideo{
		latency: Latency(latency),
		baseURL: baseURL,
		secret:  secret,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MockVideo) InitializeCall(ctx context.Context, appointmentID string) (*models.CallGrant, error) {
	if appointmentID == "" {
		return nil, errors.New("appointment id is required")
	}
	if err := m.latency.wait(ctx, 2*time.Second); err != nil {
		return nil, err
	}

	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, CallClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    common.AppName,
			Subject:   appointmentID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		AppointmentID: appointmentID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign call token: %w", err)
	}

	return &models.CallGrant{
		URL:   strings.TrimRight(m.baseURL, "/") + "/" + appointmentID,
		Token: signed,
	}, nil
}

func (m *MockVideo) EndCall(ctx context.Context, appointmentID string) error {
	return m.latency.wait(ctx, 500*time.Millisecond)
}

// ParseCallToken verifies a token issued by MockVideo and returns its
// claims. Expired tokens yield common.ErrTokenExpired, anything else that
// fails verification common.ErrInvalidToken.
func ParseCallToken(tokenString string, secret []byte, opts ...jwt.ParserOption) (*CallClaims, error) {
	claims := &CallClaims{}
	opts = append([]jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}, opts...)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.AppointmentID == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
