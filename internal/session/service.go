package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uci-sgcd/panel-api/internal/gateway"
	"github.com/uci-sgcd/panel-api/internal/models"
	"github.com/uci-sgcd/panel-api/pkg/config"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

type authGateway interface {
	Login(ctx context.Context, email, password string) (*models.UpstreamAuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.UpstreamAuthResponse, error)
}

type credentialStore interface {
	SaveSession(ctx context.Context, id string, pair models.TokenPair, identity models.Identity) error
	Identity(ctx context.Context, id string) (*models.Identity, error)
	HasAccessCredential(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context, id string) error
	Source(id string) gateway.CredentialSource
}

// Service owns session lifecycle: authentication against the upstream,
// durable credential persistence, and the panel session token.
type Service struct {
	gw        authGateway
	creds     credentialStore
	validator *validator.Validate
	logger    *zap.Logger
	cfg       config.SessionConfig
}

// NewService constructs a session service.
func NewService(gw authGateway, creds credentialStore, validate *validator.Validate, logger *zap.Logger, cfg config.SessionConfig) *Service {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, creds: creds, validator: validate, logger: logger, cfg: cfg}
}

// Login authenticates against the upstream and opens a panel session. The
// upstream owns password verification; this never sees a hash.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	auth, err := s.gw.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, auth)
}

// Register creates an upstream account and treats the response as an
// implicit login; no second auth call is made.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid register payload")
	}

	auth, err := s.gw.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, auth)
}

func (s *Service) openSession(ctx context.Context, auth *models.UpstreamAuthResponse) (*models.SessionResponse, error) {
	identity := auth.User.Identity()
	sessionID := uuid.NewString()

	pair := models.TokenPair{Access: auth.Access, Refresh: auth.Refresh}
	if err := s.creds.SaveSession(ctx, sessionID, pair, identity); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	token, err := s.IssueToken(sessionID, identity)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue session token")
	}

	s.logger.Info("session opened",
		zap.String("session_id", sessionID),
		zap.Int64("user_id", identity.ID),
		zap.String("role", string(identity.Role)),
	)

	return &models.SessionResponse{
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenExpiry.Seconds()),
		User:      identity,
	}, nil
}

// Logout clears the session's durable entries. Idempotent: logging out an
// already-closed session succeeds.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.creds.Clear(ctx, sessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	s.logger.Info("session closed", zap.String("session_id", sessionID))
	return nil
}

// Restore rebuilds the in-memory identity from the durable store without any
// upstream call. A corrupted snapshot is cleared and treated as
// unauthenticated rather than crashing.
func (s *Service) Restore(ctx context.Context, sessionID string) (*models.Identity, error) {
	identity, err := s.creds.Identity(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errCorruptSnapshot) {
			s.logger.Warn("clearing corrupt session snapshot", zap.String("session_id", sessionID))
			_ = s.creds.Clear(ctx, sessionID)
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session could not be restored")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read session")
	}
	if identity == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "no active session")
	}

	hasAccess, err := s.creds.HasAccessCredential(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read session")
	}
	if !hasAccess {
		return nil, appErrors.Clone(appErrors.ErrSessionExpired, "")
	}

	return identity, nil
}

// Credentials exposes the gateway credential source for a session.
func (s *Service) Credentials(sessionID string) gateway.CredentialSource {
	return s.creds.Source(sessionID)
}

// IssueToken mints the HS256 panel session token.
func (s *Service) IssueToken(sessionID string, identity models.Identity) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.SessionClaims{
		SessionID: sessionID,
		UserID:    identity.ID,
		Role:      identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", identity.ID),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.cfg.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ValidateToken parses and validates a panel session token.
func (s *Service) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid session token")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session claims")
	}

	return claims, nil
}
