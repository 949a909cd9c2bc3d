package auth

import (
	"context"
	"errors"
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/auth"
	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	sessionRepo  auth.SessionRepository
	employeeRepo employee.EmployeeRepository
	tokens       jwt.Service
}

func NewAuthService(
	sessionRepo auth.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	tokens jwt.Service,
) auth.AuthService {
	return &authService{
		sessionRepo:  sessionRepo,
		employeeRepo: employeeRepo,
		tokens:       tokens,
	}
}

// Login implements auth.AuthService.
func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !emp.IsActive {
		return nil, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, _, err := s.tokens.GenerateAccessToken(emp.ID, emp.Username, emp.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.tokens.GenerateRefreshToken(emp.ID)
	if err != nil {
		return nil, err
	}

	// The session records the refresh token's jti so check-out and logout
	// can revoke it.
	decoded, err := s.tokens.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil, err
	}
	session := &auth.UserSession{
		EmployeeID: emp.ID,
		TokenID:    decoded.JwtID(),
		LoginAt:    time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		EmployeeID:            emp.ID,
		FullName:              emp.FullName,
		Role:                  string(emp.Role),
	}, nil
}

// Refresh implements auth.AuthService.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.RefreshResponse, error) {
	decoded, err := s.tokens.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	tokenType, _ := decoded.Get("type")
	if tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	if s.tokens.IsTokenRevoked(decoded.JwtID()) {
		return nil, auth.ErrInvalidToken
	}

	employeeID, ok := decoded.Get("employee_id")
	if !ok {
		return nil, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID.(string))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	if !emp.IsActive {
		return nil, auth.ErrAccountInactive
	}

	accessToken, _, err := s.tokens.GenerateAccessToken(emp.ID, emp.Username, emp.Role)
	if err != nil {
		return nil, err
	}

	return &auth.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout implements auth.AuthService.
func (s *authService) Logout(ctx context.Context, employeeID string) error {
	return s.CloseSessionsForEmployee(ctx, employeeID)
}

const defaultSessionHistoryDays = 30

// Sessions implements auth.AuthService.
func (s *authService) Sessions(ctx context.Context, employeeID string, days int) ([]auth.SessionResponse, error) {
	if days < 1 || days > 365 {
		days = defaultSessionHistoryDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	sessions, err := s.sessionRepo.ListSince(ctx, employeeID, since)
	if err != nil {
		return nil, err
	}

	responses := make([]auth.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp := auth.SessionResponse{
			ID:         session.ID,
			EmployeeID: session.EmployeeID,
			LoginAt:    session.LoginAt.Format(time.RFC3339),
			IsActive:   session.IsActive,
		}
		if session.LogoutAt != nil {
			logoutAt := session.LogoutAt.Format(time.RFC3339)
			resp.LogoutAt = &logoutAt
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// CloseSessionsForEmployee implements auth.SessionCloser. Every active
// session is closed and its refresh token revoked.
func (s *authService) CloseSessionsForEmployee(ctx context.Context, employeeID string) error {
	tokenIDs, err := s.sessionRepo.CloseAllForEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	for _, id := range tokenIDs {
		s.tokens.RevokeToken(id)
	}
	return nil
}
