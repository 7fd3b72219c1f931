package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

// Login checks administrator credentials and issues a session token.
// Unknown email and wrong password fail identically with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.repo.AdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.InfoContext(ctx, "admin login failed")
			return "", entity.ErrInvalidCredentials
		}

		return "", fmt.Errorf("get admin by email: %w", err)
	}

	if !VerifyPassword(password, admin.PasswordHash) {
		slog.InfoContext(ctx, "admin login failed", "admin_id", admin.ID)
		return "", entity.ErrInvalidCredentials
	}

	return s.issueToken(entity.Identity{
		ID:       admin.ID,
		Email:    admin.Email,
		Username: admin.Username,
		Account:  entity.AccountAdmin,
	})
}

// GuardLogin is Login for guard accounts.
func (s *Service) GuardLogin(ctx context.Context, email, password string) (string, error) {
	guard, err := s.repo.GuardByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.InfoContext(ctx, "guard login failed")
			return "", entity.ErrInvalidCredentials
		}

		return "", fmt.Errorf("get guard by email: %w", err)
	}

	if !VerifyPassword(password, guard.PasswordHash) {
		slog.InfoContext(ctx, "guard login failed", "guard_id", guard.GuardID)
		return "", entity.ErrInvalidCredentials
	}

	return s.issueToken(entity.Identity{
		ID:       guard.ID,
		Email:    guard.Email,
		Username: guard.DisplayName(),
		Account:  entity.AccountGuard,
		GuardID:  guard.GuardID,
	})
}

// Authenticate verifies a bearer token and returns the identity it carries.
func (s *Service) Authenticate(_ context.Context, token string) (entity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return entity.Identity{}, entity.ErrMissingToken
	}

	var claims entity.SessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %w", entity.ErrInvalidToken, err)
	}

	if !parsed.Valid || claims.ID == uuid.Nil || !claims.Account.IsValid() {
		return entity.Identity{}, entity.ErrInvalidToken
	}

	if claims.Account == entity.AccountGuard && claims.GuardID == 0 {
		return entity.Identity{}, entity.ErrInvalidToken
	}

	return claims.Identity(), nil
}

func (s *Service) issueToken(identity entity.Identity) (string, error) {
	now := s.now()

	claims := entity.SessionClaims{
		ID:       identity.ID,
		Email:    identity.Email,
		Username: identity.Username,
		Account:  identity.Account,
		GuardID:  identity.GuardID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  identity.ID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	if s.cfg.JWT.TokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.cfg.JWT.TokenTTL))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// Signup registers another administrator. Only administrators may call it.
func (s *Service) Signup(ctx context.Context, in entity.NewAdmin) (entity.Admin, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return entity.Admin{}, err
	}

	return s.CreateAdmin(ctx, in)
}

// CreateAdmin stores a new administrator without an authorization check.
// It backs the operator CLI that bootstraps the first account.
func (s *Service) CreateAdmin(ctx context.Context, in entity.NewAdmin) (entity.Admin, error) {
	in.Email = normalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	err := validateNewAdmin(in)
	if err != nil {
		return entity.Admin{}, err
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return entity.Admin{}, err
	}

	admin := entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Picture:      entity.DefaultPicture,
		CreatedAt:    s.now(),
	}

	err = s.repo.CreateAdmin(ctx, admin)
	if err != nil {
		return entity.Admin{}, fmt.Errorf("create admin: %w", err)
	}

	slog.InfoContext(ctx, "admin created", "admin_id", admin.ID)

	return admin, nil
}

// ConfirmPassword reports whether password is the current password of the guard.
func (s *Service) ConfirmPassword(ctx context.Context, guardID int64, password string) (bool, error) {
	guard, err := s.ownedGuard(ctx, guardID)
	if err != nil {
		return false, err
	}

	return VerifyPassword(password, guard.PasswordHash), nil
}

func (s *Service) ChangePassword(ctx context.Context, guardID int64, current, next string) error {
	guard, err := s.ownedGuard(ctx, guardID)
	if err != nil {
		return err
	}

	if !VerifyPassword(current, guard.PasswordHash) {
		return entity.ErrInvalidCredentials
	}

	err = validatePassword(next)
	if err != nil {
		return err
	}

	hash, err := s.HashPassword(next)
	if err != nil {
		return err
	}

	err = s.repo.UpdateGuardPassword(ctx, guardID, hash)
	if err != nil {
		return fmt.Errorf("update guard %d password: %w", guardID, err)
	}

	slog.InfoContext(ctx, "guard password changed", "guard_id", guardID)

	return nil
}

// ownedGuard loads the guard after checking the caller may act on it.
func (s *Service) ownedGuard(ctx context.Context, guardID int64) (entity.Guard, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return entity.Guard{}, err
	}

	if !identity.CanActOnGuard(guardID) {
		return entity.Guard{}, entity.ErrForbidden
	}

	guard, err := s.repo.GuardByGuardID(ctx, guardID)
	if err != nil {
		return entity.Guard{}, fmt.Errorf("get guard %d: %w", guardID, err)
	}

	return guard, nil
}
