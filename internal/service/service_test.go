package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/internal/mocks"
	"github.com/samandr77/guardbook/internal/service"
	"github.com/samandr77/guardbook/pkg/config"
)

const testSecret = "test-secret"

type testDeps struct {
	repo     *mocks.MockRepository
	producer *mocks.MockProducer
	storage  *mocks.MockFileStorage
}

func newTestService(t *testing.T) (*service.Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := testDeps{
		repo:     mocks.NewMockRepository(ctrl),
		producer: mocks.NewMockProducer(ctrl),
		storage:  mocks.NewMockFileStorage(ctrl),
	}

	cfg := config.Config{
		JWT:        config.JWT{Secret: testSecret},
		Security:   config.Security{BcryptCost: bcrypt.DefaultCost},
		Attendance: config.Attendance{TimeZone: "UTC"},
		Payroll:    config.Payroll{Currency: "KES"},
	}

	return service.New(cfg, deps.repo, deps.producer, deps.storage), deps
}

func adminCtx() context.Context {
	return entity.CtxWithIdentity(context.Background(), entity.Identity{
		ID:       uuid.Must(uuid.NewV4()),
		Email:    "admin@example.com",
		Username: "admin",
		Account:  entity.AccountAdmin,
	})
}

func guardCtx(guardID int64) context.Context {
	return entity.CtxWithIdentity(context.Background(), entity.Identity{
		ID:      uuid.Must(uuid.NewV4()),
		Email:   "guard@example.com",
		Account: entity.AccountGuard,
		GuardID: guardID,
	})
}

func hash(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestService_HashPassword(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	h, err := s.HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", h)

	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	require.GreaterOrEqual(t, cost, 10)

	require.True(t, service.VerifyPassword("correct horse", h))
	require.False(t, service.VerifyPassword("wrong horse", h))
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	admin := entity.Admin{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     "root",
		Email:        "root@example.com",
		PasswordHash: hash(t, "s3cret-pass"),
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		s, deps := newTestService(t)
		deps.repo.EXPECT().AdminByEmail(gomock.Any(), "root@example.com").Return(admin, nil)

		token, err := s.Login(context.Background(), " Root@Example.com ", "s3cret-pass")
		require.NoError(t, err)

		identity, err := s.Authenticate(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, admin.ID, identity.ID)
		require.Equal(t, entity.AccountAdmin, identity.Account)
		require.Equal(t, "root", identity.Username)
	})

	t.Run("unknown email and wrong password fail the same way", func(t *testing.T) {
		t.Parallel()

		s, deps := newTestService(t)
		deps.repo.EXPECT().AdminByEmail(gomock.Any(), "nobody@example.com").Return(entity.Admin{}, entity.ErrNotFound)
		deps.repo.EXPECT().AdminByEmail(gomock.Any(), "root@example.com").Return(admin, nil)

		_, errUnknown := s.Login(context.Background(), "nobody@example.com", "s3cret-pass")
		_, errWrong := s.Login(context.Background(), "root@example.com", "wrong-pass")

		require.ErrorIs(t, errUnknown, entity.ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, entity.ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestService_GuardLogin(t *testing.T) {
	t.Parallel()

	s, deps := newTestService(t)

	guard := entity.Guard{
		ID:           uuid.Must(uuid.NewV4()),
		GuardID:      7,
		Email:        "jane@example.com",
		PasswordHash: hash(t, "guard-pass"),
		FirstName:    "Jane",
		LastName:     "Doe",
	}

	deps.repo.EXPECT().GuardByEmail(gomock.Any(), "jane@example.com").Return(guard, nil)

	token, err := s.GuardLogin(context.Background(), "jane@example.com", "guard-pass")
	require.NoError(t, err)

	identity, err := s.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, entity.AccountGuard, identity.Account)
	require.Equal(t, int64(7), identity.GuardID)
	require.Equal(t, "Jane Doe", identity.Username)
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	sign := func(t *testing.T, claims entity.SessionClaims, secret string) string {
		t.Helper()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return token
	}

	valid := entity.SessionClaims{
		ID:      uuid.Must(uuid.NewV4()),
		Email:   "root@example.com",
		Account: entity.AccountAdmin,
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	guardWithoutID := valid
	guardWithoutID.Account = entity.AccountGuard

	tests := []struct {
		name  string
		token string
		err   error
	}{
		{name: "valid", token: sign(t, valid, testSecret)},
		{name: "missing", token: "", err: entity.ErrMissingToken},
		{name: "malformed", token: "not.a.token", err: entity.ErrInvalidToken},
		{name: "bad signature", token: sign(t, valid, "other-secret"), err: entity.ErrInvalidToken},
		{name: "expired", token: sign(t, expired, testSecret), err: entity.ErrInvalidToken},
		{name: "guard without employee number", token: sign(t, guardWithoutID, testSecret), err: entity.ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			identity, err := s.Authenticate(context.Background(), tt.token)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, valid.ID, identity.ID)
		})
	}
}

func TestService_Signup(t *testing.T) {
	t.Parallel()

	t.Run("admin creates admin", func(t *testing.T) {
		t.Parallel()

		s, deps := newTestService(t)

		deps.repo.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entity.Admin) error {
				require.Equal(t, "ops@example.com", a.Email)
				require.Equal(t, entity.DefaultPicture, a.Picture)
				require.True(t, service.VerifyPassword("long-password", a.PasswordHash))

				return nil
			})

		admin, err := s.Signup(adminCtx(), entity.NewAdmin{
			Username: "ops",
			Email:    "OPS@example.com",
			Password: "long-password",
		})
		require.NoError(t, err)
		require.Equal(t, "ops", admin.Username)
	})

	t.Run("guard is forbidden", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		_, err := s.Signup(guardCtx(7), entity.NewAdmin{Username: "x", Email: "x@example.com", Password: "long-password"})
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("anonymous is unauthenticated", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		_, err := s.Signup(context.Background(), entity.NewAdmin{})
		require.ErrorIs(t, err, entity.ErrMissingToken)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		_, err := s.Signup(adminCtx(), entity.NewAdmin{Username: "ops", Email: "ops@example.com", Password: "short"})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Parallel()

	guard := entity.Guard{GuardID: 7, PasswordHash: hash(t, "old-password")}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		s, deps := newTestService(t)
		deps.repo.EXPECT().GuardByGuardID(gomock.Any(), int64(7)).Return(guard, nil)
		deps.repo.EXPECT().UpdateGuardPassword(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, h string) error {
				require.True(t, service.VerifyPassword("new-password", h))
				return nil
			})

		err := s.ChangePassword(guardCtx(7), 7, "old-password", "new-password")
		require.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()

		s, deps := newTestService(t)
		deps.repo.EXPECT().GuardByGuardID(gomock.Any(), int64(7)).Return(guard, nil)

		err := s.ChangePassword(guardCtx(7), 7, "nope-nope", "new-password")
		require.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})

	t.Run("other guard", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		err := s.ChangePassword(guardCtx(8), 7, "old-password", "new-password")
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("confirm", func(t *testing.T) {
		t.Parallel()

		s, deps := newTestService(t)
		deps.repo.EXPECT().GuardByGuardID(gomock.Any(), int64(7)).Return(guard, nil).Times(2)

		ok, err := s.ConfirmPassword(guardCtx(7), 7, "old-password")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = s.ConfirmPassword(adminCtx(), 7, "other")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
