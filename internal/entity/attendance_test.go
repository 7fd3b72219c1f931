package entity_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/internal/entity"
)

func TestAttendance_State(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)

	require.Equal(t, entity.AttendanceAbsent, entity.Attendance{}.State())

	a := entity.Attendance{GuardID: 7, SignedInAt: in}
	require.Equal(t, entity.AttendanceSignedIn, a.State())
	require.Zero(t, a.Worked())

	a.SignedOutAt = &out
	require.Equal(t, entity.AttendanceComplete, a.State())
	require.Equal(t, 9*time.Hour, a.Worked())
}

func TestIdentityFromCtx(t *testing.T) {
	t.Parallel()

	_, err := entity.IdentityFromCtx(context.Background())
	require.ErrorIs(t, err, entity.ErrMissingToken)

	ctx := entity.CtxWithAuthErr(context.Background(), entity.ErrInvalidToken)
	_, err = entity.IdentityFromCtx(ctx)
	require.ErrorIs(t, err, entity.ErrInvalidToken)

	ctx = entity.CtxWithIdentity(context.Background(), entity.Identity{Account: entity.AccountGuard, GuardID: 7})
	identity, err := entity.IdentityFromCtx(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 7, identity.GuardID)

	_, err = entity.AdminFromCtx(ctx)
	require.ErrorIs(t, err, entity.ErrForbidden)
}
