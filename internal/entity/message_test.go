package entity_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/internal/entity"
)

func TestAuthorRef_RoundTrip(t *testing.T) {
	t.Parallel()

	adminID := uuid.Must(uuid.NewV4())

	for _, author := range []entity.Author{
		entity.GuardAuthor{GuardID: 7},
		entity.AdminAuthor{AdminID: adminID},
	} {
		ref := entity.RefOf(author)
		require.Equal(t, author.Kind(), ref.Kind)

		got, err := ref.Author()
		require.NoError(t, err)
		require.Equal(t, author, got)
	}
}

func TestAuthorRef_Invalid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		ref  entity.AuthorRef
	}{
		{name: "unknown kind", ref: entity.AuthorRef{Kind: "podcaster", ID: "1"}},
		{name: "bad guard id", ref: entity.AuthorRef{Kind: entity.AccountGuard, ID: "abc"}},
		{name: "bad admin id", ref: entity.AuthorRef{Kind: entity.AccountAdmin, ID: "42"}},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.ref.Author()
			require.Error(t, err)
		})
	}
}

func TestIdentity_Author(t *testing.T) {
	t.Parallel()

	admin := entity.Identity{ID: uuid.Must(uuid.NewV4()), Account: entity.AccountAdmin}
	require.Equal(t, entity.AdminAuthor{AdminID: admin.ID}, admin.Author())
	require.True(t, admin.CanActOnGuard(99))

	guard := entity.Identity{ID: uuid.Must(uuid.NewV4()), Account: entity.AccountGuard, GuardID: 7}
	require.Equal(t, entity.GuardAuthor{GuardID: 7}, guard.Author())
	require.True(t, guard.CanActOnGuard(7))
	require.False(t, guard.CanActOnGuard(8))
}
