package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
	coremocks "github.com/danielmaina/pension-ledger/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("member@example.com", "hashed-secret", "Jane", "Mwangi", "+254700000000", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "member@example.com", user.Email)
		assert.Equal(t, "hashed-secret", user.HashedPassword)
		assert.Equal(t, "Jane", user.FirstName)
		assert.Equal(t, "Mwangi", user.LastName)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Email is lowercased and trimmed", func(t *testing.T) {
		user, err := NewUser("  Member@Example.COM ", "hashed-secret", "", "", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "member@example.com", user.Email)
	})

	t.Run("Empty email rejected", func(t *testing.T) {
		user, err := NewUser("", "hashed-secret", "", "", "", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Email without at sign rejected", func(t *testing.T) {
		user, err := NewUser("not-an-email", "hashed-secret", "", "", "", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Empty hashed credential rejected", func(t *testing.T) {
		user, err := NewUser("member@example.com", "", "", "", "", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}
