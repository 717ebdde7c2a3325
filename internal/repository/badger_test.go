package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBadgerRepo(t *testing.T, ttl time.Duration) GameRepository {
	t.Helper()

	db, err := storage.NewBadgerStorage()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return NewBadgerGameRepository(db, ttl)
}

func TestBadgerGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and reads a game", func(t *testing.T) {
		// Given: an empty repository
		gameRepo := newBadgerRepo(t, time.Hour)
		game := newRecord("abc")

		// When: the game is stored and read back
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))
		retrievedGame, err := gameRepo.GetByID(ctx, "abc")

		// Then: it matches
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Overwrites an existing game", func(t *testing.T) {
		gameRepo := newBadgerRepo(t, 0)
		game := newRecord("abc")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		game.Step = 0
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		retrievedGame, err := gameRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 0, retrievedGame.Step)
	})

	t.Run("Not found", func(t *testing.T) {
		gameRepo := newBadgerRepo(t, time.Hour)

		retrievedGame, err := gameRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("Delete", func(t *testing.T) {
		// Given: a stored game
		gameRepo := newBadgerRepo(t, time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newRecord("abc")))

		// When: it is deleted twice
		firstErr := gameRepo.DeleteByID(ctx, "abc")
		secondErr := gameRepo.DeleteByID(ctx, "abc")

		// Then: the first succeeds and the second reports ErrGameNotFound
		require.NoError(t, firstErr)
		require.ErrorIs(t, secondErr, ErrGameNotFound)

		_, err := gameRepo.GetByID(ctx, "abc")
		assert.ErrorIs(t, err, ErrGameNotFound)
	})
}
