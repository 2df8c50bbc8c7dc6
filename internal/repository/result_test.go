package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRepository_SaveAndGet(t *testing.T) {
	t.Run("Saved result round-trips by room id", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a finished game won by X
		result := &entity.GameResult{
			RoomID: "r1",
			Winner: entity.SymbolX,
			Board: entity.Board{
				{entity.SymbolX, entity.SymbolX, entity.SymbolX},
				{entity.SymbolO, entity.SymbolO, entity.EmptyCell},
				{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
			},
			FinishedAt: time.Now().UTC(),
		}

		// When: saving and reading it back
		err := resultRepo.Save(ctx, result)
		require.NoError(t, err)

		retrieved, err := resultRepo.GetByRoomID(ctx, "r1")

		// Then: the archived record matches
		require.NoError(t, err)
		assert.Equal(t, result.RoomID, retrieved.RoomID)
		assert.Equal(t, result.Winner, retrieved.Winner)
		assert.Equal(t, result.Board, retrieved.Board)
	})

	t.Run("A later game in the same room overwrites the result", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: an archived win
		first := &entity.GameResult{RoomID: "r1", Winner: entity.SymbolX, FinishedAt: time.Now().UTC()}
		require.NoError(t, resultRepo.Save(ctx, first))

		// When: the rematch ends in a draw
		second := &entity.GameResult{RoomID: "r1", Winner: entity.WinnerDraw, FinishedAt: time.Now().UTC()}
		require.NoError(t, resultRepo.Save(ctx, second))

		// Then: the archive keeps the latest outcome
		retrieved, err := resultRepo.GetByRoomID(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, entity.WinnerDraw, retrieved.Winner)
	})

	t.Run("Unknown room id is not found", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: looking up a room that never finished a game
		_, err := resultRepo.GetByRoomID(ctx, "missing")

		// Then: an ErrResultNotFound error should be returned
		require.ErrorIs(t, err, ErrResultNotFound)
	})
}

func TestResultRepository_Delete(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: an archived result
	result := &entity.GameResult{RoomID: "r1", Winner: entity.SymbolO, FinishedAt: time.Now().UTC()}
	require.NoError(t, resultRepo.Save(ctx, result))

	// When: deleting it
	err := resultRepo.DeleteByRoomID(ctx, "r1")
	require.NoError(t, err)

	// Then: the result is gone
	_, err = resultRepo.GetByRoomID(ctx, "r1")
	require.ErrorIs(t, err, ErrResultNotFound)
}
