package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type badgerGame struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerGameRepository - same contract as the redis repository, backed by a badger database.
func NewBadgerGameRepository(db *badger.DB, ttl time.Duration) GameRepository {
	return &badgerGame{
		db:  db,
		ttl: ttl,
	}
}

func (that *badgerGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(gameKey(game.ID)), gameJSON)
		if that.ttl > 0 {
			entry = entry.WithTTL(that.ttl)
		}

		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *badgerGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	var existingGame entity.Game

	err := that.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKey(id)))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &existingGame)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return &existingGame, nil
}

func (that *badgerGame) DeleteByID(_ context.Context, id string) error {
	err := that.db.Update(func(txn *badger.Txn) error {
		key := []byte(gameKey(id))

		if _, err := txn.Get(key); err != nil {
			return err
		}

		return txn.Delete(key)
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrGameNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}
