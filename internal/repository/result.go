package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

var ErrResultNotFound = errors.New("result not found")

// ResultRepository archives finished games. Rooms themselves never touch
// storage; the archive is write-behind history keyed by room id, where a
// later game in the same room overwrites the earlier result.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetByRoomID(ctx context.Context, roomID string) (*entity.GameResult, error)
	DeleteByRoomID(ctx context.Context, roomID string) error
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	resultKey := "result:" + result.RoomID
	if err = that.client.Set(ctx, resultKey, resultJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByRoomID(ctx context.Context, roomID string) (*entity.GameResult, error) {
	resultKey := "result:" + roomID

	response, err := that.client.Get(ctx, resultKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by room id: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) DeleteByRoomID(ctx context.Context, roomID string) error {
	resultKey := "result:" + roomID

	if err := that.client.Del(ctx, resultKey).Err(); err != nil {
		return fmt.Errorf("failed to delete result by room id: %w", err)
	}

	return nil
}
