package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
)

var ErrSnapshotNotFound = errors.New("game snapshot not found")

// SnapshotRepository keeps the latest observable state of each session
// so presentation clients can catch up when they attach.
type SnapshotRepository interface {
	Save(ctx context.Context, sessionID string, snapshot tictactoe.Snapshot) error
	GetByID(ctx context.Context, sessionID string) (*tictactoe.Snapshot, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbSnapshot struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository - ttl of zero keeps snapshots until deleted.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(sessionID string) string {
	return "game:" + sessionID
}

func (that *dbSnapshot) Save(ctx context.Context, sessionID string, snapshot tictactoe.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Set(ctx, snapshotKey(sessionID), snapshotJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetByID(ctx context.Context, sessionID string) (*tictactoe.Snapshot, error) {
	response, err := that.client.Get(ctx, snapshotKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot by id: %w", err)
	}

	var snapshot tictactoe.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

func (that *dbSnapshot) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, snapshotKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot by id: %w", err)
	}

	if deleted == 0 {
		return ErrSnapshotNotFound
	}

	return nil
}
