package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akosachev/panelshop/internal/models"
)

// ConversationStateRepository keeps each user's position in the deposit
// dialog in redis. Entries carry a TTL, so a user who walks away mid-dialog
// falls back to the idle state instead of the bot waiting forever.
type ConversationStateRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewConversationStateRepository creates a repository with the given state TTL.
func NewConversationStateRepository(rdb *redis.Client, ttl time.Duration) *ConversationStateRepository {
	return &ConversationStateRepository{rdb: rdb, ttl: ttl}
}

func convKey(userID int64) string {
	return fmt.Sprintf("conv:%d", userID)
}

// Set stores the user's conversation state, resetting the TTL.
func (r *ConversationStateRepository) Set(ctx context.Context, userID int64, state models.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, convKey(userID), data, r.ttl).Err()
}

// Get returns the user's state, or nil when the user is idle (no entry or
// the entry expired).
func (r *ConversationStateRepository) Get(ctx context.Context, userID int64) (*models.ConversationState, error) {
	data, err := r.rdb.Get(ctx, convKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.ConversationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Clear drops the user's state, returning them to idle.
func (r *ConversationStateRepository) Clear(ctx context.Context, userID int64) error {
	return r.rdb.Del(ctx, convKey(userID)).Err()
}
