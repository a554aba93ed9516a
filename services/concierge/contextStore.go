// File: services/concierge/contextStore.go
package concierge

import (
	"context"
	"encoding/json"
	"time"

	"concierge/models"

	"github.com/go-redis/redis/v8"
)

const (
	chatContextPrefix = "chat:ctx:"
	memoryPrefix      = "chat:mem:"

	// Conversation context beyond this many turns is dropped from the
	// prompt; the full history lives with the frontend.
	maxHistoryMessages = 20
)

// RedisContextStore keeps per-client conversation context with a TTL.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, clientID string) (*models.ChatContext, error) {
	key := chatContextPrefix + clientID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, clientID string, chatCtx *models.ChatContext) error {
	if len(chatCtx.History) > maxHistoryMessages {
		chatCtx.History = chatCtx.History[len(chatCtx.History)-maxHistoryMessages:]
	}
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatContextPrefix+clientID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, clientID string) error {
	return s.client.Del(ctx, chatContextPrefix+clientID).Err()
}

// RedisMemoryStore persists learned client preferences. Memories have no TTL:
// they are the long-lived half of the context.
type RedisMemoryStore struct {
	client *redis.Client
}

func NewRedisMemoryStore(client *redis.Client) *RedisMemoryStore {
	return &RedisMemoryStore{client: client}
}

func (s *RedisMemoryStore) Learn(ctx context.Context, clientID string, memory models.LearnMemoryPayload) error {
	entry := models.ClientMemory{
		Topic:     memory.Topic,
		Content:   memory.Content,
		Type:      memory.Type,
		LearnedAt: time.Now(),
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, memoryPrefix+clientID, b).Err()
}

func (s *RedisMemoryStore) List(ctx context.Context, clientID string) ([]models.ClientMemory, error) {
	raw, err := s.client.LRange(ctx, memoryPrefix+clientID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	memories := make([]models.ClientMemory, 0, len(raw))
	for _, item := range raw {
		var m models.ClientMemory
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		memories = append(memories, m)
	}
	return memories, nil
}
