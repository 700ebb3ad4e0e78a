// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mzalesak/periodika/internal/platform/apperr"
	"github.com/mzalesak/periodika/internal/platform/constants"
	"github.com/redis/go-redis/v9"
)

/*
RedisSessionRepository implements [SessionRepository] on Redis.

Each session is stored as JSON under its token hash with a TTL matching the
session's expiry, so expired sessions disappear on their own. A per-user set
indexes the live token hashes to support revoking everything at once after a
password change.
*/
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userSessionsKey(userID string) string {
	return constants.RedisPrefixUserSessions + userID
}

func (repository *RedisSessionRepository) Create(context context.Context, session *Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_create_failed: session already expired")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, sessionKey(session.TokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	// Index the hash for RevokeAll. The set itself carries the same TTL as
	// the longest-lived session, refreshed on every login.
	pipe := repository.client.Pipeline()
	pipe.SAdd(context, userSessionsKey(session.UserID), session.TokenHash)
	pipe.Expire(context, userSessionsKey(session.UserID), ttl)
	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_index_failed: %w", err)
	}

	return nil
}

// FindByTokenHash returns apperr.SessionExpired when the session is absent,
// which covers expiry, revocation, and never-existed alike.
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.SessionExpired()
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	session.TokenHash = tokenHash

	return session, nil
}

func (repository *RedisSessionRepository) Revoke(context context.Context, tokenHash string) error {
	session, err := repository.FindByTokenHash(context, tokenHash)
	if err != nil {
		// Already gone; revocation is idempotent.
		return nil
	}

	pipe := repository.client.Pipeline()
	pipe.Del(context, sessionKey(tokenHash))
	pipe.SRem(context, userSessionsKey(session.UserID), tokenHash)
	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}

	return nil
}

func (repository *RedisSessionRepository) RevokeAll(context context.Context, userID string) error {
	hashes, err := repository.client.SMembers(context, userSessionsKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("redis_session_revoke_all_failed: %w", err)
	}

	pipe := repository.client.Pipeline()
	for _, hash := range hashes {
		pipe.Del(context, sessionKey(hash))
	}
	pipe.Del(context, userSessionsKey(userID))
	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_session_revoke_all_failed: %w", err)
	}

	return nil
}
