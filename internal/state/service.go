// Package state stores and serves whole-team snapshots so clients can
// sync their local data across devices. Snapshots are opaque JSON kept
// in redis under state:<teamId>; writes are guarded by a shared-secret
// token when one is configured.
package state

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTeamIDRequired = errors.New("team_id is required")
	ErrStateRequired  = errors.New("state is required")
	ErrUnauthorized   = errors.New("invalid write token")
	ErrNotConfigured  = errors.New("snapshot store is not configured")
)

type Service struct {
	redis      *redis.Client
	writeToken string
}

func NewService(redisClient *redis.Client, writeToken string) *Service {
	return &Service{redis: redisClient, writeToken: writeToken}
}

func stateKey(teamID string) string {
	return "state:" + teamID
}

// Load returns the stored snapshot for a team, or nil JSON when the
// team has never saved one.
func (s *Service) Load(ctx context.Context, teamID string) (json.RawMessage, error) {
	if teamID == "" {
		return nil, ErrTeamIDRequired
	}
	if s.redis == nil {
		return nil, ErrNotConfigured
	}

	raw, err := s.redis.Get(ctx, stateKey(teamID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// Save overwrites the team's snapshot. The token is compared in
// constant time; an empty configured token disables the check.
func (s *Service) Save(ctx context.Context, teamID string, snapshot json.RawMessage, token string) error {
	if teamID == "" {
		return ErrTeamIDRequired
	}
	if len(snapshot) == 0 {
		return ErrStateRequired
	}
	if s.writeToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.writeToken)) != 1 {
		return ErrUnauthorized
	}
	if s.redis == nil {
		return ErrNotConfigured
	}

	return s.redis.Set(ctx, stateKey(teamID), []byte(snapshot), 0).Err()
}
