package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"huduma_finder/internal/domain"
)

// SessionStore keeps conversation sessions in redis as JSON values.
// Every Put refreshes the TTL, so a session expires only after the
// user has been silent for the whole window.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewSessionStore(addr, pass string, db, ttlSec int) *SessionStore {
	return &SessionStore{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		ttl: time.Duration(ttlSec) * time.Second,
	}
}

func sessionKey(id string) string { return "session:" + id }

func (s *SessionStore) Get(ctx context.Context, id string) (domain.Session, bool, error) {
	v, err := s.c.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	var sess domain.Session
	if err := json.Unmarshal(v, &sess); err != nil {
		// A corrupt payload is treated as absent so the conversation
		// can restart instead of erroring forever.
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

func (s *SessionStore) Put(ctx context.Context, id string, sess domain.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, sessionKey(id), b, s.ttl).Err()
}
