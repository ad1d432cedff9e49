package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/coworking-space-booking/internal/booking"
)

// DraftStore keeps one booking draft per session between requests.  It does
// not arbitrate seats across sessions: two sessions may hold the same seat
// for the same slot.
type DraftStore interface {
	Load(ctx context.Context, sessionID string) (booking.Draft, error)
	Save(ctx context.Context, sessionID string, d booking.Draft) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisDraftStore stores drafts as JSON under "<prefix>:<sessionID>".
type RedisDraftStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisDraftStore returns a Redis backed store; ttl bounds how long an
// untouched draft survives.
func NewRedisDraftStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisDraftStore {
	if prefix == "" {
		prefix = "draft"
	}
	return &RedisDraftStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisDraftStore) key(sessionID string) string { return s.prefix + ":" + sessionID }

func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (booking.Draft, error) {
	bs, err := s.rdb.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return booking.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return booking.Draft{}, fmt.Errorf("load draft: %w", err)
	}
	var d booking.Draft
	if err := json.Unmarshal(bs, &d); err != nil {
		return booking.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, d booking.Draft) error {
	bs, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sessionID), bs, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// MemoryDraftStore is the fallback used when Redis is not reachable.  Drafts
// live only as long as the process.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]memoryDraft
	ttl    time.Duration
	now    func() time.Time
	// nextSweep is when Save next drops expired drafts of sessions that
	// never came back.
	nextSweep time.Time
}

type memoryDraft struct {
	draft   booking.Draft
	expires time.Time
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]memoryDraft), ttl: ttl, now: time.Now}
}

func (s *MemoryDraftStore) Load(_ context.Context, sessionID string) (booking.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	md, ok := s.drafts[sessionID]
	if !ok {
		return booking.Draft{}, ErrDraftNotFound
	}
	if s.ttl > 0 && !s.now().Before(md.expires) {
		delete(s.drafts, sessionID)
		return booking.Draft{}, ErrDraftNotFound
	}
	return copyDraft(md.draft), nil
}

func (s *MemoryDraftStore) Save(_ context.Context, sessionID string, d booking.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if s.ttl > 0 && !now.Before(s.nextSweep) {
		for id, md := range s.drafts {
			if !now.Before(md.expires) {
				delete(s.drafts, id)
			}
		}
		s.nextSweep = now.Add(s.ttl)
	}
	s.drafts[sessionID] = memoryDraft{draft: copyDraft(d), expires: now.Add(s.ttl)}
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

func copyDraft(d booking.Draft) booking.Draft {
	seats := make([]string, len(d.Seats))
	copy(seats, d.Seats)
	d.Seats = seats
	return d
}
