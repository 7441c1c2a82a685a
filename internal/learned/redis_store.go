package learned

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/solintent/engine/internal/intent"
)

const redisListKey = "learned:records"
const lockName = "learned:write-lock"

// RedisStore keeps the whole record list as one JSON blob in Redis and
// serializes the read-modify-write Save cycle with a redsync
// distributed lock, generalizing FileStore's single-process mutex to a
// fleet of engine processes sharing one Redis — the multi-process
// analogue of §5's "concurrent readers, serialized writers" rule.
// Grounded on the teacher's declared github.com/go-redsync/redsync/v4
// dependency, otherwise unused in the retrieval pack's visible files.
type RedisStore struct {
	rdb *redis.Client
	rs  *redsync.Redsync
}

// NewRedisStore builds a store against an already-connected client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	pool := goredis.NewPool(rdb)
	return &RedisStore{rdb: rdb, rs: redsync.New(pool)}
}

func (s *RedisStore) load(ctx context.Context) ([]intent.LearnedPattern, error) {
	raw, err := s.rdb.Get(ctx, redisListKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var records []intent.LearnedPattern
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, nil // corrupt blob: behave like a cold start, same as FileStore
	}
	return records, nil
}

func (s *RedisStore) Lookup(ctx context.Context, prompt string) (*intent.ParsedIntent, bool, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, false, err
	}
	result, ok := lookupInRecords(records, prompt)
	return result, ok, nil
}

func (s *RedisStore) Save(ctx context.Context, raw string, result intent.ParsedIntent) error {
	mutex := s.rs.NewMutex(lockName, redsync.WithExpiry(10*time.Second))
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer mutex.UnlockContext(ctx)

	records, err := s.load(ctx)
	if err != nil {
		return err
	}
	normalized := Normalize(raw)
	for _, r := range records {
		if r.NormalizedKey == normalized {
			return nil
		}
	}
	records = append(records, intent.LearnedPattern{RawPrompt: raw, NormalizedKey: normalized, Result: result})

	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisListKey, blob, 0).Err()
}
