package lobby

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"

	"github.com/eskrenkovic/tql"
)

// PostgresRepository persists whole lobby snapshots as jsonb rows, one per
// code, with a version column guarding concurrent writes and an expires_at
// column the store's retention sweep works off.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db}
}

var _ Repository = (*PostgresRepository)(nil)

type lobbyRow struct {
	Code     string `db:"code"`
	Snapshot []byte `db:"snapshot"`
	Version  int64  `db:"version"`
}

func (r *PostgresRepository) Get(ctx context.Context, code string) (domain.Lobby, int64, error) {
	const query = `
		SELECT
			code, snapshot, version
		FROM
			lobby
		WHERE
			code = $1 AND expires_at > now();`

	row, err := tql.QueryFirst[lobbyRow](ctx, r.db, query, code)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Lobby{}, 0, domain.ErrNotFound
	case err != nil:
		return domain.Lobby{}, 0, storeErr(err)
	}

	var l domain.Lobby
	if err := json.Unmarshal(row.Snapshot, &l); err != nil {
		return domain.Lobby{}, 0, storeErr(err)
	}

	return l, row.Version, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, l domain.Lobby) error {
	snapshot, err := json.Marshal(l)
	if err != nil {
		return err
	}

	// An expired row still occupies its code until swept - treat overwriting
	// it as a fresh insert.
	const stmt = `
		INSERT INTO
			lobby (code, snapshot, version, expires_at)
		VALUES
			($1, $2, 1, now() + $3 * interval '1 second')
		ON CONFLICT (code) DO UPDATE SET
			snapshot = EXCLUDED.snapshot,
			version = 1,
			expires_at = EXCLUDED.expires_at
		WHERE
			lobby.expires_at <= now();`

	result, err := tql.Exec(ctx, r.db, stmt, l.Code, snapshot, SessionTTLSeconds)
	if err != nil {
		return storeErr(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr(err)
	}

	if affected == 0 {
		return ErrCodeTaken
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, l domain.Lobby, expectedVersion int64) error {
	snapshot, err := json.Marshal(l)
	if err != nil {
		return err
	}

	const stmt = `
		UPDATE
			lobby
		SET
			snapshot = $2,
			version = version + 1,
			expires_at = now() + $3 * interval '1 second'
		WHERE
			code = $1 AND version = $4 AND expires_at > now();`

	result, err := tql.Exec(ctx, r.db, stmt, l.Code, snapshot, SessionTTLSeconds, expectedVersion)
	if err != nil {
		return storeErr(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr(err)
	}

	if affected == 1 {
		return nil
	}

	// Zero rows means either the lobby is gone or another writer bumped the
	// version first.
	exists, err := r.Exists(ctx, l.Code)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return ErrVersionConflict
}

func (r *PostgresRepository) Delete(ctx context.Context, code string) error {
	const stmt = `DELETE FROM lobby WHERE code = $1;`
	if _, err := tql.Exec(ctx, r.db, stmt, code); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT count(*) FROM lobby WHERE code = $1 AND expires_at > now();`

	count, err := tql.QueryFirst[int64](ctx, r.db, query, code)
	if err != nil {
		return false, storeErr(err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) Touch(ctx context.Context, code string) error {
	const stmt = `
		UPDATE
			lobby
		SET
			expires_at = now() + $2 * interval '1 second'
		WHERE
			code = $1 AND expires_at > now();`

	if _, err := tql.Exec(ctx, r.db, stmt, code, SessionTTLSeconds); err != nil {
		return storeErr(err)
	}
	return nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrRepositoryUnavailable, err)
}
