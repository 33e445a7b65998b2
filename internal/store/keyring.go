// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
)

// keyRing is the SQLite-backed implementation of [KeyStore].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with structured
// fields. Armored key material itself is never logged.
type keyRing struct {
	*DB
	logger *logger.Logger
}

// NewKeyRing constructs a [KeyStore] backed by the provided database
// connection.
func NewKeyRing(db *DB, logger *logger.Logger) KeyStore {
	return &keyRing{DB: db, logger: logger}
}

func (k *keyRing) PutPublicKey(ctx context.Context, record models.PublicKeyRecord) error {
	return k.upsert(ctx, record.TableName(), map[string]any{
		"handle":      record.Handle,
		"armored_key": record.ArmoredKey,
		"fingerprint": record.Fingerprint,
	})
}

func (k *keyRing) GetPublicKey(ctx context.Context, handle string) (models.PublicKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("handle", "armored_key", "fingerprint", "created_at").
		From(models.PublicKeyRecord{}.TableName()).
		Where(sq.Eq{"handle": handle}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRing.GetPublicKey").Msg("failed to build query")
		return models.PublicKeyRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var record models.PublicKeyRecord
	row := k.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.Handle, &record.ArmoredKey, &record.Fingerprint, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PublicKeyRecord{}, fmt.Errorf("%w: %s", ErrKeyNotFound, handle)
		}
		log.Err(err).Str("func", "keyRing.GetPublicKey").Str("handle", handle).Msg("failed to scan row")
		return models.PublicKeyRecord{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return record, nil
}

func (k *keyRing) ListPublicKeys(ctx context.Context) ([]models.PublicKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("handle", "armored_key", "fingerprint", "created_at").
		From(models.PublicKeyRecord{}.TableName()).
		OrderBy("handle").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRing.ListPublicKeys").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := k.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyRing.ListPublicKeys").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.PublicKeyRecord
	for rows.Next() {
		var record models.PublicKeyRecord
		if err = rows.Scan(&record.Handle, &record.ArmoredKey, &record.Fingerprint, &record.CreatedAt); err != nil {
			log.Err(err).Str("func", "keyRing.ListPublicKeys").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return records, nil
}

func (k *keyRing) DeletePublicKey(ctx context.Context, handle string) error {
	return k.delete(ctx, models.PublicKeyRecord{}.TableName(), handle)
}

func (k *keyRing) PutPrivateKey(ctx context.Context, record models.PrivateKeyRecord) error {
	return k.upsert(ctx, record.TableName(), map[string]any{
		"handle":      record.Handle,
		"armored_key": record.ArmoredKey,
		"public_key":  record.PublicKey,
		"fingerprint": record.Fingerprint,
	})
}

func (k *keyRing) GetPrivateKey(ctx context.Context, handle string) (models.PrivateKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("handle", "armored_key", "public_key", "fingerprint", "created_at").
		From(models.PrivateKeyRecord{}.TableName()).
		Where(sq.Eq{"handle": handle}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRing.GetPrivateKey").Msg("failed to build query")
		return models.PrivateKeyRecord{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var record models.PrivateKeyRecord
	row := k.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.Handle, &record.ArmoredKey, &record.PublicKey, &record.Fingerprint, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PrivateKeyRecord{}, fmt.Errorf("%w: %s", ErrKeyNotFound, handle)
		}
		log.Err(err).Str("func", "keyRing.GetPrivateKey").Str("handle", handle).Msg("failed to scan row")
		return models.PrivateKeyRecord{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return record, nil
}

func (k *keyRing) ListPrivateKeys(ctx context.Context) ([]models.PrivateKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("handle", "armored_key", "public_key", "fingerprint", "created_at").
		From(models.PrivateKeyRecord{}.TableName()).
		OrderBy("handle").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRing.ListPrivateKeys").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := k.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyRing.ListPrivateKeys").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.PrivateKeyRecord
	for rows.Next() {
		var record models.PrivateKeyRecord
		if err = rows.Scan(&record.Handle, &record.ArmoredKey, &record.PublicKey, &record.Fingerprint, &record.CreatedAt); err != nil {
			log.Err(err).Str("func", "keyRing.ListPrivateKeys").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return records, nil
}

func (k *keyRing) DeletePrivateKey(ctx context.Context, handle string) error {
	return k.delete(ctx, models.PrivateKeyRecord{}.TableName(), handle)
}

func (k *keyRing) Close() error {
	return k.DB.Close()
}

// upsert inserts a keyring row, replacing any existing row for the same
// handle. created_at is refreshed on replace so it reflects the latest
// import.
func (k *keyRing) upsert(ctx context.Context, table string, columns map[string]any) error {
	log := logger.FromContext(ctx)

	columns["created_at"] = time.Now().UTC()

	query, args, err := sq.Insert(table).
		SetMap(columns).
		Suffix("ON CONFLICT(handle) DO UPDATE SET " + upsertAssignments(columns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRing.upsert").Str("table", table).Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := k.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyRing.upsert").Str("table", table).Msg("failed to execute query")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "keyRing.upsert").Str("table", table).Msg("key was not saved")
		return ErrKeyNotSaved
	}

	return nil
}

func (k *keyRing) delete(ctx context.Context, table string, handle string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(table).Where(sq.Eq{"handle": handle}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "keyRing.delete").Str("table", table).Msg("failed to build query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	result, err := k.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "keyRing.delete").Str("table", table).Msg("failed to execute query")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, handle)
	}

	return nil
}

// upsertAssignments renders the DO UPDATE SET clause for the non-key
// columns of an upsert.
func upsertAssignments(columns map[string]any) string {
	assignments := ""
	for _, column := range []string{"armored_key", "public_key", "fingerprint", "created_at"} {
		if _, ok := columns[column]; !ok {
			continue
		}
		if assignments != "" {
			assignments += ", "
		}
		assignments += column + " = excluded." + column
	}
	return assignments
}
