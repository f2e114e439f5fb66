// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/mediapager/internal/database/query"
	"github.com/tomtom215/mediapager/internal/metrics"
	"github.com/tomtom215/mediapager/internal/models"
)

// writableColumns are every column except the store-assigned id.
var writableColumns = query.MediaColumns[1:]

var (
	insertMediaSQL = fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		query.MediaTable,
		strings.Join(writableColumns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(writableColumns)), ", "),
	)

	updateMediaSQL = fmt.Sprintf(
		"UPDATE %s SET %s = ? WHERE id = ?",
		query.MediaTable,
		strings.Join(writableColumns, " = ?, "),
	)

	selectMediaSQL = fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?",
		strings.Join(query.MediaColumns, ", "),
		query.MediaTable,
	)
)

// mediaArgs returns values in writableColumns order.
func mediaArgs(item *models.MediaItem) []interface{} {
	return []interface{}{
		item.CreatorID,
		item.CreatorName,
		item.Platform,
		item.Status,
		item.Title,
		nullString(item.Description),
		nullInt(item.DurationSeconds),
		nullInt(item.ViewCount),
		nullInt(item.FileSize),
		nullString(item.ThumbnailPath),
		nullString(item.VideoPath),
		nullInt(item.CreatedAt),
		nullInt(item.UpdatedAt),
	}
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(n *int64) interface{} {
	if n == nil {
		return nil
	}
	return *n
}

// CreateMediaItem inserts an item and returns the assigned id. Missing
// timestamps default to the current time. item.ID is updated in place.
func (db *DB) CreateMediaItem(ctx context.Context, item *models.MediaItem) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := time.Now().Unix()
	if item.CreatedAt == nil {
		item.CreatedAt = &now
	}
	if item.UpdatedAt == nil {
		item.UpdatedAt = &now
	}

	start := time.Now()
	var id int64
	err := db.conn.QueryRowContext(ctx, db.rebind(insertMediaSQL), mediaArgs(item)...).Scan(&id)
	metrics.RecordDBQuery("create_media", string(db.dialect), time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to insert media item: %w", err)
	}
	item.ID = id
	return id, nil
}

// InsertMediaItems bulk-inserts items in one transaction, keeping their
// timestamps as given (including NULL). Assigned ids are written back.
func (db *DB) InsertMediaItems(ctx context.Context, items []models.MediaItem) error {
	if len(items) == 0 {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.insertBatch(ctx, items)
	metrics.RecordDBQuery("insert_media_batch", string(db.dialect), time.Since(start), err)
	return err
}

func (db *DB) insertBatch(ctx context.Context, items []models.MediaItem) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // rollback after failure
		}
	}()

	stmt, err := tx.PrepareContext(ctx, db.rebind(insertMediaSQL))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range items {
		var id int64
		if err = stmt.QueryRowContext(ctx, mediaArgs(&items[i])...).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert media item %d: %w", i, err)
		}
		items[i].ID = id
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateMediaItem replaces every writable column of item.ID and returns the
// creator id the row had before the update. updated_at is set to now.
func (db *DB) UpdateMediaItem(ctx context.Context, item *models.MediaItem) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := time.Now().Unix()
	item.UpdatedAt = &now

	start := time.Now()
	previous, err := db.updateMedia(ctx, item)
	metrics.RecordDBQuery("update_media", string(db.dialect), time.Since(start), err)
	return previous, err
}

func (db *DB) updateMedia(ctx context.Context, item *models.MediaItem) (previous int64, err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // rollback after failure
		}
	}()

	err = tx.QueryRowContext(ctx, db.rebind("SELECT creator_id, created_at FROM media_items WHERE id = ?"), item.ID).
		Scan(&previous, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read media item %d: %w", item.ID, err)
	}

	args := append(mediaArgs(item), item.ID)
	if _, err = tx.ExecContext(ctx, db.rebind(updateMediaSQL), args...); err != nil {
		return 0, fmt.Errorf("failed to update media item %d: %w", item.ID, err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return previous, nil
}

// DeleteMediaItem removes an item and returns the creator it belonged to.
func (db *DB) DeleteMediaItem(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var creatorID int64
	err := db.conn.QueryRowContext(ctx, db.rebind("DELETE FROM media_items WHERE id = ? RETURNING creator_id"), id).Scan(&creatorID)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("delete_media", string(db.dialect), time.Since(start), nil)
		return 0, ErrNotFound
	}
	metrics.RecordDBQuery("delete_media", string(db.dialect), time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to delete media item %d: %w", id, err)
	}
	return creatorID, nil
}

// GetMediaItem reads one item by id.
func (db *DB) GetMediaItem(ctx context.Context, id int64) (*models.MediaItem, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var item models.MediaItem
	err := db.conn.QueryRowContext(ctx, db.rebind(selectMediaSQL), id).Scan(
		&item.ID,
		&item.CreatorID,
		&item.CreatorName,
		&item.Platform,
		&item.Status,
		&item.Title,
		&item.Description,
		&item.DurationSeconds,
		&item.ViewCount,
		&item.FileSize,
		&item.ThumbnailPath,
		&item.VideoPath,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media item %d: %w", id, err)
	}
	return &item, nil
}

// CountMediaItems returns the total number of catalogue rows.
func (db *DB) CountMediaItems(ctx context.Context) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM media_items").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count media items: %w", err)
	}
	return n, nil
}
