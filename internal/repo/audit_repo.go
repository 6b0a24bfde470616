// Package repo implements the SQLite persistence layer for operational
// records, backed by GORM. This file provides repository functions for the
// AuditEntry model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateAuditEntry inserts a new audit row. The entry ID is a randomly
// generated UUID (string), and CreatedAt is set to UTC.
func CreateAuditEntry(ctx context.Context, db *gorm.DB, actor, action, entity, entityID, detail, requestID string) (*domain.AuditEntry, error) {
	e := &domain.AuditEntry{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
		RequestID: requestID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// CountAuditEntries returns the total number of audit rows.
func CountAuditEntries(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.AuditEntry{}).
		Count(&total).Error
	return total, err
}

// ListAuditPage returns a paginated slice of audit entries, most recent
// first. Use CountAuditEntries to obtain the total for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListAuditPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.AuditEntry, error) {
	var out []domain.AuditEntry
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// AuditStats returns aggregate metadata for the audit trail: the total number
// of rows and the maximum CreatedAt timestamp among them. The HTTP layer uses
// this pair to build a weak ETag for conditional GET /audit responses.
//
// When the trail is empty, the returned count is 0 and maxCreatedAt is nil.
func AuditStats(ctx context.Context, db *gorm.DB) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.AuditEntry{})

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
