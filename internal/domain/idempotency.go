// Package domain defines the report document model plus the operational
// records kept in SQLite alongside it. These types are mapped with GORM.
package domain

import "time"

// Idempotency represents a recorded outcome of a previously processed
// batch-scoring request, keyed by (actor, scope, key). It enables safe
// retries of POST /results without re-classifying and re-writing the
// document.
type Idempotency struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	Actor     string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_actor_scope_key,priority:1"`
	Scope     string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_actor_scope_key,priority:2"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_actor_scope_key,priority:3"`
	Written   int       `gorm:"type:INTEGER NOT NULL"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
