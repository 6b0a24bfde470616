// Package domain defines the report document model plus the operational
// records kept in SQLite alongside it. These types are mapped with GORM.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Audit action verbs recorded by the services.
const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionReorder = "reorder"
	AuditActionScore   = "score"
	AuditActionReplace = "replace"
	AuditActionUpload  = "upload"
)

// AuditEntry records one state-changing admin operation against the report
// document. The document itself carries no history (last writer wins), so
// the audit trail is the only way to reconstruct who changed what.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Actor: identifier of the administrator (indexed).
//   - Action: verb, one of the AuditAction* constants.
//   - Entity: what was touched ("field", "category", "result", "document",
//     "upload").
//   - EntityID: slug/name of the touched entity, empty for document-wide ops.
//   - Detail: short human-readable summary of the change.
//   - RequestID: correlation id propagated from the HTTP layer.
//   - CreatedAt: timestamp managed by GORM.
//   - DeletedAt: soft deletion marker (audit rows are never hard-deleted).
type AuditEntry struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Actor     string         `json:"actor"      gorm:"type:varchar(64);not null;index:idx_audit_actor"`
	Action    string         `json:"action"     gorm:"type:varchar(16);not null"`
	Entity    string         `json:"entity"     gorm:"type:varchar(32);not null;index:idx_audit_entity,priority:1"`
	EntityID  string         `json:"entity_id"  gorm:"type:varchar(128);index:idx_audit_entity,priority:2"`
	Detail    string         `json:"detail"     gorm:"type:text"`
	RequestID string         `json:"request_id" gorm:"type:char(36)"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for AuditEntry.
func (AuditEntry) TableName() string { return "audit_entries" }
