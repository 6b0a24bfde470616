// Package services – audit helper
//
// Shared best-effort audit recording used by every service. A failed audit
// write never fails the operation it describes: the mutation has already
// been persisted to the document, so the failure is logged and dropped.
package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nutrigenlab/go-report-backend/internal/repo"
)

// recordAudit writes one audit row when a DB handle is configured.
func recordAudit(ctx context.Context, db *gorm.DB, act Actor, action, entity, entityID, detail string) {
	if db == nil {
		return
	}
	if _, err := repo.CreateAuditEntry(ctx, db, act.ID, action, entity, entityID, detail, act.RequestID); err != nil {
		log.Warn().
			Err(err).
			Str("action", action).
			Str("entity", entity).
			Str("entity_id", entityID).
			Msg("audit write failed")
	}
}
