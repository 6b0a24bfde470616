package repo

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestIdempotency_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rec, err := CreateIdempotency(ctx, db, "demo-admin", "batch-score", "key-1", 3, http.StatusOK, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.Written != 3 || rec.Status != http.StatusOK {
		t.Fatalf("record = %+v", rec)
	}

	got, err := GetIdempotency(ctx, db, "demo-admin", "batch-score", "key-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if got.ID != rec.ID || got.Written != 3 {
		t.Fatalf("fetched = %+v", got)
	}
}

func TestIdempotency_KeyedByActorScopeKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := CreateIdempotency(ctx, db, "alice", "batch-score", "key-1", 1, http.StatusOK, time.Hour); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same key for a different actor or a different scope is a distinct record.
	if _, err := CreateIdempotency(ctx, db, "bob", "batch-score", "key-1", 2, http.StatusOK, time.Hour); err != nil {
		t.Fatalf("other actor: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "alice", "other-scope", "key-1", 3, http.StatusOK, time.Hour); err != nil {
		t.Fatalf("other scope: %v", err)
	}

	// The exact same tuple is a duplicate.
	if _, err := CreateIdempotency(ctx, db, "alice", "batch-score", "key-1", 9, http.StatusOK, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("same tuple: got %v, want ErrDuplicate", err)
	}

	if _, err := GetIdempotency(ctx, db, "bob", "batch-score", "key-1", now); err != nil {
		t.Fatalf("bob's record: %v", err)
	}
	if _, err := GetIdempotency(ctx, db, "carol", "batch-score", "key-1", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown actor: got %v, want ErrNotFound", err)
	}
}

func TestIdempotency_Expiry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "demo-admin", "batch-score", "short", 1, http.StatusOK, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Visible now, gone once the lookup clock passes expires_at.
	if _, err := GetIdempotency(ctx, db, "demo-admin", "batch-score", "short", time.Now().UTC()); err != nil {
		t.Fatalf("before expiry: %v", err)
	}
	later := time.Now().UTC().Add(2 * time.Minute)
	if _, err := GetIdempotency(ctx, db, "demo-admin", "batch-score", "short", later); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after expiry: got %v, want ErrNotFound", err)
	}
}

func TestIdempotency_BlankKeyNeverMatches(t *testing.T) {
	db := newTestDB(t)
	if _, err := GetIdempotency(context.Background(), db, "demo-admin", "batch-score", "   ", time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank key: got %v, want ErrNotFound", err)
	}
}
