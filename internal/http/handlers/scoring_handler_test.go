package handlers

import (
	"net/http"
	"testing"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

func TestSubmitScores(t *testing.T) {
	env := newEnv(t, false)

	w := env.doJSON(t, http.MethodPost, "/results", SubmitScoresRequest{
		Scores: map[string]int{
			"lactose_sensitivity": 2,
			"fat_sensitivity":     8,
			"ghost_field":         5,
		},
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp SubmitScoresResponse
	decode(t, w, &resp)
	if resp.Written != 2 {
		t.Fatalf("written = %d", resp.Written)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0] != "ghost_field" {
		t.Fatalf("skipped = %v", resp.Skipped)
	}
	if resp.Replayed {
		t.Fatalf("fresh batch must not report replayed")
	}

	doc, _ := env.store.Load()
	if r := doc.Result("fat_sensitivity"); r == nil || r.Level != domain.LevelHigh {
		t.Fatalf("fat result = %+v", r)
	}
}

func TestSubmitScores_Validation(t *testing.T) {
	env := newEnv(t, false)

	// Missing and empty score maps both fail binding.
	w := env.doJSON(t, http.MethodPost, "/results", map[string]any{}, nil)
	wantError(t, w, http.StatusBadRequest, ErrCodeBadRequest)

	w = env.doJSON(t, http.MethodPost, "/results", map[string]any{"scores": map[string]int{}}, nil)
	wantError(t, w, http.StatusBadRequest, ErrCodeBadRequest)
}

func TestSubmitScores_IdempotentReplay(t *testing.T) {
	env := newEnv(t, true)
	headers := map[string]string{"Idempotency-Key": "batch-2024-01"}
	body := SubmitScoresRequest{Scores: map[string]int{"lactose_sensitivity": 9}}

	w := env.doJSON(t, http.MethodPost, "/results", body, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("first status = %d, body %s", w.Code, w.Body.String())
	}
	var first SubmitScoresResponse
	decode(t, w, &first)
	if first.Replayed {
		t.Fatalf("first call must not be a replay")
	}

	// Same actor, same key: short-circuits without re-scoring.
	w = env.doJSON(t, http.MethodPost, "/results", body, headers)
	var second SubmitScoresResponse
	decode(t, w, &second)
	if !second.Replayed || second.Written != first.Written {
		t.Fatalf("replay = %+v, first = %+v", second, first)
	}

	// A different actor with the same key runs the batch for real.
	w = env.doJSON(t, http.MethodPost, "/results", body, map[string]string{
		"Idempotency-Key": "batch-2024-01",
		"X-User-ID":       "other-admin",
	})
	var third SubmitScoresResponse
	decode(t, w, &third)
	if third.Replayed {
		t.Fatalf("different actor must not hit the replay record")
	}
}

func TestDeleteResult(t *testing.T) {
	env := newEnv(t, false)

	w := env.doJSON(t, http.MethodDelete, "/results/caffeine_sensitivity", nil, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	// Absent results are still a 204.
	w = env.doJSON(t, http.MethodDelete, "/results/never_scored", nil, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestDeleteAllResults(t *testing.T) {
	env := newEnv(t, false)

	w := env.doJSON(t, http.MethodDelete, "/results", nil, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	doc, _ := env.store.Load()
	if len(doc.PatientDietAnalysisResults) != 0 {
		t.Fatalf("results remain: %d", len(doc.PatientDietAnalysisResults))
	}
}
