package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pet-behavior-diary/internal/domain/observations"
	"pet-behavior-diary/internal/domain/timewindow"
)

// storedTimeLayout imita cómo serializa created_at el storage real
// (espacio en vez de `T`, offset pelado de dos dígitos). El parser del
// dominio tolera esta forma.
const storedTimeLayout = "2006-01-02 15:04:05.999999-07"

type observationRepo struct {
	mu   sync.RWMutex
	recs []observations.Record
	now  func() time.Time
}

func NewObservationRepo() observations.Repository {
	return &observationRepo{
		now: time.Now,
	}
}

func (r *observationRepo) Create(ctx context.Context, rec observations.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("observation id required")
	}

	// created_at lo asigna el store al escribir; nunca se muta después.
	rec.CreatedAt = r.now().UTC().Format(storedTimeLayout)

	r.recs = append(r.recs, rec)
	return nil
}

func (r *observationRepo) ListByWindow(ctx context.Context, ownerUserID, petID string, w timewindow.Window) ([]observations.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type parsed struct {
		rec observations.Record
		at  time.Time
	}

	hits := make([]parsed, 0)
	for _, rec := range r.recs {
		if rec.OwnerUserID != ownerUserID || rec.PetID != petID {
			continue
		}
		at, ok := observations.ParseStoredTime(rec.CreatedAt)
		if !ok {
			continue
		}
		if !w.Contains(at) {
			continue
		}
		hits = append(hits, parsed{rec: rec, at: at})
	}

	// Más reciente primero, igual que el store real.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].at.After(hits[j].at)
	})

	out := make([]observations.Record, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.rec)
	}
	return out, nil
}
