package memory

import (
	"context"
	"fmt"
	"sync"

	"pet-behavior-diary/internal/domain/diary"
	"pet-behavior-diary/internal/domain/timewindow"
)

type diaryRepo struct {
	mu    sync.RWMutex
	byKey map[string]diary.Entry
}

func NewDiaryRepo() diary.Repository {
	return &diaryRepo{
		byKey: make(map[string]diary.Entry),
	}
}

// diaryKey materializa la unicidad por (owner, pet, fecha).
func diaryKey(ownerUserID, petID string, date timewindow.Date) string {
	return fmt.Sprintf("%s|%s|%s", ownerUserID, petID, date.String())
}

func (r *diaryRepo) GetByDate(ctx context.Context, ownerUserID, petID string, date timewindow.Date) (diary.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byKey[diaryKey(ownerUserID, petID, date)]
	if !ok {
		return diary.Entry{}, diary.ErrNotFound
	}
	return e, nil
}

func (r *diaryRepo) Upsert(ctx context.Context, e diary.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Replace-on-conflict: la última escritura gana.
	r.byKey[diaryKey(e.OwnerUserID, e.PetID, e.DiaryDate)] = e
	return nil
}

func (r *diaryRepo) DeleteByDate(ctx context.Context, ownerUserID, petID string, date timewindow.Date) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byKey, diaryKey(ownerUserID, petID, date))
	return nil
}
