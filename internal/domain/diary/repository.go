package diary

import (
	"context"
	"errors"

	"pet-behavior-diary/internal/domain/timewindow"
)

var (
	ErrNotFound = errors.New("diary entry not found")
)

type Repository interface {
	// GetByDate devuelve la entrada de (owner, pet, fecha) o ErrNotFound.
	GetByDate(ctx context.Context, ownerUserID, petID string, date timewindow.Date) (Entry, error)

	// Upsert inserta o reemplaza la entrada de su (owner, pet, fecha).
	// Replace-on-conflict: requests concurrentes duplicados terminan en
	// last-writer-wins, que es aceptable aquí.
	Upsert(ctx context.Context, e Entry) error

	// DeleteByDate borra la entrada si existe. Borrar algo inexistente
	// no es error.
	DeleteByDate(ctx context.Context, ownerUserID, petID string, date timewindow.Date) error
}
