package observations

import (
	"context"

	"pet-behavior-diary/internal/domain/timewindow"
)

type Repository interface {
	// Create persiste la observación. El store asigna created_at al
	// escribir; el valor del campo en r se ignora.
	Create(ctx context.Context, r Record) error

	// ListByWindow devuelve las observaciones de (owner, pet) con
	// created_at en [w.Start, w.End), ordenadas descendente por tiempo.
	ListByWindow(ctx context.Context, ownerUserID, petID string, w timewindow.Window) ([]Record, error)
}
