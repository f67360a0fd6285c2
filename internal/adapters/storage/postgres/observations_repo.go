package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-behavior-diary/internal/domain/observations"
	"pet-behavior-diary/internal/domain/timewindow"
)

type ObservationsRepo struct {
	db *sql.DB
}

func NewObservationsRepo(db *sql.DB) *ObservationsRepo {
	return &ObservationsRepo{db: db}
}

// Create persiste la observación. created_at lo asigna la base
// (DEFAULT now()), no el proceso: es la fuente monotónica de verdad.
func (r *ObservationsRepo) Create(ctx context.Context, rec observations.Record) error {
	var note any
	if n := strings.TrimSpace(rec.ActivityNote); n != "" {
		note = n
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_observations (
			id, owner_user_id, pet_id,
			category,
			positive_score, active_score,
			activity_note
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.PetID,
		string(rec.Category),
		rec.PositiveScore,
		rec.ActiveScore,
		note,
	)
	return err
}

// ListByWindow trae las observaciones de [w.Start, w.End) más recientes
// primero. created_at sale como texto (created_at::text): la forma exacta
// depende del tipo de columna y del driver, por eso el dominio normaliza
// con ParseStoredTime en vez de asumir un layout.
func (r *ObservationsRepo) ListByWindow(ctx context.Context, ownerUserID, petID string, w timewindow.Window) ([]observations.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id, pet_id,
			category,
			positive_score, active_score,
			activity_note,
			created_at::text
		FROM pet_observations
		WHERE owner_user_id = $1
		  AND pet_id = $2
		  AND created_at >= $3
		  AND created_at < $4
		ORDER BY created_at DESC
	`, ownerUserID, petID, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]observations.Record, 0)
	for rows.Next() {
		var rec observations.Record
		var category string
		var note sql.NullString

		if err := rows.Scan(
			&rec.ID,
			&rec.OwnerUserID,
			&rec.PetID,
			&category,
			&rec.PositiveScore,
			&rec.ActiveScore,
			&note,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		rec.Category = observations.Category(category)
		if note.Valid {
			rec.ActivityNote = note.String
		}

		out = append(out, rec)
	}

	return out, rows.Err()
}
