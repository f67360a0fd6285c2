package postgres

import (
	"context"
	"database/sql"

	"pet-behavior-diary/internal/domain/diary"
	"pet-behavior-diary/internal/domain/timewindow"
)

type DiariesRepo struct {
	db *sql.DB
}

func NewDiariesRepo(db *sql.DB) *DiariesRepo {
	return &DiariesRepo{db: db}
}

func (r *DiariesRepo) GetByDate(ctx context.Context, ownerUserID, petID string, date timewindow.Date) (diary.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, content, created_at, updated_at
		FROM pet_diaries
		WHERE owner_user_id = $1
		  AND pet_id = $2
		  AND diary_date = $3
	`, ownerUserID, petID, date.String())

	e := diary.Entry{
		OwnerUserID: ownerUserID,
		PetID:       petID,
		DiaryDate:   date,
	}
	if err := row.Scan(&e.ID, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return diary.Entry{}, diary.ErrNotFound
		}
		return diary.Entry{}, err
	}

	return e, nil
}

// Upsert descansa en el unique (owner_user_id, pet_id, diary_date):
// transiciones created/regenerated concurrentes para la misma key terminan
// en last-writer-wins, nunca en filas duplicadas.
func (r *DiariesRepo) Upsert(ctx context.Context, e diary.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_diaries (
			id, owner_user_id, pet_id,
			diary_date, content,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (owner_user_id, pet_id, diary_date)
		DO UPDATE SET
			content    = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
	`,
		e.ID,
		e.OwnerUserID,
		e.PetID,
		e.DiaryDate.String(),
		e.Content,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *DiariesRepo) DeleteByDate(ctx context.Context, ownerUserID, petID string, date timewindow.Date) error {
	// Borrar algo inexistente no es error: el caller solo quiere
	// garantizar ausencia antes de regenerar.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM pet_diaries
		WHERE owner_user_id = $1
		  AND pet_id = $2
		  AND diary_date = $3
	`, ownerUserID, petID, date.String())
	return err
}
