package postgres

import (
	"context"
	"database/sql"
	"strings"

	"insulin-worksheet/internal/domain/followups"
)

type FollowUpsRepo struct {
	db *sql.DB
}

func NewFollowUpsRepo(db *sql.DB) *FollowUpsRepo {
	return &FollowUpsRepo{db: db}
}

func (r *FollowUpsRepo) Create(ctx context.Context, f followups.FollowUp) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO worksheet_followups (
			id, worksheet_id, recorded_by,
			seen_at, fasting_mg_dl, adjusted_total_units, note,
			status, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		f.ID,
		f.WorksheetID,
		f.RecordedBy,
		f.SeenAt,
		f.FastingMgDL,
		toNullFloat(f.AdjustedTotalUnits),
		f.Note,
		string(f.Status),
		f.RecordedAt,
	)
	return err
}

func (r *FollowUpsRepo) GetByID(ctx context.Context, id string) (followups.FollowUp, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return followups.FollowUp{}, followups.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, worksheet_id, recorded_by,
			seen_at, fasting_mg_dl, adjusted_total_units, note,
			status, recorded_at
		FROM worksheet_followups
		WHERE id = $1
	`, id)

	f, err := scanFollowUp(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return followups.FollowUp{}, followups.ErrNotFound
		}
		return followups.FollowUp{}, err
	}
	return f, nil
}

func (r *FollowUpsRepo) ListByWorksheet(ctx context.Context, worksheetID string) ([]followups.FollowUp, error) {
	worksheetID = strings.TrimSpace(worksheetID)
	if worksheetID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, worksheet_id, recorded_by,
			seen_at, fasting_mg_dl, adjusted_total_units, note,
			status, recorded_at
		FROM worksheet_followups
		WHERE worksheet_id = $1
		ORDER BY seen_at ASC
	`, worksheetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]followups.FollowUp, 0)
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, rows.Err()
}

func (r *FollowUpsRepo) Void(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE worksheet_followups
		SET status = $2
		WHERE id = $1
	`, id, string(followups.StatusVoided))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return followups.ErrNotFound
	}
	return nil
}

func scanFollowUp(row rowScanner) (followups.FollowUp, error) {
	var f followups.FollowUp
	var status string
	var adjusted sql.NullFloat64

	if err := row.Scan(
		&f.ID,
		&f.WorksheetID,
		&f.RecordedBy,
		&f.SeenAt,
		&f.FastingMgDL,
		&adjusted,
		&f.Note,
		&status,
		&f.RecordedAt,
	); err != nil {
		return followups.FollowUp{}, err
	}

	f.Status = followups.Status(status)
	if adjusted.Valid {
		v := adjusted.Float64
		f.AdjustedTotalUnits = &v
	}

	return f, nil
}

// adjusted_total_units es nullable (nil = la revisión no ajustó la dosis)
func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
