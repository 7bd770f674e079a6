package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// PGSource loads the catalog from the services table, ordered by position.
type PGSource struct {
	DB *sql.DB
}

// Load reads every service row. NULL columns default exactly like empty
// spreadsheet cells.
func (s *PGSource) Load(ctx context.Context) (*Catalog, error) {
	const query = `
SELECT position, name, gender, min_age, max_age, skin_type, skin_problem, price, base_score, notes
FROM services
ORDER BY position ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var (
			position    int
			name        string
			gender      sql.NullString
			minAge      sql.NullInt64
			maxAge      sql.NullInt64
			skinType    sql.NullString
			skinProblem sql.NullString
			price       sql.NullFloat64
			baseScore   sql.NullFloat64
			notes       sql.NullString
		)
		if err := rows.Scan(
			&position,
			&name,
			&gender,
			&minAge,
			&maxAge,
			&skinType,
			&skinProblem,
			&price,
			&baseScore,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		out = append(out, Row{
			ColumnName:        name,
			ColumnGender:      nullString(gender),
			ColumnMinAge:      nullInt(minAge),
			ColumnMaxAge:      nullInt(maxAge),
			ColumnSkinType:    nullString(skinType),
			ColumnSkinProblem: nullString(skinProblem),
			ColumnPrice:       nullFloat(price),
			ColumnBaseScore:   nullFloat(baseScore),
			ColumnNotes:       nullString(notes),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return New(AllColumns, out)
}

// PGWriter stores a catalog in the services table. Text columns keep the
// source spelling so a reload shows what the file showed.
type PGWriter struct {
	DB *sql.DB
}

// Replace swaps the table contents for cat in a single transaction.
func (w *PGWriter) Replace(ctx context.Context, cat *Catalog) (err error) {
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM services`); err != nil {
		return fmt.Errorf("clear services: %w", err)
	}

	const insert = `
INSERT INTO services (
    position,
    name,
    gender,
    min_age,
    max_age,
    skin_type,
    skin_problem,
    price,
    base_score,
    notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, svc := range cat.Services() {
		if _, err = tx.ExecContext(
			ctx,
			insert,
			svc.Position,
			svc.Name,
			svc.RawGender,
			svc.MinAge,
			svc.MaxAge,
			svc.RawSkinType,
			svc.RawSkinProblem,
			svc.Price,
			svc.BaseScore,
			svc.Notes,
		); err != nil {
			return fmt.Errorf("insert service %q: %w", svc.Name, err)
		}
	}
	return tx.Commit()
}

func nullString(v sql.NullString) any {
	if !v.Valid {
		return nil
	}
	return v.String
}

func nullInt(v sql.NullInt64) any {
	if !v.Valid {
		return nil
	}
	return v.Int64
}

func nullFloat(v sql.NullFloat64) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

var _ Source = (*PGSource)(nil)
