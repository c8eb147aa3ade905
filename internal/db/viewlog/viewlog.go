package viewlog

import (
	"context"
	"errors"

	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	"expwall/internal/core/domain/viewlog"
	"expwall/internal/db"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const (
	PG_UNIQUE_CONSTRAINT_ERR_CODE      = "23505"
	PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE = "23503"
)

type PgxRepository struct {
	querier db.Querier
}

func NewPgxRepository(querier db.Querier) *PgxRepository {
	if querier == nil {
		panic("Argument querier must not be nil.")
	}
	return &PgxRepository{querier: querier}
}

func (r *PgxRepository) GetByKey(
	ctx context.Context,
	experienceID experience.ID,
	f fingerprint.Fingerprint,
) (log viewlog.ViewLog, err error) {
	row := r.querier.QueryRow(
		ctx,
		`SELECT experience_id, fingerprint, created_at FROM view_log
		 WHERE experience_id = $1 AND fingerprint = $2`,
		string(experienceID),
		string(f),
	)
	log, err = scanViewLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return log, viewlog.ErrViewLogDoesNotExist
	}
	return log, err
}

func (r *PgxRepository) Create(
	ctx context.Context,
	input viewlog.CreateInput,
) (log viewlog.ViewLog, err error) {
	row := r.querier.QueryRow(
		ctx,
		`INSERT INTO view_log (experience_id, fingerprint, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING experience_id, fingerprint, created_at`,
		string(input.ExperienceID),
		string(input.Fingerprint),
		input.CreatedAt,
	)
	log, err = scanViewLog(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PG_UNIQUE_CONSTRAINT_ERR_CODE:
			return log, viewlog.ErrViewAlreadyLogged
		case PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE:
			return log, experience.ErrExperienceDoesNotExist
		}
	}
	return log, err
}

func scanViewLog(row pgx.Row) (log viewlog.ViewLog, err error) {
	var experienceID string
	var fp string
	err = row.Scan(&experienceID, &fp, &log.CreatedAt)
	if err != nil {
		return log, err
	}
	log.ExperienceID = experience.ID(experienceID)
	log.Fingerprint = fingerprint.Fingerprint(fp)
	return log, nil
}
