package experience

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	"expwall/internal/db"

	"github.com/jackc/pgx/v4"
)

const selectColumns = "id, content, fingerprint, views, created_at"

type PgxRepository struct {
	querier db.Querier
}

func NewPgxRepository(querier db.Querier) *PgxRepository {
	if querier == nil {
		panic("Argument querier must not be nil.")
	}
	return &PgxRepository{querier: querier}
}

func (r *PgxRepository) Create(
	ctx context.Context,
	input experience.CreateInput,
) (exp experience.Experience, err error) {
	row := r.querier.QueryRow(
		ctx,
		`INSERT INTO experience (id, content, fingerprint, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+selectColumns,
		string(input.ID),
		input.Content,
		string(input.Fingerprint),
		input.CreatedAt,
	)
	return scanExperience(row)
}

func (r *PgxRepository) GetByID(ctx context.Context, id experience.ID) (exp experience.Experience, err error) {
	row := r.querier.QueryRow(
		ctx,
		"SELECT "+selectColumns+" FROM experience WHERE id = $1",
		string(id),
	)
	exp, err = scanExperience(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return exp, experience.ErrExperienceDoesNotExist
	}
	return exp, err
}

func (r *PgxRepository) IncrementViews(
	ctx context.Context,
	id experience.ID,
) (exp experience.Experience, err error) {
	row := r.querier.QueryRow(
		ctx,
		"UPDATE experience SET views = views + 1 WHERE id = $1 RETURNING "+selectColumns,
		string(id),
	)
	exp, err = scanExperience(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return exp, experience.ErrExperienceDoesNotExist
	}
	return exp, err
}

func (r *PgxRepository) CountByFingerprintAfter(
	ctx context.Context,
	f fingerprint.Fingerprint,
	after time.Time,
) (uint, error) {
	var count uint
	err := r.querier.QueryRow(
		ctx,
		"SELECT count(*) FROM experience WHERE fingerprint = $1 AND created_at >= $2",
		string(f),
		after,
	).Scan(&count)
	return count, err
}

func (r *PgxRepository) Read(
	ctx context.Context,
	options experience.ReadOptions,
) ([]experience.Experience, error) {
	query, args := buildReadQuery(options)
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := make([]experience.Experience, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, exp)
	}
	return experiences, rows.Err()
}

func (r *PgxRepository) Count(ctx context.Context, options experience.ReadOptions) (uint, error) {
	query := "SELECT count(*) FROM experience"
	args := make([]interface{}, 0, 1)
	if options.IDIn.IsPresent {
		query += " WHERE id = ANY($1)"
		args = append(args, encodeIDs(options.IDIn.Value))
	}
	var count uint
	err := r.querier.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func buildReadQuery(options experience.ReadOptions) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, 3)

	sb.WriteString("SELECT " + selectColumns + " FROM experience")
	if options.IDIn.IsPresent {
		args = append(args, encodeIDs(options.IDIn.Value))
		fmt.Fprintf(&sb, " WHERE id = ANY($%d)", len(args))
	}

	switch options.OrderBy {
	case experience.OrderByOldest:
		sb.WriteString(" ORDER BY created_at ASC")
	case experience.OrderByMostViewed:
		sb.WriteString(" ORDER BY views DESC, created_at DESC")
	default:
		sb.WriteString(" ORDER BY created_at DESC")
	}

	if options.Limit.IsPresent {
		args = append(args, options.Limit.Value)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if options.Offset > 0 {
		args = append(args, options.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

func encodeIDs(ids []experience.ID) []string {
	encoded := make([]string, 0, len(ids))
	for _, id := range ids {
		encoded = append(encoded, string(id))
	}
	return encoded
}

func scanExperience(row pgx.Row) (exp experience.Experience, err error) {
	var id string
	var fp string
	err = row.Scan(&id, &exp.Content, &fp, &exp.Views, &exp.CreatedAt)
	if err != nil {
		return exp, err
	}
	exp.ID = experience.ID(id)
	exp.Fingerprint = fingerprint.Fingerprint(fp)
	return exp, nil
}
