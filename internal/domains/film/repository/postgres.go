package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmrate-backend/internal/domains/director"
	"filmrate-backend/internal/domains/feed"
	"filmrate-backend/internal/domains/film"
	"filmrate-backend/internal/domains/genre"
	"filmrate-backend/internal/domains/mpa"
	"filmrate-backend/internal/domains/user"
	"filmrate-backend/internal/shared"
	"filmrate-backend/pkg/database"
)

// filmSelect is the base projection shared by every film query. The like
// count is always derived from the likes relation.
const filmSelect = `
	SELECT f.id, f.title, f.description, f.release_date, f.duration,
	       m.id, m.name,
	       (SELECT COUNT(*) FROM likes l WHERE l.film_id = f.id) AS likes
	FROM films f
	JOIN mpa_ratings m ON f.mpa_id = m.id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) film.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]film.Film, error) {
	films, err := r.queryFilms(ctx, filmSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, films)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*film.Film, error) {
	films, err := r.queryFilms(ctx, filmSelect+` WHERE f.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, film.ErrFilmNotFound
	}

	hydrated, err := r.hydrate(ctx, films)
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []int64) ([]film.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	films, err := r.queryFilms(ctx, filmSelect+` WHERE f.id = ANY($1) ORDER BY f.id`, ids)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, films)
}

func (r *postgresRepository) Create(ctx context.Context, f *film.Film, genreIDs []int, directorIDs []int64) (*film.Film, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		if err := checkReferences(ctx, tx, f.Mpa.ID, genreIDs, directorIDs); err != nil {
			return 0, err
		}

		var filmID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO films (title, description, release_date, duration, mpa_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			f.Title, f.Description, f.ReleaseDate.Time, f.Duration, f.Mpa.ID,
		).Scan(&filmID)
		if err != nil {
			return 0, fmt.Errorf("failed to create film: %w", err)
		}

		if err := insertRelations(ctx, tx, filmID, genreIDs, directorIDs); err != nil {
			return 0, err
		}
		return filmID, nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, f *film.Film, genreIDs []int, directorIDs []int64) (*film.Film, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := checkReferences(ctx, tx, f.Mpa.ID, genreIDs, directorIDs); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			UPDATE films SET title = $1, description = $2, release_date = $3,
			                 duration = $4, mpa_id = $5
			WHERE id = $6`,
			f.Title, f.Description, f.ReleaseDate.Time, f.Duration, f.Mpa.ID, f.ID)
		if err != nil {
			return fmt.Errorf("failed to update film %d: %w", f.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return film.ErrFilmNotFound
		}

		// Replace semantics: drop all join rows, then re-insert the new set.
		if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, f.ID); err != nil {
			return fmt.Errorf("failed to clear film genres: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM film_directors WHERE film_id = $1`, f.ID); err != nil {
			return fmt.Errorf("failed to clear film directors: %w", err)
		}
		return insertRelations(ctx, tx, f.ID, genreIDs, directorIDs)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, f.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete film %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return film.ErrFilmNotFound
	}
	return nil
}

func (r *postgresRepository) AddLike(ctx context.Context, filmID, userID int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := checkFilmAndUser(ctx, tx, filmID, userID); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			INSERT INTO likes (film_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, filmID, userID)
		if err != nil {
			return fmt.Errorf("failed to add like %d->%d: %w", userID, filmID, err)
		}
		// Repeating a PUT must not duplicate feed entries.
		if tag.RowsAffected() == 0 {
			return nil
		}
		return recordLikeEvent(ctx, tx, userID, filmID, feed.OperationAdd)
	})
}

func (r *postgresRepository) RemoveLike(ctx context.Context, filmID, userID int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := checkFilmAndUser(ctx, tx, filmID, userID); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`DELETE FROM likes WHERE film_id = $1 AND user_id = $2`, filmID, userID)
		if err != nil {
			return fmt.Errorf("failed to remove like %d->%d: %w", userID, filmID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		return recordLikeEvent(ctx, tx, userID, filmID, feed.OperationRemove)
	})
}

func (r *postgresRepository) GetPopular(ctx context.Context, count int, filter film.PopularFilter) ([]film.Film, error) {
	query := filmSelect
	var conds []string
	args := []interface{}{}

	if filter.GenreID != nil {
		args = append(args, *filter.GenreID)
		conds = append(conds, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM film_genres fg WHERE fg.film_id = f.id AND fg.genre_id = $%d)`, len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conds = append(conds, fmt.Sprintf(
			`EXTRACT(YEAR FROM f.release_date) = $%d`, len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, count)
	query += fmt.Sprintf(" ORDER BY likes DESC, f.id LIMIT $%d", len(args))

	films, err := r.queryFilms(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, films)
}

func (r *postgresRepository) GetCommonFilms(ctx context.Context, userID, friendID int64) ([]film.Film, error) {
	query := filmSelect + `
		WHERE EXISTS (SELECT 1 FROM likes l1 WHERE l1.film_id = f.id AND l1.user_id = $1)
		  AND EXISTS (SELECT 1 FROM likes l2 WHERE l2.film_id = f.id AND l2.user_id = $2)
		ORDER BY likes DESC, f.id`

	films, err := r.queryFilms(ctx, query, userID, friendID)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, films)
}

func (r *postgresRepository) GetByDirector(ctx context.Context, directorID int64) ([]film.Film, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM directors WHERE id = $1)`, directorID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check director %d: %w", directorID, err)
	}
	if !exists {
		return nil, director.ErrDirectorNotFound
	}

	query := filmSelect + `
		WHERE EXISTS (SELECT 1 FROM film_directors fd WHERE fd.film_id = f.id AND fd.director_id = $1)
		ORDER BY f.id`

	films, err := r.queryFilms(ctx, query, directorID)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, films)
}

func (r *postgresRepository) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]film.Film, error) {
	pattern := "%" + query + "%"
	var conds []string
	args := []interface{}{}

	if byTitle {
		args = append(args, pattern)
		conds = append(conds, fmt.Sprintf(`f.title ILIKE $%d`, len(args)))
	}
	if byDirector {
		args = append(args, pattern)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM film_directors fd
			JOIN directors d ON d.id = fd.director_id
			WHERE fd.film_id = f.id AND d.name ILIKE $%d)`, len(args)))
	}
	if len(conds) == 0 {
		return nil, nil
	}

	sql := filmSelect + " WHERE " + conds[0]
	if len(conds) == 2 {
		sql += " OR " + conds[1]
	}
	sql += " ORDER BY likes DESC, f.id"

	films, err := r.queryFilms(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return r.hydrate(ctx, films)
}

func (r *postgresRepository) LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT film_id FROM likes WHERE user_id = $1 ORDER BY film_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes for user %d: %w", userID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked film id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read liked film ids: %w", err)
	}
	return ids, nil
}

func (r *postgresRepository) OverlappingLikes(ctx context.Context, userID int64) (map[int64][]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.user_id, l.film_id
		FROM likes l
		WHERE l.user_id <> $1
		  AND l.user_id IN (
			SELECT l2.user_id FROM likes l2
			WHERE l2.film_id IN (SELECT film_id FROM likes WHERE user_id = $1)
		  )
		ORDER BY l.user_id, l.film_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping likes for user %d: %w", userID, err)
	}
	defer rows.Close()

	likes := make(map[int64][]int64)
	for rows.Next() {
		var uid, fid int64
		if err := rows.Scan(&uid, &fid); err != nil {
			return nil, fmt.Errorf("failed to scan overlapping like: %w", err)
		}
		likes[uid] = append(likes[uid], fid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overlapping likes: %w", err)
	}
	return likes, nil
}

func (r *postgresRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	return exists, nil
}

func (r *postgresRepository) queryFilms(ctx context.Context, query string, args ...interface{}) ([]film.Film, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer rows.Close()

	var films []film.Film
	for rows.Next() {
		var f film.Film
		var releaseDate time.Time
		var description *string
		err := rows.Scan(&f.ID, &f.Title, &description, &releaseDate, &f.Duration,
			&f.Mpa.ID, &f.Mpa.Name, &f.Likes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		if description != nil {
			f.Description = *description
		}
		f.ReleaseDate = shared.Date{Time: releaseDate}
		f.Genres = []genre.Genre{}
		f.Directors = []director.Director{}
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read films: %w", err)
	}
	return films, nil
}

// hydrate attaches genre and director sets to the given page of films using
// one batched query per relation over the full id set.
func (r *postgresRepository) hydrate(ctx context.Context, films []film.Film) ([]film.Film, error) {
	if len(films) == 0 {
		return films, nil
	}

	ids := make([]int64, len(films))
	index := make(map[int64]int, len(films))
	for i := range films {
		ids[i] = films[i].ID
		index[films[i].ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT fg.film_id, g.id, g.name
		FROM film_genres fg
		JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1)
		ORDER BY fg.film_id, g.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to batch load film genres: %w", err)
	}
	for rows.Next() {
		var filmID int64
		var g genre.Genre
		if err := rows.Scan(&filmID, &g.ID, &g.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan film genre: %w", err)
		}
		i := index[filmID]
		films[i].Genres = append(films[i].Genres, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read film genres: %w", err)
	}

	rows, err = r.pool.Query(ctx, `
		SELECT fd.film_id, d.id, d.name
		FROM film_directors fd
		JOIN directors d ON d.id = fd.director_id
		WHERE fd.film_id = ANY($1)
		ORDER BY fd.film_id, d.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to batch load film directors: %w", err)
	}
	for rows.Next() {
		var filmID int64
		var d director.Director
		if err := rows.Scan(&filmID, &d.ID, &d.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan film director: %w", err)
		}
		i := index[filmID]
		films[i].Directors = append(films[i].Directors, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read film directors: %w", err)
	}

	return films, nil
}

// checkReferences verifies every foreign reference before any write.
func checkReferences(ctx context.Context, tx pgx.Tx, mpaID int, genreIDs []int, directorIDs []int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM mpa_ratings WHERE id = $1)`, mpaID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check mpa rating %d: %w", mpaID, err)
	}
	if !exists {
		return mpa.ErrRatingNotFound
	}

	if len(genreIDs) > 0 {
		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM genres WHERE id = ANY($1)`, genreIDs).Scan(&count); err != nil {
			return fmt.Errorf("failed to check genres: %w", err)
		}
		if count != len(genreIDs) {
			return genre.ErrGenreNotFound
		}
	}

	if len(directorIDs) > 0 {
		var count int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM directors WHERE id = ANY($1)`, directorIDs).Scan(&count); err != nil {
			return fmt.Errorf("failed to check directors: %w", err)
		}
		if count != len(directorIDs) {
			return director.ErrDirectorNotFound
		}
	}

	return nil
}

func insertRelations(ctx context.Context, tx pgx.Tx, filmID int64, genreIDs []int, directorIDs []int64) error {
	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(`INSERT INTO film_genres (film_id, genre_id) VALUES ($1, $2)`, filmID, genreID)
	}
	for _, directorID := range directorIDs {
		batch.Queue(`INSERT INTO film_directors (film_id, director_id) VALUES ($1, $2)`, filmID, directorID)
	}
	if batch.Len() == 0 {
		return nil
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert film relations: %w", err)
		}
	}
	return nil
}

func checkFilmAndUser(ctx context.Context, tx pgx.Tx, filmID, userID int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM films WHERE id = $1)`, filmID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check film %d: %w", filmID, err)
	}
	if !exists {
		return film.ErrFilmNotFound
	}

	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if !exists {
		return user.ErrUserNotFound
	}
	return nil
}

func recordLikeEvent(ctx context.Context, tx pgx.Tx, userID, filmID int64, operation string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO feed_events (user_id, event_ts, entity_id, event_type, operation)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, time.Now().UnixMilli(), filmID, feed.EventTypeLike, operation)
	if err != nil {
		return fmt.Errorf("failed to record like feed event: %w", err)
	}
	return nil
}
