package store

import (
	"context"
	"fmt"

	"tutor-match/internal/database"
	"tutor-match/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListReviewsByTutor(ctx context.Context, db database.DB, tutorID string) ([]model.Review, error) {
	rows, err := db.Query(ctx,
		`SELECT id, tutor_id, reviewer_name, rating, comment, subject, created_at
		 FROM reviews WHERE tutor_id = $1 ORDER BY created_at DESC, id DESC`,
		tutorID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByTutor: %w", err)
	}
	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByTutor: %w", err)
	}
	return reviews, nil
}

func ListRecentReviews(ctx context.Context, db database.DB, limit int) ([]model.Review, error) {
	rows, err := db.Query(ctx,
		`SELECT id, tutor_id, reviewer_name, rating, comment, subject, created_at
		 FROM reviews ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentReviews: %w", err)
	}
	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, fmt.Errorf("ListRecentReviews: %w", err)
	}
	return reviews, nil
}

func collectReviews(rows pgx.Rows) ([]model.Review, error) {
	defer rows.Close()
	reviews := []model.Review{}
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(
			&r.ID,
			&r.TutorID,
			&r.ReviewerName,
			&r.Rating,
			&r.Comment,
			&r.Subject,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
