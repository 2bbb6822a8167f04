package store

import (
	"context"
	"errors"
	"fmt"

	"tutor-match/internal/database"
	"tutor-match/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound 表示 catalog 中不存在該筆資料
var ErrNotFound = errors.New("not found")

const tutorColumns = `id, name, email, university, career, semester, bio, avatar_url,
		        subjects, rating, review_count, level, badges, verified, created_at`

func scanTutor(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var level string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.University,
		&u.Career,
		&u.Semester,
		&u.Bio,
		&u.AvatarURL,
		&u.Subjects,
		&u.Rating,
		&u.ReviewCount,
		&level,
		&u.Badges,
		&u.Verified,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Level = model.TutorLevel(level)
	if u.Subjects == nil {
		u.Subjects = []model.Subject{}
	}
	if u.Badges == nil {
		u.Badges = []model.Badge{}
	}
	return u, nil
}

// ListTutors 回傳配對 feed 使用的固定導師清單，依 id 排序，排除 excludeID
func ListTutors(ctx context.Context, db database.DB, excludeID string) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+tutorColumns+`
		 FROM tutors WHERE id <> $1 ORDER BY id`,
		excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTutors: %w", err)
	}
	defer rows.Close()

	tutors := []model.User{}
	for rows.Next() {
		u, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("ListTutors: %w", err)
		}
		tutors = append(tutors, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTutors: %w", err)
	}
	return tutors, nil
}

func GetTutorByID(ctx context.Context, db database.DB, tutorID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+tutorColumns+`
		 FROM tutors WHERE id = $1`,
		tutorID,
	)
	u, err := scanTutor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("GetTutorByID: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetTutorByID: %w", err)
	}
	return u, nil
}

// ListTutorLocations 回傳地圖上的靜態標記
func ListTutorLocations(ctx context.Context, db database.DB) ([]model.Location, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, COALESCE(subjects->0->>'name', ''), lat, lng
		 FROM tutors WHERE lat IS NOT NULL AND lng IS NOT NULL ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTutorLocations: %w", err)
	}
	defer rows.Close()

	locations := []model.Location{}
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.TutorID, &l.Name, &l.Subject, &l.Lat, &l.Lng); err != nil {
			return nil, fmt.Errorf("ListTutorLocations: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTutorLocations: %w", err)
	}
	return locations, nil
}
