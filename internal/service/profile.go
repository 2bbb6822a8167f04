package service

import (
	"context"
	"strings"

	"tutor-match/internal/model"
)

type ProfileUpdate struct {
	Name      string
	Career    string
	Semester  int
	Bio       string
	AvatarURL string
}

type SubjectInput struct {
	Name        string
	Category    string
	HourlyRate  float64
	Experience  string
	Description string
}

func (in SubjectInput) apply(s *model.Subject) {
	s.Name = strings.TrimSpace(in.Name)
	s.Category = strings.TrimSpace(in.Category)
	s.HourlyRate = in.HourlyRate
	s.Experience = strings.TrimSpace(in.Experience)
	s.Description = strings.TrimSpace(in.Description)
}

func (s *Sessions) UpdateProfile(ctx context.Context, sessionID string, in ProfileUpdate) (*model.User, error) {
	return s.update(ctx, sessionID, func(u *model.User) error {
		u.Name = strings.TrimSpace(in.Name)
		u.Career = strings.TrimSpace(in.Career)
		if in.Semester > 0 {
			u.Semester = in.Semester
		}
		u.Bio = strings.TrimSpace(in.Bio)
		u.AvatarURL = strings.TrimSpace(in.AvatarURL)
		return nil
	})
}

// AddSubject 新增一門科目，預設為啟用
func (s *Sessions) AddSubject(ctx context.Context, sessionID string, in SubjectInput) (*model.Subject, error) {
	subject := model.Subject{ID: "subj-" + newID(), IsActive: true}
	in.apply(&subject)
	_, err := s.update(ctx, sessionID, func(u *model.User) error {
		u.Subjects = append(u.Subjects, subject)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *Sessions) UpdateSubject(ctx context.Context, sessionID, subjectID string, in SubjectInput) (*model.Subject, error) {
	var updated model.Subject
	_, err := s.update(ctx, sessionID, func(u *model.User) error {
		i := subjectIndex(u.Subjects, subjectID)
		if i < 0 {
			return ErrSubjectNotFound
		}
		in.apply(&u.Subjects[i])
		updated = u.Subjects[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Sessions) SetSubjectActive(ctx context.Context, sessionID, subjectID string, active bool) (*model.Subject, error) {
	var updated model.Subject
	_, err := s.update(ctx, sessionID, func(u *model.User) error {
		i := subjectIndex(u.Subjects, subjectID)
		if i < 0 {
			return ErrSubjectNotFound
		}
		u.Subjects[i].IsActive = active
		updated = u.Subjects[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Sessions) RemoveSubject(ctx context.Context, sessionID, subjectID string) error {
	_, err := s.update(ctx, sessionID, func(u *model.User) error {
		i := subjectIndex(u.Subjects, subjectID)
		if i < 0 {
			return ErrSubjectNotFound
		}
		u.Subjects = append(u.Subjects[:i], u.Subjects[i+1:]...)
		return nil
	})
	return err
}

func subjectIndex(subjects []model.Subject, id string) int {
	for i, s := range subjects {
		if s.ID == id {
			return i
		}
	}
	return -1
}
