package mock

import (
	"context"

	"github.com/recenterhq/driftcheck/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Users    *UserRepo
	Checkins *CheckinRepo
	Feedback *FeedbackRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:    &UserRepo{},
		Checkins: &CheckinRepo{},
		Feedback: &FeedbackRepo{},
	}
}

type UserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type CheckinRepo struct {
	Stored    []models.Checkin
	Recent    []models.Dimension
	CreateErr error
	ListErr   error
}

func (m *CheckinRepo) CreateCheckin(ctx context.Context, c *models.Checkin) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	cp := *c
	cp.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, cp)
	return cp.ID, nil
}

func (m *CheckinRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Checkin, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Checkin
	for _, c := range m.Stored {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *CheckinRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	items, err := m.ListByUser(ctx, userID, 0, 0)
	return int64(len(items)), err
}

func (m *CheckinRepo) RecentWeakestDimensions(ctx context.Context, userID int64, limit int) ([]models.Dimension, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Recent, nil
}

type FeedbackRepo struct {
	Stored    []models.TipFeedbackEntry
	CreateErr error
	ListErr   error
}

func (m *FeedbackRepo) CreateFeedback(ctx context.Context, e *models.TipFeedbackEntry) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	cp := *e
	cp.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, cp)
	return cp.ID, nil
}

func (m *FeedbackRepo) ListFeedbackByUser(ctx context.Context, userID int64) ([]models.TipFeedbackEntry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.TipFeedbackEntry
	for _, e := range m.Stored {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
