package repository

import (
	"context"

	"github.com/recenterhq/driftcheck/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type CheckinRepo interface {
	CreateCheckin(ctx context.Context, c *models.Checkin) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Checkin, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	// RecentWeakestDimensions returns the weakest dimensions of the user's
	// most recent check-ins, newest first, feeding the adaptive message.
	RecentWeakestDimensions(ctx context.Context, userID int64, limit int) ([]models.Dimension, error)
}

type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, e *models.TipFeedbackEntry) (int64, error)
	ListFeedbackByUser(ctx context.Context, userID int64) ([]models.TipFeedbackEntry, error)
}

// QueueStore is the local durable store consumed by the offline queue
// manager. Implementations must be durable across restarts and atomic per
// record; no cross-record transactions are required.
type QueueStore interface {
	Add(ctx context.Context, q *models.QueuedCheckin) error
	ListUnsynced(ctx context.Context) ([]models.QueuedCheckin, error)
	Delete(ctx context.Context, id string) error
	CountUnsynced(ctx context.Context) (int64, error)
}
