package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/session"
)

// SessionRepository stores sessions in a SQL table. Expired rows are
// invisible to Get and removed by PurgeExpired.
type SessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (session.State, error) {
	var rec model.Session
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, r.now().UTC()).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.State{}, apperrors.ErrSessionNotFound
		}
		return session.State{}, err
	}

	return session.State{Token: rec.Token, LoggedIn: rec.LoggedIn}, nil
}

func (r *SessionRepository) Save(ctx context.Context, id string, state session.State, ttl time.Duration) error {
	rec := &model.Session{
		ID:        id,
		Token:     state.Token,
		LoggedIn:  state.LoggedIn,
		ExpiresAt: r.now().UTC().Add(ttl),
	}

	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id).Error
}

// PurgeExpired deletes every expired session and returns how many were removed.
func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now().UTC()).
		Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
