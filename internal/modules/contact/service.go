package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

// Notifier delivers the outbound mail for a new submission. Delivery is
// best effort: a failure never fails the submission itself.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

type Service struct {
	db       *gorm.DB
	notifier Notifier
	logger   *slog.Logger
}

func NewService(db *gorm.DB, notifier Notifier) *Service {
	return &Service{db: db, notifier: notifier, logger: slog.Default()}
}

func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

type SubmitInput struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Body      string
}

// Submit stores the message and then notifies. Persistence is the
// critical step: if the insert fails the caller gets the error and the
// visitor keeps their form. Notification failures are only logged.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Message, error) {
	m := Message{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Subject:   strings.TrimSpace(in.Subject),
		Body:      strings.TrimSpace(in.Body),
		Status:    StatusUnread,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return Message{}, apperr.Wrap(err)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, m); err != nil {
			s.logger.Warn("contact notification failed",
				"message_id", m.ID,
				"error", err)
		}
	}
	return m, nil
}

// Inbox lists every message, newest first.
func (s *Service) Inbox(ctx context.Context) ([]Message, error) {
	var items []Message
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&Message{}).
		Where("status = ?", StatusUnread).
		Count(&n).Error
	return n, err
}

// View fetches one message and marks it read if it was unread. The
// responded state is never entered here; that takes an explicit action.
func (s *Service) View(ctx context.Context, id string) (Message, error) {
	var m Message
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if m.Status != StatusUnread {
			return nil
		}
		if err := tx.Model(&Message{}).
			Where("id = ? AND status = ?", m.ID, StatusUnread). // optimistic guard
			Update("status", StatusRead).Error; err != nil {
			return err
		}
		m.Status = StatusRead
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Message{}, apperr.NotFoundErr("Message not found.")
	}
	if err != nil {
		return Message{}, apperr.Wrap(err)
	}
	return m, nil
}

// MarkResponded records that the owner has replied. Transitioning an
// already responded message is a no-op.
func (s *Service) MarkResponded(ctx context.Context, id string) (Message, error) {
	var m Message
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if m.Status == StatusResponded {
			return nil
		}
		now := time.Now().UTC()
		if err := tx.Model(&Message{}).
			Where("id = ? AND status = ?", m.ID, m.Status).
			Updates(map[string]any{
				"status":       StatusResponded,
				"responded_at": now,
			}).Error; err != nil {
			return err
		}
		m.Status = StatusResponded
		m.RespondedAt = &now
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Message{}, apperr.NotFoundErr("Message not found.")
	}
	if err != nil {
		return Message{}, apperr.Wrap(err)
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tx := s.db.WithContext(ctx).Delete(&Message{}, "id = ?", id)
	if tx.Error != nil {
		return apperr.Wrap(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFoundErr("Message not found.")
	}
	return nil
}
