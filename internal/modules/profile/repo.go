package profile

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

// Repo reads and writes the owner profile. The public site hits the
// profile on every page, so lookups are cached until an update or the
// TTL invalidates them.
type Repo struct {
	db  *gorm.DB
	ttl time.Duration

	mu        sync.RWMutex
	cached    *AdminProfile
	cachedExp time.Time

	// user id -> profile id, for admin request scoping
	ownerIDs map[string]string

	broadcaster *Broadcaster
}

func NewRepo(db *gorm.DB, ttl time.Duration) *Repo {
	return &Repo{
		db:          db,
		ttl:         ttl,
		ownerIDs:    make(map[string]string),
		broadcaster: NewBroadcaster(),
	}
}

func (r *Repo) Broadcaster() *Broadcaster { return r.broadcaster }

// Get returns the site owner profile, serving from cache when fresh.
func (r *Repo) Get(ctx context.Context) (AdminProfile, error) {
	r.mu.RLock()
	if r.cached != nil && time.Now().Before(r.cachedExp) {
		p := *r.cached
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	var p AdminProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AdminProfile{}, apperr.NotFoundErr("Profile not set up yet.")
	}
	if err != nil {
		return AdminProfile{}, apperr.Wrap(err)
	}

	r.mu.Lock()
	r.cached = &p
	r.cachedExp = time.Now().Add(r.ttl)
	r.mu.Unlock()
	return p, nil
}

// OwnerID resolves the admin profile id for a user, creating the
// profile row on first login. The resolution is memoized because every
// admin request needs it.
func (r *Repo) OwnerID(ctx context.Context, userID, email, fullName string) (string, error) {
	r.mu.RLock()
	if id, ok := r.ownerIDs[userID]; ok {
		r.mu.RUnlock()
		return id, nil
	}
	r.mu.RUnlock()

	var p AdminProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = AdminProfile{
			ID:        uuid.NewString(),
			UserID:    userID,
			FullName:  fullName,
			Email:     email,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
			return "", apperr.Wrap(err)
		}
	} else if err != nil {
		return "", apperr.Wrap(err)
	}

	r.mu.Lock()
	r.ownerIDs[userID] = p.ID
	r.mu.Unlock()
	return p.ID, nil
}

type UpdateInput struct {
	FullName        string
	Email           string
	Title           string
	Bio             string
	Location        string
	Phone           string
	GithubURL       string
	LinkedinURL     string
	ProfileImageURL string
	ResumeURL       string
}

// Update overwrites the profile for a user and invalidates the cache.
// Subscribers are told afterwards so open pages can refetch.
func (r *Repo) Update(ctx context.Context, userID string, in UpdateInput) (AdminProfile, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Email == "" {
		fields := map[string]string{}
		if in.FullName == "" {
			fields["full_name"] = "Full name is required."
		}
		if in.Email == "" {
			fields["email"] = "Email is required."
		}
		return AdminProfile{}, apperr.InvalidErr("Please correct the highlighted fields.", fields)
	}

	var p AdminProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AdminProfile{}, apperr.NotFoundErr("Profile not found.")
	}
	if err != nil {
		return AdminProfile{}, apperr.Wrap(err)
	}

	updates := map[string]any{
		"full_name":         in.FullName,
		"email":             in.Email,
		"title":             nullable(in.Title),
		"bio":               nullable(in.Bio),
		"location":          nullable(in.Location),
		"phone":             nullable(in.Phone),
		"github_url":        nullable(in.GithubURL),
		"linkedin_url":      nullable(in.LinkedinURL),
		"profile_image_url": nullable(in.ProfileImageURL),
		"resume_url":        nullable(in.ResumeURL),
		"updated_at":        time.Now(),
	}
	if err := r.db.WithContext(ctx).Model(&AdminProfile{}).
		Where("id = ?", p.ID).
		Updates(updates).Error; err != nil {
		return AdminProfile{}, apperr.Wrap(err)
	}

	r.Invalidate()
	r.broadcaster.Publish()

	return r.fetchByID(ctx, p.ID)
}

func (r *Repo) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}

func (r *Repo) fetchByID(ctx context.Context, id string) (AdminProfile, error) {
	var p AdminProfile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return AdminProfile{}, apperr.Wrap(err)
	}
	return p, nil
}

func nullable(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
