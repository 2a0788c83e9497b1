package content

import (
	"context"

	"gorm.io/gorm"
)

// Repo serves the public read side of the site. All queries return the
// ordering the front end renders with, so handlers pass results straight
// through.
type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Skills(ctx context.Context) ([]Skill, error) {
	var items []Skill
	err := r.db.WithContext(ctx).Order("order_index ASC").Find(&items).Error
	return items, err
}

func (r *Repo) Education(ctx context.Context) ([]Education, error) {
	var items []Education
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&items).Error
	return items, err
}

func (r *Repo) Experiences(ctx context.Context) ([]WorkExperience, error) {
	var items []WorkExperience
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&items).Error
	return items, err
}

// CompletedProjects hides in-progress and planned work from visitors.
func (r *Repo) CompletedProjects(ctx context.Context) ([]Project, error) {
	var items []Project
	err := r.db.WithContext(ctx).
		Where("status = ?", "completed").
		Order("order_index DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Media(ctx context.Context) ([]MediaItem, error) {
	var items []MediaItem
	err := r.db.WithContext(ctx).Order("order_index DESC").Find(&items).Error
	return items, err
}

func (r *Repo) Testimonials(ctx context.Context) ([]Testimonial, error) {
	var items []Testimonial
	err := r.db.WithContext(ctx).Order("order_index ASC").Find(&items).Error
	return items, err
}

func (r *Repo) Certificates(ctx context.Context) ([]Certificate, error) {
	var items []Certificate
	err := r.db.WithContext(ctx).
		Order("featured DESC, order_index ASC").
		Find(&items).Error
	return items, err
}

type Stats struct {
	Projects     int64 `json:"projects"`
	Skills       int64 `json:"skills"`
	Experiences  int64 `json:"experiences"`
	Certificates int64 `json:"certificates"`
}

func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	db := r.db.WithContext(ctx)
	if err := db.Model(&Project{}).Where("status = ?", "completed").Count(&s.Projects).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&Skill{}).Count(&s.Skills).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&WorkExperience{}).Count(&s.Experiences).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&Certificate{}).Count(&s.Certificates).Error; err != nil {
		return Stats{}, err
	}
	return s, nil
}
