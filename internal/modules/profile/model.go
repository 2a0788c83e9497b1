package profile

import "time"

// AdminProfile is the owner identity shown across the public site.
type AdminProfile struct {
	ID              string    `gorm:"primaryKey;type:char(36)"`
	UserID          string    `gorm:"column:user_id;type:char(36);not null;uniqueIndex:ux_admin_profiles_user_id"`
	FullName        string    `gorm:"column:full_name;type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Title           *string   `gorm:"type:varchar(255)"`
	Bio             *string   `gorm:"type:text"`
	Location        *string   `gorm:"type:varchar(255)"`
	Phone           *string   `gorm:"type:varchar(64)"`
	GithubURL       *string   `gorm:"column:github_url;type:varchar(512)"`
	LinkedinURL     *string   `gorm:"column:linkedin_url;type:varchar(512)"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar(512)"`
	ResumeURL       *string   `gorm:"column:resume_url;type:varchar(512)"`
	CreatedAt       time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt       time.Time `gorm:"type:datetime(3);not null"`
}

func (AdminProfile) TableName() string { return "admin_profiles" }
