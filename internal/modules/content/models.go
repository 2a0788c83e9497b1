package content

import (
	"time"

	"gorm.io/datatypes"
)

type Skill struct {
	ID               string    `gorm:"primaryKey;type:char(36)"`
	AdminID          string    `gorm:"column:admin_id;type:char(36);not null;index"`
	SkillName        string    `gorm:"column:skill_name;type:varchar(255);not null"`
	Category         *string   `gorm:"type:varchar(64)"`
	ProficiencyLevel int       `gorm:"column:proficiency_level"`
	OrderIndex       int       `gorm:"column:order_index;not null;default:0"`
	CreatedAt        time.Time `gorm:"type:datetime(3)"`
	UpdatedAt        time.Time `gorm:"type:datetime(3)"`
}

func (Skill) TableName() string { return "skills" }

type Education struct {
	ID              string     `gorm:"primaryKey;type:char(36)"`
	AdminID         string     `gorm:"column:admin_id;type:char(36);not null;index"`
	InstitutionName string     `gorm:"column:institution_name;type:varchar(255);not null"`
	Degree          string     `gorm:"type:varchar(255);not null"`
	FieldOfStudy    *string    `gorm:"column:field_of_study;type:varchar(255)"`
	Grade           *string    `gorm:"type:varchar(64)"`
	StartDate       time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate         *time.Time `gorm:"column:end_date;type:date"`
	Description     *string    `gorm:"type:text"`
	OrderIndex      int        `gorm:"column:order_index;not null;default:0"`
	CreatedAt       time.Time  `gorm:"type:datetime(3)"`
	UpdatedAt       time.Time  `gorm:"type:datetime(3)"`
}

func (Education) TableName() string { return "education" }

type WorkExperience struct {
	ID           string         `gorm:"primaryKey;type:char(36)"`
	AdminID      string         `gorm:"column:admin_id;type:char(36);not null;index"`
	CompanyName  string         `gorm:"column:company_name;type:varchar(255);not null"`
	Position     string         `gorm:"type:varchar(255);not null"`
	Location     *string        `gorm:"type:varchar(255)"`
	StartDate    time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate      *time.Time     `gorm:"column:end_date;type:date"`
	IsCurrent    bool           `gorm:"column:is_current;not null;default:false"`
	Description  *string        `gorm:"type:text"`
	Technologies datatypes.JSON `gorm:"type:json"`
	OrderIndex   int            `gorm:"column:order_index;not null;default:0"`
	CreatedAt    time.Time      `gorm:"type:datetime(3)"`
	UpdatedAt    time.Time      `gorm:"type:datetime(3)"`
}

func (WorkExperience) TableName() string { return "work_experiences" }

type Project struct {
	ID           string         `gorm:"primaryKey;type:char(36)"`
	AdminID      string         `gorm:"column:admin_id;type:char(36);not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Description  string         `gorm:"type:text;not null"`
	ImageURL     *string        `gorm:"column:image_url;type:varchar(512)"`
	DemoLink     *string        `gorm:"column:demo_link;type:varchar(512)"`
	RepoLink     *string        `gorm:"column:repo_link;type:varchar(512)"`
	Technologies datatypes.JSON `gorm:"type:json"`
	Status       string         `gorm:"type:varchar(32);not null;default:completed"`
	Featured     bool           `gorm:"not null;default:false"`
	StartDate    *time.Time     `gorm:"column:start_date;type:date"`
	EndDate      *time.Time     `gorm:"column:end_date;type:date"`
	OrderIndex   int            `gorm:"column:order_index;not null;default:0"`
	CreatedAt    time.Time      `gorm:"type:datetime(3)"`
	UpdatedAt    time.Time      `gorm:"type:datetime(3)"`
}

func (Project) TableName() string { return "portfolio_projects" }

type MediaItem struct {
	ID           string         `gorm:"primaryKey;type:char(36)"`
	AdminID      string         `gorm:"column:admin_id;type:char(36);not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Description  *string        `gorm:"type:text"`
	MediaURL     string         `gorm:"column:media_url;type:varchar(512);not null"`
	MediaType    string         `gorm:"column:media_type;type:varchar(32);not null;default:image"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url;type:varchar(512)"`
	Tags         datatypes.JSON `gorm:"type:json"`
	Featured     bool           `gorm:"not null;default:false"`
	OrderIndex   int            `gorm:"column:order_index;not null;default:0"`
	CreatedAt    time.Time      `gorm:"type:datetime(3)"`
	UpdatedAt    time.Time      `gorm:"type:datetime(3)"`
}

func (MediaItem) TableName() string { return "media_gallery" }

type Testimonial struct {
	ID              string    `gorm:"primaryKey;type:char(36)"`
	AdminID         string    `gorm:"column:admin_id;type:char(36);not null;index"`
	ClientName      string    `gorm:"column:client_name;type:varchar(255);not null"`
	ClientTitle     *string   `gorm:"column:client_title;type:varchar(255)"`
	ClientCompany   *string   `gorm:"column:client_company;type:varchar(255)"`
	TestimonialText string    `gorm:"column:testimonial_text;type:text;not null"`
	Rating          int       `gorm:"not null;default:5"`
	ClientImageURL  *string   `gorm:"column:client_image_url;type:varchar(512)"`
	Featured        bool      `gorm:"not null;default:false"`
	OrderIndex      int       `gorm:"column:order_index;not null;default:0"`
	CreatedAt       time.Time `gorm:"type:datetime(3)"`
	UpdatedAt       time.Time `gorm:"type:datetime(3)"`
}

func (Testimonial) TableName() string { return "testimonials" }

type Certificate struct {
	ID                  string         `gorm:"primaryKey;type:char(36)"`
	AdminID             string         `gorm:"column:admin_id;type:char(36);not null;index"`
	CertificateName     string         `gorm:"column:certificate_name;type:varchar(255);not null"`
	IssuingOrganization string         `gorm:"column:issuing_organization;type:varchar(255);not null"`
	IssueDate           time.Time      `gorm:"column:issue_date;type:date;not null"`
	ExpiryDate          *time.Time     `gorm:"column:expiry_date;type:date"`
	CredentialID        *string        `gorm:"column:credential_id;type:varchar(255)"`
	CredentialURL       *string        `gorm:"column:credential_url;type:varchar(512)"`
	CertificateImageURL *string        `gorm:"column:certificate_image_url;type:varchar(512)"`
	Description         *string        `gorm:"type:text"`
	SkillsDemonstrated  datatypes.JSON `gorm:"column:skills_demonstrated;type:json"`
	Featured            bool           `gorm:"not null;default:false"`
	OrderIndex          int            `gorm:"column:order_index;not null;default:0"`
	CreatedAt           time.Time      `gorm:"type:datetime(3)"`
	UpdatedAt           time.Time      `gorm:"type:datetime(3)"`
}

func (Certificate) TableName() string { return "certificates" }
