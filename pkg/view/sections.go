package view

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/chetanraj-2002/portfolio/internal/modules/content"
)

// DTOs returned by the public API. Field names mirror the column names
// the front end already binds to.

type SkillItem struct {
	ID                 string `json:"id"`
	SkillName          string `json:"skill_name"`
	Category           string `json:"category,omitempty"`
	ProficiencyLevel   int    `json:"proficiency_level"`
	ProficiencyLabel   string `json:"proficiency_label"`
	ProficiencyPercent int    `json:"proficiency_percent"`
	OrderIndex         int    `json:"order_index"`
}

func NewSkillItem(s content.Skill) SkillItem {
	return SkillItem{
		ID:                 s.ID,
		SkillName:          s.SkillName,
		Category:           deref(s.Category),
		ProficiencyLevel:   s.ProficiencyLevel,
		ProficiencyLabel:   ProficiencyLabel(s.ProficiencyLevel),
		ProficiencyPercent: ProficiencyPercent(s.ProficiencyLevel),
		OrderIndex:         s.OrderIndex,
	}
}

type EducationItem struct {
	ID              string `json:"id"`
	InstitutionName string `json:"institution_name"`
	Degree          string `json:"degree"`
	FieldOfStudy    string `json:"field_of_study,omitempty"`
	Grade           string `json:"grade,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
	Description     string `json:"description,omitempty"`
}

func NewEducationItem(e content.Education) EducationItem {
	return EducationItem{
		ID:              e.ID,
		InstitutionName: e.InstitutionName,
		Degree:          e.Degree,
		FieldOfStudy:    deref(e.FieldOfStudy),
		Grade:           deref(e.Grade),
		StartDate:       fmtDate(e.StartDate),
		EndDate:         fmtDatePtr(e.EndDate),
		Description:     deref(e.Description),
	}
}

type ExperienceItem struct {
	ID           string   `json:"id"`
	CompanyName  string   `json:"company_name"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

func NewExperienceItem(e content.WorkExperience) ExperienceItem {
	return ExperienceItem{
		ID:           e.ID,
		CompanyName:  e.CompanyName,
		Position:     e.Position,
		Location:     deref(e.Location),
		StartDate:    fmtDate(e.StartDate),
		EndDate:      fmtDatePtr(e.EndDate),
		IsCurrent:    e.IsCurrent,
		Description:  deref(e.Description),
		Technologies: decodeList(e.Technologies),
	}
}

type ProjectItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url,omitempty"`
	DemoLink     string   `json:"demo_link,omitempty"`
	RepoLink     string   `json:"repo_link,omitempty"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
}

func NewProjectItem(p content.Project) ProjectItem {
	return ProjectItem{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     deref(p.ImageURL),
		DemoLink:     deref(p.DemoLink),
		RepoLink:     deref(p.RepoLink),
		Technologies: decodeList(p.Technologies),
		Status:       p.Status,
		Featured:     p.Featured,
	}
}

type MediaItemView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	MediaURL     string   `json:"media_url"`
	MediaType    string   `json:"media_type"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Tags         []string `json:"tags"`
	Featured     bool     `json:"featured"`
}

func NewMediaItemView(m content.MediaItem) MediaItemView {
	return MediaItemView{
		ID:           m.ID,
		Title:        m.Title,
		Description:  deref(m.Description),
		MediaURL:     m.MediaURL,
		MediaType:    m.MediaType,
		ThumbnailURL: deref(m.ThumbnailURL),
		Tags:         decodeList(m.Tags),
		Featured:     m.Featured,
	}
}

type TestimonialItem struct {
	ID              string `json:"id"`
	ClientName      string `json:"client_name"`
	ClientTitle     string `json:"client_title,omitempty"`
	ClientCompany   string `json:"client_company,omitempty"`
	TestimonialText string `json:"testimonial_text"`
	Rating          int    `json:"rating"`
	ClientImageURL  string `json:"client_image_url,omitempty"`
	Featured        bool   `json:"featured"`
}

func NewTestimonialItem(tm content.Testimonial) TestimonialItem {
	return TestimonialItem{
		ID:              tm.ID,
		ClientName:      tm.ClientName,
		ClientTitle:     deref(tm.ClientTitle),
		ClientCompany:   deref(tm.ClientCompany),
		TestimonialText: tm.TestimonialText,
		Rating:          tm.Rating,
		ClientImageURL:  deref(tm.ClientImageURL),
		Featured:        tm.Featured,
	}
}

type CertificateItem struct {
	ID                  string   `json:"id"`
	CertificateName     string   `json:"certificate_name"`
	IssuingOrganization string   `json:"issuing_organization"`
	IssueDate           string   `json:"issue_date"`
	ExpiryDate          string   `json:"expiry_date,omitempty"`
	CredentialID        string   `json:"credential_id,omitempty"`
	CredentialURL       string   `json:"credential_url,omitempty"`
	CertificateImageURL string   `json:"certificate_image_url,omitempty"`
	Description         string   `json:"description,omitempty"`
	SkillsDemonstrated  []string `json:"skills_demonstrated"`
	Featured            bool     `json:"featured"`
}

func NewCertificateItem(c content.Certificate) CertificateItem {
	return CertificateItem{
		ID:                  c.ID,
		CertificateName:     c.CertificateName,
		IssuingOrganization: c.IssuingOrganization,
		IssueDate:           fmtDate(c.IssueDate),
		ExpiryDate:          fmtDatePtr(c.ExpiryDate),
		CredentialID:        deref(c.CredentialID),
		CredentialURL:       deref(c.CredentialURL),
		CertificateImageURL: deref(c.CertificateImageURL),
		Description:         deref(c.Description),
		SkillsDemonstrated:  decodeList(c.SkillsDemonstrated),
		Featured:            c.Featured,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmtDate(*t)
}

// decodeList always yields a non-nil slice so an absent column renders
// as [] and not null.
func decodeList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	if items == nil {
		items = []string{}
	}
	return items
}
