package view

import "github.com/chetanraj-2002/portfolio/internal/modules/profile"

type Profile struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Title           string `json:"title,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Location        string `json:"location,omitempty"`
	Phone           string `json:"phone,omitempty"`
	GithubURL       string `json:"github_url,omitempty"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ResumeURL       string `json:"resume_url,omitempty"`
}

func NewProfile(p profile.AdminProfile) Profile {
	return Profile{
		FullName:        p.FullName,
		Email:           p.Email,
		Title:           deref(p.Title),
		Bio:             deref(p.Bio),
		Location:        deref(p.Location),
		Phone:           deref(p.Phone),
		GithubURL:       deref(p.GithubURL),
		LinkedinURL:     deref(p.LinkedinURL),
		ProfileImageURL: deref(p.ProfileImageURL),
		ResumeURL:       deref(p.ResumeURL),
	}
}
