package content

import (
	"context"
	"sort"
	"strconv"
	"time"
)

type TimelineItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"` // work or education
	Year         string    `json:"year"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
}

// Timeline merges work experience and education into one feed, most
// recent first.
func (r *Repo) Timeline(ctx context.Context) ([]TimelineItem, error) {
	experiences, err := r.Experiences(ctx)
	if err != nil {
		return nil, err
	}
	education, err := r.Education(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]TimelineItem, 0, len(experiences)+len(education))
	for _, exp := range experiences {
		items = append(items, TimelineItem{
			ID:           exp.ID,
			Type:         "work",
			Year:         YearRange(exp.StartDate, exp.EndDate),
			Title:        exp.Position,
			Organization: exp.CompanyName,
			Location:     strOrEmpty(exp.Location),
			Description:  strOrEmpty(exp.Description),
			StartDate:    exp.StartDate,
		})
	}
	for _, edu := range education {
		title := edu.Degree
		if f := strOrEmpty(edu.FieldOfStudy); f != "" {
			title += " - " + f
		}
		items = append(items, TimelineItem{
			ID:           edu.ID,
			Type:         "education",
			Year:         YearRange(edu.StartDate, edu.EndDate),
			Title:        title,
			Organization: edu.InstitutionName,
			Description:  strOrEmpty(edu.Description),
			StartDate:    edu.StartDate,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate.After(items[j].StartDate)
	})
	return items, nil
}

// YearRange renders a period as "2020 - 2023", with an open end shown
// as "Present".
func YearRange(start time.Time, end *time.Time) string {
	from := strconv.Itoa(start.Year())
	if end == nil {
		return from + " - Present"
	}
	return from + " - " + strconv.Itoa(end.Year())
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
