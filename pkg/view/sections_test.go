package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanraj-2002/portfolio/internal/modules/content"
)

func TestCertificateItemEmptyListIsNotNull(t *testing.T) {
	item := NewCertificateItem(content.Certificate{
		ID:                  "c-1",
		CertificateName:     "AWS Solutions Architect",
		IssuingOrganization: "Amazon",
		IssueDate:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		SkillsDemonstrated:  nil,
	})

	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"skills_demonstrated":[]`)
}

func TestProjectItemTechnologies(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		item := NewProjectItem(content.Project{
			ID:           "p-1",
			Title:        "Portfolio",
			Description:  "This site",
			Technologies: []byte(`["Go","MySQL"]`),
			Status:       "completed",
		})
		assert.Equal(t, []string{"Go", "MySQL"}, item.Technologies)
	})

	t.Run("absent column renders as empty array", func(t *testing.T) {
		item := NewProjectItem(content.Project{
			ID:     "p-2",
			Title:  "Side project",
			Status: "planned",
		})
		b, err := json.Marshal(item)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"technologies":[]`)
	})

	t.Run("corrupt column renders as empty array", func(t *testing.T) {
		item := NewProjectItem(content.Project{
			ID:           "p-3",
			Title:        "Broken row",
			Technologies: []byte(`{not json`),
			Status:       "planned",
		})
		assert.Equal(t, []string{}, item.Technologies)
	})
}
