package records

import (
	"context"
	"testing"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const adminID = "admin-1"

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE skills (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			skill_name TEXT NOT NULL,
			category TEXT,
			proficiency_level INTEGER,
			order_index INTEGER DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE certificates (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			certificate_name TEXT NOT NULL,
			issuing_organization TEXT NOT NULL,
			issue_date TEXT NOT NULL,
			expiry_date TEXT,
			credential_id TEXT,
			credential_url TEXT,
			certificate_image_url TEXT,
			description TEXT,
			skills_demonstrated TEXT,
			featured BOOLEAN DEFAULT FALSE,
			order_index INTEGER DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestManagerCreateGet(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	row, err := m.Create(ctx, Skills, adminID, map[string]any{
		"skill_name":        "Go",
		"category":          "Backend",
		"proficiency_level": "4",
		"order_index":       0,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, row["id"])
	assert.Equal(t, adminID, row["admin_id"])
	assert.Equal(t, "Go", row["skill_name"])
	assert.Equal(t, 4, row["proficiency_level"])

	got, err := m.Get(ctx, Skills, adminID, row["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, row["skill_name"], got["skill_name"])
}

func TestManagerCreateValidates(t *testing.T) {
	m := NewManager(testDB(t))

	_, err := m.Create(context.Background(), Skills, adminID, map[string]any{"category": "Backend"})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Contains(t, ae.Fields, "skill_name")
}

func TestManagerListOrdering(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	for i, name := range []string{"Go", "React", "MySQL"} {
		_, err := m.Create(ctx, Skills, adminID, map[string]any{
			"skill_name":  name,
			"order_index": 2 - i,
		})
		require.NoError(t, err)
	}

	rows, err := m.List(ctx, Skills, adminID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "MySQL", rows[0]["skill_name"])
	assert.Equal(t, "React", rows[1]["skill_name"])
	assert.Equal(t, "Go", rows[2]["skill_name"])
}

func TestManagerListScopedToAdmin(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	_, err := m.Create(ctx, Skills, adminID, map[string]any{"skill_name": "Go"})
	require.NoError(t, err)
	_, err = m.Create(ctx, Skills, "admin-2", map[string]any{"skill_name": "Rust"})
	require.NoError(t, err)

	rows, err := m.List(ctx, Skills, adminID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Go", rows[0]["skill_name"])
}

func TestManagerListFieldRoundTrip(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	row, err := m.Create(ctx, Certificates, adminID, map[string]any{
		"certificate_name":     "AWS SAA",
		"issuing_organization": "Amazon",
		"issue_date":           "2024-02-01",
		"skills_demonstrated":  "EC2, S3 , IAM",
		"featured":             "on",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"EC2", "S3", "IAM"}, row["skills_demonstrated"])
	assert.Equal(t, true, row["featured"])

	fv := Certificates.FormValues(row)
	assert.Equal(t, "EC2, S3, IAM", fv["skills_demonstrated"])
	assert.Equal(t, "2024-02-01", fv["issue_date"])
}

func TestManagerCertificateOrdering(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	mk := func(name string, featured bool, order int) {
		_, err := m.Create(ctx, Certificates, adminID, map[string]any{
			"certificate_name":     name,
			"issuing_organization": "Org",
			"issue_date":           "2023-01-01",
			"featured":             featured,
			"order_index":          order,
		})
		require.NoError(t, err)
	}
	mk("plain-early", false, 0)
	mk("featured-late", true, 5)
	mk("featured-early", true, 1)

	rows, err := m.List(ctx, Certificates, adminID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "featured-early", rows[0]["certificate_name"])
	assert.Equal(t, "featured-late", rows[1]["certificate_name"])
	assert.Equal(t, "plain-early", rows[2]["certificate_name"])
}

func TestManagerUpdateOverwrites(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	row, err := m.Create(ctx, Certificates, adminID, map[string]any{
		"certificate_name":     "AWS SAA",
		"issuing_organization": "Amazon",
		"issue_date":           "2024-02-01",
		"credential_id":        "ABC-123",
	})
	require.NoError(t, err)

	// Omitting credential_id clears it; an update is a full overwrite.
	updated, err := m.Update(ctx, Certificates, adminID, row["id"].(string), map[string]any{
		"certificate_name":     "AWS SAA (renewed)",
		"issuing_organization": "Amazon",
		"issue_date":           "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "AWS SAA (renewed)", updated["certificate_name"])
	assert.Equal(t, "", updated["credential_id"])
}

func TestManagerUpdateMissing(t *testing.T) {
	m := NewManager(testDB(t))

	_, err := m.Update(context.Background(), Skills, adminID, "missing", map[string]any{"skill_name": "Go"})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	row, err := m.Create(ctx, Skills, adminID, map[string]any{"skill_name": "Go"})
	require.NoError(t, err)

	require.NoError(t, m.Delete(ctx, Skills, adminID, row["id"].(string)))

	_, err = m.Get(ctx, Skills, adminID, row["id"].(string))
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)

	// Deleting twice reports not found.
	err = m.Delete(ctx, Skills, adminID, row["id"].(string))
	ae, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestManagerDeleteOtherAdmin(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	row, err := m.Create(ctx, Skills, "admin-2", map[string]any{"skill_name": "Rust"})
	require.NoError(t, err)

	err = m.Delete(ctx, Skills, adminID, row["id"].(string))
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestManagerNextOrderIndex(t *testing.T) {
	m := NewManager(testDB(t))
	ctx := context.Background()

	n, err := m.NextOrderIndex(ctx, Skills, adminID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = m.Create(ctx, Skills, adminID, map[string]any{"skill_name": "Go"})
	require.NoError(t, err)

	n, err = m.NextOrderIndex(ctx, Skills, adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
