package content

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// AutoMigrate would emit the models' MySQL column types (datetime(3)),
	// which the sqlite driver does not parse back into time.Time, so the
	// tables are created with sqlite-friendly types like the other module
	// tests do.
	for _, stmt := range []string{
		`CREATE TABLE skills (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			skill_name TEXT NOT NULL,
			category TEXT,
			proficiency_level INTEGER,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE education (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			institution_name TEXT NOT NULL,
			degree TEXT NOT NULL,
			field_of_study TEXT,
			grade TEXT,
			start_date DATE NOT NULL,
			end_date DATE,
			description TEXT,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE work_experiences (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			company_name TEXT NOT NULL,
			position TEXT NOT NULL,
			location TEXT,
			start_date DATE NOT NULL,
			end_date DATE,
			is_current BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT,
			technologies TEXT,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE portfolio_projects (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			image_url TEXT,
			demo_link TEXT,
			repo_link TEXT,
			technologies TEXT,
			status TEXT NOT NULL DEFAULT 'completed',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			start_date DATE,
			end_date DATE,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE media_gallery (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			media_url TEXT NOT NULL,
			media_type TEXT NOT NULL DEFAULT 'image',
			thumbnail_url TEXT,
			tags TEXT,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE testimonials (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			client_name TEXT NOT NULL,
			client_title TEXT,
			client_company TEXT,
			testimonial_text TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 5,
			client_image_url TEXT,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE certificates (
			id TEXT PRIMARY KEY,
			admin_id TEXT NOT NULL,
			certificate_name TEXT NOT NULL,
			issuing_organization TEXT NOT NULL,
			issue_date DATE NOT NULL,
			expiry_date DATE,
			credential_id TEXT,
			credential_url TEXT,
			certificate_image_url TEXT,
			description TEXT,
			skills_demonstrated TEXT,
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestCompletedProjectsFilterAndOrder(t *testing.T) {
	db := testDB(t)
	r := NewRepo(db)
	ctx := context.Background()

	mk := func(title, status string, order int) {
		require.NoError(t, db.Create(&Project{
			ID: uuid.NewString(), AdminID: "a", Title: title,
			Description: "d", Status: status, OrderIndex: order,
		}).Error)
	}
	mk("old", "completed", 1)
	mk("wip", "in-progress", 9)
	mk("new", "completed", 5)
	mk("someday", "planned", 3)

	items, err := r.CompletedProjects(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].Title)
	assert.Equal(t, "old", items[1].Title)
}

func TestSkillsAscending(t *testing.T) {
	db := testDB(t)
	r := NewRepo(db)

	for i, name := range []string{"third", "first", "second"} {
		order := []int{3, 1, 2}[i]
		require.NoError(t, db.Create(&Skill{
			ID: uuid.NewString(), AdminID: "a", SkillName: name, OrderIndex: order,
		}).Error)
	}

	items, err := r.Skills(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].SkillName)
	assert.Equal(t, "third", items[2].SkillName)
}

func TestCertificatesFeaturedFirst(t *testing.T) {
	db := testDB(t)
	r := NewRepo(db)

	mk := func(name string, featured bool, order int) {
		require.NoError(t, db.Create(&Certificate{
			ID: uuid.NewString(), AdminID: "a", CertificateName: name,
			IssuingOrganization: "org", IssueDate: date("2023-01-01"),
			Featured: featured, OrderIndex: order,
		}).Error)
	}
	mk("plain", false, 0)
	mk("star-b", true, 2)
	mk("star-a", true, 1)

	items, err := r.Certificates(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "star-a", items[0].CertificateName)
	assert.Equal(t, "star-b", items[1].CertificateName)
	assert.Equal(t, "plain", items[2].CertificateName)
}

func TestTimelineMergesNewestFirst(t *testing.T) {
	db := testDB(t)
	r := NewRepo(db)

	require.NoError(t, db.Create(&WorkExperience{
		ID: uuid.NewString(), AdminID: "a",
		CompanyName: "Acme", Position: "Engineer",
		StartDate: date("2022-06-01"), IsCurrent: true,
	}).Error)
	fos := "Computer Science"
	require.NoError(t, db.Create(&Education{
		ID: uuid.NewString(), AdminID: "a",
		InstitutionName: "State University", Degree: "B.E.",
		FieldOfStudy: &fos,
		StartDate:    date("2018-08-01"), EndDate: datePtr("2022-05-01"),
	}).Error)
	require.NoError(t, db.Create(&WorkExperience{
		ID: uuid.NewString(), AdminID: "a",
		CompanyName: "Globex", Position: "Intern",
		StartDate: date("2021-01-01"), EndDate: datePtr("2021-06-01"),
	}).Error)

	items, err := r.Timeline(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "work", items[0].Type)
	assert.Equal(t, "Engineer", items[0].Title)
	assert.Equal(t, "2022 - Present", items[0].Year)

	assert.Equal(t, "work", items[1].Type)
	assert.Equal(t, "2021 - 2021", items[1].Year)

	assert.Equal(t, "education", items[2].Type)
	assert.Equal(t, "B.E. - Computer Science", items[2].Title)
	assert.Equal(t, "State University", items[2].Organization)
	assert.Equal(t, "2018 - 2022", items[2].Year)
}

func TestYearRange(t *testing.T) {
	assert.Equal(t, "2020 - Present", YearRange(date("2020-03-01"), nil))
	assert.Equal(t, "2019 - 2021", YearRange(date("2019-01-01"), datePtr("2021-12-31")))
}

func TestStats(t *testing.T) {
	db := testDB(t)
	r := NewRepo(db)

	require.NoError(t, db.Create(&Project{ID: uuid.NewString(), AdminID: "a", Title: "p", Description: "d", Status: "completed"}).Error)
	require.NoError(t, db.Create(&Project{ID: uuid.NewString(), AdminID: "a", Title: "q", Description: "d", Status: "planned"}).Error)
	require.NoError(t, db.Create(&Skill{ID: uuid.NewString(), AdminID: "a", SkillName: "Go"}).Error)

	s, err := r.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, s.Projects, "only completed projects count")
	assert.EqualValues(t, 1, s.Skills)
	assert.EqualValues(t, 0, s.Experiences)
}
