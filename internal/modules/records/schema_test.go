package records

import (
	"encoding/json"
	"testing"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitListRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Go, React, Postgres", []string{"Go", "React", "Postgres"}},
		{"  Go ,,  React  ", []string{"Go", "React"}},
		{"solo", []string{"solo"}},
		{"", []string{}},
		{" , , ", []string{}},
	}
	for _, c := range cases {
		got := SplitList(c.in)
		assert.Equal(t, c.want, got, "split %q", c.in)
		// Joining and splitting again must be stable.
		assert.Equal(t, got, SplitList(JoinList(got)))
	}
}

func TestEmptyListRendersAsEmptySlice(t *testing.T) {
	f := Field{Name: "skills_demonstrated", Type: FieldList}

	// A NULL list column must serialize as [] in API payloads.
	row := map[string]any{f.Name: f.decodeValue(nil)}
	b, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills_demonstrated":[]}`, string(b))

	v, err := f.Coerce(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)

	v, err = f.Coerce(" , ")
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)
}

func TestDecodeCorruptListColumn(t *testing.T) {
	f := Field{Name: "technologies", Type: FieldList}
	assert.Equal(t, []string{}, f.decodeValue([]byte(`{not json`)))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "Go, React", JoinList([]string{"Go", "React"}))
	assert.Equal(t, "", JoinList(nil))
}

func TestFieldCoerce(t *testing.T) {
	num := Field{Name: "order_index", Type: FieldNumber}
	sw := Field{Name: "featured", Type: FieldSwitch}
	list := Field{Name: "tags", Type: FieldList}
	txt := Field{Name: "title", Type: FieldText}

	t.Run("number", func(t *testing.T) {
		v, err := num.Coerce("7")
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		v, err = num.Coerce(float64(3)) // json decodes numbers as float64
		require.NoError(t, err)
		assert.Equal(t, 3, v)

		v, err = num.Coerce(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, v)

		_, err = num.Coerce("seven")
		assert.Error(t, err)
	})

	t.Run("switch", func(t *testing.T) {
		for raw, want := range map[any]bool{"true": true, "on": true, "1": true, "false": false, "": false, true: true} {
			v, err := sw.Coerce(raw)
			require.NoError(t, err)
			assert.Equal(t, want, v, "raw %v", raw)
		}
	})

	t.Run("list", func(t *testing.T) {
		v, err := list.Coerce("a, b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v)

		v, err = list.Coerce([]any{"x", " y "})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, v)

		_, err = list.Coerce([]any{"x", 5})
		assert.Error(t, err)
	})

	t.Run("text trims", func(t *testing.T) {
		v, err := txt.Coerce("  hello ")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})
}

func TestResourceCleanRequired(t *testing.T) {
	_, err := Skills.Clean(map[string]any{"skill_name": "  "})
	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Contains(t, ae.Fields, "skill_name")
}

func TestResourceCleanSelectChoice(t *testing.T) {
	_, err := Projects.Clean(map[string]any{
		"title":       "CLI",
		"description": "A tool",
		"status":      "abandoned",
	})
	require.Error(t, err)
	ae, _ := apperr.As(err)
	assert.Contains(t, ae.Fields, "status")

	row, err := Projects.Clean(map[string]any{
		"title":       "CLI",
		"description": "A tool",
		"status":      "in-progress",
	})
	require.NoError(t, err)
	assert.Equal(t, "in-progress", row["status"])
}

func TestResourceCleanDropsUnknownKeys(t *testing.T) {
	row, err := Skills.Clean(map[string]any{
		"skill_name": "Go",
		"admin_id":   "spoofed",
		"id":         "spoofed",
	})
	require.NoError(t, err)
	assert.NotContains(t, row, "admin_id")
	assert.NotContains(t, row, "id")
}

func TestFormValues(t *testing.T) {
	row := map[string]any{
		"id":            "abc",
		"title":         "Demo reel",
		"tags":          []string{"video", "2024"},
		"featured":      true,
		"order_index":   3,
		"media_url":     "uploads/x.webp",
		"media_type":    "video",
		"thumbnail_url": nil,
	}
	fv := Media.FormValues(row)
	assert.Equal(t, "video, 2024", fv["tags"])
	assert.Equal(t, "true", fv["featured"])
	assert.Equal(t, "3", fv["order_index"])
	assert.Equal(t, "", fv["thumbnail_url"])
	assert.Equal(t, "", fv["description"])
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "order_index ASC", Skills.OrderClause())
	assert.Equal(t, "order_index DESC", Projects.OrderClause())
	assert.Equal(t, "featured DESC, order_index ASC", Certificates.OrderClause())
}

func TestLookup(t *testing.T) {
	for _, slug := range []string{"skills", "education", "experience", "projects", "media", "testimonials", "certificates"} {
		res, ok := Lookup(slug)
		require.True(t, ok, slug)
		assert.Equal(t, slug, res.Name)
	}
	_, ok := Lookup("orders")
	assert.False(t, ok)
}
