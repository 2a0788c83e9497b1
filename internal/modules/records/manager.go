package records

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Manager runs the shared CRUD path for every managed table. Rows are
// handled as maps keyed by column name so one implementation covers
// all resources; the Resource schema keeps the types honest.
type Manager struct{ db *gorm.DB }

func NewManager(db *gorm.DB) *Manager { return &Manager{db: db} }

func (m *Manager) List(ctx context.Context, res Resource, adminID string) ([]map[string]any, error) {
	var raw []map[string]any
	err := m.db.WithContext(ctx).
		Table(res.Table).
		Where("admin_id = ?", adminID).
		Order(res.OrderClause()).
		Find(&raw).Error
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		out = append(out, res.decodeRow(r))
	}
	return out, nil
}

func (m *Manager) Get(ctx context.Context, res Resource, adminID, id string) (map[string]any, error) {
	var raw map[string]any
	err := m.db.WithContext(ctx).
		Table(res.Table).
		Where("id = ? AND admin_id = ?", id, adminID).
		Take(&raw).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(res)
	}
	if err != nil {
		return nil, err
	}
	return res.decodeRow(raw), nil
}

func (m *Manager) Create(ctx context.Context, res Resource, adminID string, input map[string]any) (map[string]any, error) {
	clean, err := res.Clean(input)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	row := res.encodeRow(clean)
	row["id"] = uuid.NewString()
	row["admin_id"] = adminID
	row["created_at"] = now
	row["updated_at"] = now
	if err := m.db.WithContext(ctx).Table(res.Table).Create(row).Error; err != nil {
		return nil, err
	}
	return m.Get(ctx, res, adminID, row["id"].(string))
}

// Update overwrites the full record. Every schema field is written, so
// an omitted optional value clears the stored one, same as saving the
// edit form with the input blank.
func (m *Manager) Update(ctx context.Context, res Resource, adminID, id string, input map[string]any) (map[string]any, error) {
	if _, err := m.Get(ctx, res, adminID, id); err != nil {
		return nil, err
	}
	clean, err := res.Clean(input)
	if err != nil {
		return nil, err
	}
	row := res.encodeRow(clean)
	row["updated_at"] = time.Now().UTC()
	err = m.db.WithContext(ctx).
		Table(res.Table).
		Where("id = ? AND admin_id = ?", id, adminID).
		Updates(row).Error
	if err != nil {
		return nil, err
	}
	return m.Get(ctx, res, adminID, id)
}

func (m *Manager) Delete(ctx context.Context, res Resource, adminID, id string) error {
	tx := m.db.WithContext(ctx).
		Exec("DELETE FROM "+res.Table+" WHERE id = ? AND admin_id = ?", id, adminID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return notFound(res)
	}
	return nil
}

// NextOrderIndex returns the position a freshly added record should
// default to, which is the current row count for the admin.
func (m *Manager) NextOrderIndex(ctx context.Context, res Resource, adminID string) (int, error) {
	var n int64
	err := m.db.WithContext(ctx).
		Table(res.Table).
		Where("admin_id = ?", adminID).
		Count(&n).Error
	return int(n), err
}

func notFound(res Resource) error {
	return apperr.NotFoundErr(res.Singular + " not found.")
}

// encodeRow converts canonical values into what the driver stores:
// list fields become JSON columns, empty optionals become NULL.
func (r Resource) encodeRow(clean map[string]any) map[string]any {
	row := make(map[string]any, len(clean))
	for _, f := range r.Fields {
		v, ok := clean[f.Name]
		if !ok {
			continue
		}
		switch f.Type {
		case FieldList:
			items, _ := v.([]string)
			if len(items) == 0 {
				row[f.Name] = nil
				continue
			}
			b, _ := json.Marshal(items)
			row[f.Name] = datatypes.JSON(b)
		case FieldDate:
			s, _ := v.(string)
			if s == "" {
				row[f.Name] = nil
				continue
			}
			row[f.Name] = s
		default:
			if s, ok := v.(string); ok && s == "" && !f.Required {
				row[f.Name] = nil
				continue
			}
			row[f.Name] = v
		}
	}
	return row
}

func (r Resource) decodeRow(raw map[string]any) map[string]any {
	row := make(map[string]any, len(r.Fields)+2)
	if id, ok := raw["id"]; ok {
		row["id"] = stringValue(id)
	}
	if aid, ok := raw["admin_id"]; ok {
		row["admin_id"] = stringValue(aid)
	}
	for _, f := range r.Fields {
		row[f.Name] = f.decodeValue(raw[f.Name])
	}
	return row
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return ""
}
