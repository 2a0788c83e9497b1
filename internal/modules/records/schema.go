package records

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

// FieldType drives coercion, validation and form rendering for a column.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldSwitch   FieldType = "switch"
	FieldFile     FieldType = "file"
	FieldList     FieldType = "list"
	FieldURL      FieldType = "url"
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool
	Options  []Option
}

type OrderBy struct {
	Column string
	Desc   bool
}

// Resource describes one managed table: its columns, required fields
// and the listing order the admin screens expect.
type Resource struct {
	Name     string // URL slug, e.g. "skills"
	Table    string
	Singular string
	Ordering []OrderBy
	Fields   []Field
}

func (r Resource) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (r Resource) OrderClause() string {
	parts := make([]string, 0, len(r.Ordering))
	for _, o := range r.Ordering {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, o.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// SplitList turns a comma separated form value into the canonical slice
// form: items trimmed, empties dropped. An empty value is an empty
// slice, never nil, so it serializes as [] and not null.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList renders a slice back into the comma form used by edit screens.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// Coerce normalizes raw input for one field into its canonical typed value.
// Strings come from forms, json types from the API; both are accepted.
func (f Field) Coerce(raw any) (any, error) {
	switch f.Type {
	case FieldNumber:
		switch v := raw.(type) {
		case nil:
			return 0, nil
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		case string:
			if strings.TrimSpace(v) == "" {
				return 0, nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%s: not a number", f.Name)
			}
			return n, nil
		}
		return nil, fmt.Errorf("%s: not a number", f.Name)
	case FieldSwitch:
		switch v := raw.(type) {
		case nil:
			return false, nil
		case bool:
			return v, nil
		case string:
			return v == "true" || v == "on" || v == "1", nil
		case float64:
			return v != 0, nil
		case int64:
			return v != 0, nil
		}
		return false, nil
	case FieldList:
		switch v := raw.(type) {
		case nil:
			return []string{}, nil
		case []string:
			return normalizeList(v), nil
		case []any:
			items := make([]string, 0, len(v))
			for _, it := range v {
				s, ok := it.(string)
				if !ok {
					return nil, fmt.Errorf("%s: not a list of strings", f.Name)
				}
				items = append(items, s)
			}
			return normalizeList(items), nil
		case string:
			return SplitList(v), nil
		}
		return nil, fmt.Errorf("%s: not a list of strings", f.Name)
	default:
		switch v := raw.(type) {
		case nil:
			return "", nil
		case string:
			return strings.TrimSpace(v), nil
		}
		return nil, fmt.Errorf("%s: not a string", f.Name)
	}
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Clean validates and coerces a full input map against the resource
// schema. Unknown keys are dropped. Required fields that end up empty
// produce a field error map wrapped in an invalid error.
func (r Resource) Clean(input map[string]any) (map[string]any, error) {
	row := make(map[string]any, len(r.Fields))
	fieldErrs := map[string]string{}
	for _, f := range r.Fields {
		val, err := f.Coerce(input[f.Name])
		if err != nil {
			fieldErrs[f.Name] = "Invalid value."
			continue
		}
		if f.Required && isEmpty(val) {
			fieldErrs[f.Name] = f.Label + " is required."
			continue
		}
		if f.Type == FieldSelect && !isEmpty(val) && len(f.Options) > 0 {
			if !hasOption(f.Options, val.(string)) {
				fieldErrs[f.Name] = "Invalid choice."
				continue
			}
		}
		row[f.Name] = val
	}
	if len(fieldErrs) > 0 {
		return nil, apperr.InvalidErr("Please correct the highlighted fields.", fieldErrs)
	}
	return row, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case nil:
		return true
	}
	return false
}

func hasOption(opts []Option, val string) bool {
	for _, o := range opts {
		if o.Value == val {
			return true
		}
	}
	return false
}

// FormValues flattens a decoded row into the string form used when an
// edit screen repopulates its inputs. Lists are comma joined.
func (r Resource) FormValues(row map[string]any) map[string]string {
	out := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		v, ok := row[f.Name]
		if !ok || v == nil {
			out[f.Name] = ""
			continue
		}
		switch t := v.(type) {
		case []string:
			out[f.Name] = JoinList(t)
		case bool:
			out[f.Name] = strconv.FormatBool(t)
		case int:
			out[f.Name] = strconv.Itoa(t)
		case int64:
			out[f.Name] = strconv.FormatInt(t, 10)
		case float64:
			out[f.Name] = strconv.FormatInt(int64(t), 10)
		case time.Time:
			out[f.Name] = t.Format("2006-01-02")
		case string:
			out[f.Name] = t
		default:
			out[f.Name] = fmt.Sprint(t)
		}
	}
	return out
}

// decodeValue maps database raw types back to the canonical form for
// one field. gorm hands JSON columns back as []byte and booleans as
// integers depending on the driver.
func (f Field) decodeValue(v any) any {
	if v == nil {
		switch f.Type {
		case FieldList:
			return []string{}
		case FieldSwitch:
			return false
		case FieldNumber:
			return 0
		}
		return ""
	}
	switch f.Type {
	case FieldList:
		var items []string
		var err error
		switch t := v.(type) {
		case []byte:
			err = json.Unmarshal(t, &items)
		case string:
			err = json.Unmarshal([]byte(t), &items)
		case []string:
			items = t
		}
		if err != nil {
			slog.Warn("list column decode failed", "field", f.Name, "error", err)
		}
		return normalizeList(items)
	case FieldSwitch:
		switch t := v.(type) {
		case bool:
			return t
		case int64:
			return t != 0
		case []byte:
			return len(t) > 0 && t[0] == 1
		}
		return false
	case FieldNumber:
		switch t := v.(type) {
		case int:
			return t
		case int64:
			return int(t)
		case float64:
			return int(t)
		case []byte:
			n, _ := strconv.Atoi(string(t))
			return n
		}
		return 0
	case FieldDate:
		switch t := v.(type) {
		case time.Time:
			return t.Format("2006-01-02")
		case string:
			if len(t) >= 10 {
				return t[:10]
			}
			return t
		case []byte:
			s := string(t)
			if len(s) >= 10 {
				return s[:10]
			}
			return s
		}
		return ""
	default:
		switch t := v.(type) {
		case string:
			return t
		case []byte:
			return string(t)
		}
		return fmt.Sprint(v)
	}
}
