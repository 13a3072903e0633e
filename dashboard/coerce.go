package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"guildboard/types"
)

// CoerceValue normalizes one submitted field value per its field type.
// The contract crosses the wire as untyped JSON, so both sides must
// apply it identically:
//
//   - boolean: strict boolean, with "true"/"false" strings accepted
//   - number: float64, or nil when the input was an empty string
//   - string-list: ordered list of trimmed, non-empty strings
//   - role/channel/member-search: the selected object, or nil
//   - everything else: the raw string form of the value
func CoerceValue(fieldType types.FieldType, v any) any {
	switch fieldType {
	case types.FieldTypeBoolean:
		switch b := v.(type) {
		case bool:
			return b
		case string:
			return b == "true"
		default:
			return false
		}
	case types.FieldTypeNumber:
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			if n == "" {
				return nil
			}

			f, err := strconv.ParseFloat(n, 64)

			if err != nil {
				return nil
			}

			return f
		default:
			return nil
		}
	case types.FieldTypeStringList:
		list, ok := v.([]any)

		if !ok {
			return []string{}
		}

		out := []string{}

		for _, item := range list {
			s, ok := item.(string)

			if !ok {
				s = fmt.Sprintf("%v", item)
			}

			s = strings.TrimSpace(s)

			if s != "" {
				out = append(out, s)
			}
		}

		return out
	case types.FieldTypeRoleSearch, types.FieldTypeChannelSearch, types.FieldTypeMemberSearch:
		if obj, ok := v.(map[string]any); ok {
			return obj
		}

		return nil
	default:
		if v == nil {
			return ""
		}

		if s, ok := v.(string); ok {
			return s
		}

		return fmt.Sprintf("%v", v)
	}
}

// CoerceValues applies CoerceValue across an action payload using the
// owning section's field types. Values without a matching field pass
// through untouched.
func CoerceValues(fields []*types.SectionField, values map[string]any) map[string]any {
	fieldTypes := make(map[string]types.FieldType, len(fields))

	for _, f := range fields {
		fieldTypes[f.ID] = f.Type
	}

	out := make(map[string]any, len(values))

	for id, v := range values {
		ft, ok := fieldTypes[id]

		if !ok {
			out[id] = v
			continue
		}

		out[id] = CoerceValue(ft, v)
	}

	return out
}
