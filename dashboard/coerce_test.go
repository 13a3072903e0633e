package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guildboard/types"
)

func TestCoerceBoolean(t *testing.T) {
	assert.Equal(t, true, CoerceValue(types.FieldTypeBoolean, true))
	assert.Equal(t, false, CoerceValue(types.FieldTypeBoolean, false))
	assert.Equal(t, true, CoerceValue(types.FieldTypeBoolean, "true"))
	assert.Equal(t, false, CoerceValue(types.FieldTypeBoolean, "yes"))
	assert.Equal(t, false, CoerceValue(types.FieldTypeBoolean, 1))
	assert.Equal(t, false, CoerceValue(types.FieldTypeBoolean, nil))
}

func TestCoerceNumber(t *testing.T) {
	assert.Equal(t, 3.5, CoerceValue(types.FieldTypeNumber, 3.5))
	assert.Equal(t, 4.0, CoerceValue(types.FieldTypeNumber, 4))
	assert.Equal(t, 12.0, CoerceValue(types.FieldTypeNumber, "12"))
	assert.Nil(t, CoerceValue(types.FieldTypeNumber, ""))
	assert.Nil(t, CoerceValue(types.FieldTypeNumber, "abc"))
	assert.Nil(t, CoerceValue(types.FieldTypeNumber, nil))
}

func TestCoerceStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CoerceValue(types.FieldTypeStringList, []any{" a ", "b", "", "   "}))
	assert.Equal(t, []string{}, CoerceValue(types.FieldTypeStringList, "not a list"))
	assert.Equal(t, []string{}, CoerceValue(types.FieldTypeStringList, nil))

	// Order preserved
	assert.Equal(t, []string{"z", "a", "m"}, CoerceValue(types.FieldTypeStringList, []any{"z", "a", "m"}))
}

func TestCoerceLookups(t *testing.T) {
	role := map[string]any{"id": "1", "name": "Admin"}

	assert.Equal(t, role, CoerceValue(types.FieldTypeRoleSearch, role))
	assert.Nil(t, CoerceValue(types.FieldTypeChannelSearch, nil))
	assert.Nil(t, CoerceValue(types.FieldTypeMemberSearch, "raw string"))
}

func TestCoerceDefault(t *testing.T) {
	assert.Equal(t, "hello", CoerceValue(types.FieldTypeText, "hello"))
	assert.Equal(t, "", CoerceValue(types.FieldTypeText, nil))
	assert.Equal(t, "7", CoerceValue(types.FieldTypeTextarea, 7))
	assert.Equal(t, "x", CoerceValue(types.FieldTypeURL, "x"))
}

func TestCoerceValues(t *testing.T) {
	fields := []*types.SectionField{
		{ID: "enabled", Type: types.FieldTypeBoolean},
		{ID: "threshold", Type: types.FieldTypeNumber},
		{ID: "words", Type: types.FieldTypeStringList},
	}

	out := CoerceValues(fields, map[string]any{
		"enabled":   "true",
		"threshold": "5",
		"words":     []any{" ban ", ""},
		"unknown":   42,
	})

	assert.Equal(t, true, out["enabled"])
	assert.Equal(t, 5.0, out["threshold"])
	assert.Equal(t, []string{"ban"}, out["words"])
	// No field definition: passes through untouched
	assert.Equal(t, 42, out["unknown"])
}
