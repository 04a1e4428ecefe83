package validation

import (
	"errors"
	"strings"
	"testing"

	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = RuleTable{
	{Field: "name", Rules: []Rule{Required(), IsString(), MaxLength(5)}},
	{Field: "flag", Optional: true, Rules: []Rule{IsBoolean()}},
}

func TestRules(t *testing.T) {
	str := "abc"
	var nilStr *string

	tests := []struct {
		name     string
		rule     Rule
		value    any
		present  bool
		violated bool
		message  string
	}{
		{"required missing", Required(), nil, false, true, "f should not be empty"},
		{"required nil", Required(), nil, true, true, "f should not be empty"},
		{"required nil pointer", Required(), nilStr, true, true, "f should not be empty"},
		{"required empty string", Required(), "", true, true, "f should not be empty"},
		{"required string", Required(), "x", true, false, ""},
		{"required non-string", Required(), 5, true, false, ""},
		{"string ok", IsString(), "x", true, false, ""},
		{"string pointer ok", IsString(), &str, true, false, ""},
		{"string int", IsString(), 5, true, true, "f must be a string"},
		{"string nil", IsString(), nil, true, true, "f must be a string"},
		{"max ok", MaxLength(3), "abc", true, false, ""},
		{"max counts characters", MaxLength(3), "äöü", true, false, ""},
		{"max exceeded", MaxLength(3), "abcd", true, true, "f must be shorter than or equal to 3 characters"},
		{"max non-string", MaxLength(3), 5, true, true, "f must be shorter than or equal to 3 characters"},
		{"bool ok", IsBoolean(), false, true, false, ""},
		{"bool string", IsBoolean(), "true", true, true, "f must be a boolean value"},
		{"bool int", IsBoolean(), 1, true, true, "f must be a boolean value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, violated := tt.rule("f", tt.value, tt.present)
			assert.Equal(t, tt.violated, violated)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestMaxLengthCountsRunes(t *testing.T) {
	rule := MaxLength(3)

	_, violated := rule("name", "😀😀😀", true)
	assert.False(t, violated, "three emoji are three characters")

	_, violated = rule("name", "😀😀😀😀", true)
	assert.True(t, violated)

	_, violated = rule("name", "çãé", true)
	assert.False(t, violated, "multi-byte characters count once")
}

func TestTableValidatorAggregatesEveryRule(t *testing.T) {
	v := NewTableValidator(testTable)

	require.False(t, v.Validate(map[string]any{"name": nil, "flag": "yes"}))
	assert.Equal(t, FieldsErrors{
		"name": {
			"name should not be empty",
			"name must be a string",
			"name must be shorter than or equal to 5 characters",
		},
		"flag": {"flag must be a boolean value"},
	}, v.Errors())
}

func TestTableValidatorOptionalFields(t *testing.T) {
	v := NewTableValidator(testTable)

	assert.True(t, v.Validate(map[string]any{"name": "ok"}))
	assert.Nil(t, v.Errors())

	assert.True(t, v.Validate(map[string]any{"name": "ok", "flag": nil}))
	assert.True(t, v.Validate(map[string]any{"name": "ok", "flag": true}))
}

func TestTableValidatorErrorsAreCopies(t *testing.T) {
	v := NewTableValidator(testTable)
	require.False(t, v.Validate(map[string]any{"name": strings.Repeat("x", 6)}))

	errs := v.Errors()
	errs["name"][0] = "changed"
	errs["other"] = []string{"x"}

	assert.Equal(t, FieldsErrors{"name": {"name must be shorter than or equal to 5 characters"}}, v.Errors())
}

func TestCheck(t *testing.T) {
	v := NewTableValidator(testTable)
	require.NoError(t, Check(v, map[string]any{"name": "ok"}))

	err := Check(v, map[string]any{"flag": 1})
	require.Error(t, err)

	var vErr *EntityValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Validation Error", vErr.Error())
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	assert.Equal(t, 2, vErr.Count())
	assert.Equal(t, []string{"flag", "name"}, vErr.Fields())
	assert.NotEmpty(t, vErr.Stack())
}
