package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiredFieldNamesField(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "email", Kind: KindString, Required: true, Format: FormatEmail},
	}}

	_, err := schema.Validate([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestValidateAppliesDefaults(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "source", Kind: KindString, Default: "contact", Enum: []string{"contact", "brochure"}},
		{Name: "message", Kind: KindString, Default: ""},
	}}

	out, err := schema.Validate([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "contact", out["source"])
	assert.Equal(t, "", out["message"])
}

func TestValidateStripsUnknownFields(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "name", Kind: KindString, Required: true},
	}}

	out, err := schema.Validate([]byte(`{"name":"Marina Heights","role":"super_admin"}`))
	require.NoError(t, err)
	assert.Equal(t, "Marina Heights", out["name"])
	_, leaked := out["role"]
	assert.False(t, leaked, "undeclared fields must be dropped")
}

func TestValidateStringLengthBoundsAreInclusive(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "name", Kind: KindString, Required: true, MinLen: 2, MaxLen: 4},
	}}

	_, err := schema.Validate([]byte(`{"name":"a"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be at least 2 characters")

	_, err = schema.Validate([]byte(`{"name":"ab"}`))
	assert.NoError(t, err)

	_, err = schema.Validate([]byte(`{"name":"abcd"}`))
	assert.NoError(t, err)

	_, err = schema.Validate([]byte(`{"name":"abcde"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be at most 4 characters")
}

func TestValidateStringLengthCountsCharacters(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "name", Kind: KindString, Required: true, MinLen: 2, MaxLen: 4},
	}}

	// Four characters, twelve bytes. Byte counting would reject it.
	_, err := schema.Validate([]byte(`{"name":"日本物件"}`))
	assert.NoError(t, err)

	_, err = schema.Validate([]byte(`{"name":"日本物件です"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be at most 4 characters")

	_, err = schema.Validate([]byte(`{"name":"日"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must be at least 2 characters")
}

func TestValidateMinLenOneReadsAsNotEmpty(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "title", Kind: KindString, MinLen: 1},
	}}

	_, err := schema.Validate([]byte(`{"title":""}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must not be empty")
}

func TestValidateEmailFormat(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "email", Kind: KindString, Required: true, Format: FormatEmail},
	}}

	_, err := schema.Validate([]byte(`{"email":"not-an-email"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")

	_, err = schema.Validate([]byte(`{"email":"sara@example.com"}`))
	assert.NoError(t, err)
}

func TestValidateEnum(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "status", Kind: KindString, Enum: []string{"draft", "published"}},
	}}

	_, err := schema.Validate([]byte(`{"status":"archived"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of: draft, published")
}

func TestValidateIntBounds(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "rating", Kind: KindInt, Required: true, Min: Bound(1), Max: Bound(5)},
	}}

	_, err := schema.Validate([]byte(`{"rating":0}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be between 1 and 5")

	_, err = schema.Validate([]byte(`{"rating":6}`))
	require.Error(t, err)

	_, err = schema.Validate([]byte(`{"rating":3.5}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be an integer")

	_, err = schema.Validate([]byte(`{"rating":5}`))
	assert.NoError(t, err)
}

func TestValidateRejectsMalformedBody(t *testing.T) {
	schema := Schema{Fields: []Field{{Name: "name", Kind: KindString}}}

	_, err := schema.Validate([]byte(`{"name":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request body")
}

func TestValidateRequireSomeRejectsEmptyPatch(t *testing.T) {
	schema := Schema{
		Fields: []Field{
			{Name: "title", Kind: KindString, MinLen: 2},
			{Name: "featured", Kind: KindBool},
		},
		RequireSome: true,
	}

	_, err := schema.Validate([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field is required")

	_, err = schema.Validate([]byte(`{"featured":true}`))
	assert.NoError(t, err)
}

func TestBindDecodesNormalizedValue(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "name", Kind: KindString, Required: true},
		{Name: "tags", Kind: KindStringSlice},
		{Name: "source", Kind: KindString, Default: "contact"},
	}}

	var out struct {
		Name   string   `json:"name"`
		Tags   []string `json:"tags"`
		Source string   `json:"source"`
	}
	err := schema.Bind([]byte(`{"name":"Bayview","tags":["waterfront","family"]}`), &out)
	require.NoError(t, err)
	assert.Equal(t, "Bayview", out.Name)
	assert.Equal(t, []string{"waterfront", "family"}, out.Tags)
	assert.Equal(t, "contact", out.Source)
}

func TestValidateSlugFormat(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "slug", Kind: KindString, Format: FormatSlug},
	}}

	_, err := schema.Validate([]byte(`{"slug":"Marina Heights"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lowercase letters, numbers and hyphens")

	_, err = schema.Validate([]byte(`{"slug":"marina-heights-2"}`))
	assert.NoError(t, err)
}
