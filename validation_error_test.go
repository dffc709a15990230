package marketkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/marketkit"
	"github.com/dmitrymomot/marketkit/pkg/schemas"
	"github.com/dmitrymomot/marketkit/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		e := marketkit.NewValidationError()
		assert.True(t, e.IsEmpty())
		assert.Equal(t, "validation failed", e.Error())
		assert.False(t, e.Has("title"))
	})

	t.Run("add and get", func(t *testing.T) {
		e := marketkit.NewValidationError()
		e.Add("title", "too short")
		e.Add("title", "looks spammy")

		assert.True(t, e.Has("title"))
		assert.Equal(t, "too short", e.Get("title"))
		assert.Contains(t, e.Error(), "title: too short")
	})
}

func TestFromValidationErrors(t *testing.T) {
	err := validator.Apply(
		validator.Required("city", ""),
		validator.Positive("price", -1),
	)
	require.Error(t, err)

	e := marketkit.FromValidationErrors(validator.ExtractValidationErrors(err))
	assert.True(t, e.Has("city"))
	assert.True(t, e.Has("price"))
}

func TestFromIssues(t *testing.T) {
	result := schemas.ParseProfileUpdate(schemas.ProfileUpdate{Name: "x9"})
	require.False(t, result.OK)

	e := marketkit.FromIssues(result.Issues)
	assert.True(t, e.Has("name"))
	assert.True(t, e.Has("phone_number"))
	assert.True(t, e.Has("city"))
}
