package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUsername("john.doe"))
	assert.True(t, IsValidUsername("a_b-c1"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("john doe"))
	assert.False(t, IsValidUsername(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2026-08-27")
	assert.True(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("27-08-2026")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidClockTime("07:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("07:60"))
	assert.False(t, IsValidClockTime("0700"))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password too short"},
	}

	assert.Contains(t, errs.Error(), "username is required")
	assert.Equal(t, "password too short", errs.ToMap()["password"])
}
