package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePIN(t *testing.T) {
	t.Run("strips non-digits and truncates to four", func(t *testing.T) {
		assert.Equal(t, "1234", SanitizePIN("12a3b45"))
	})

	t.Run("keeps short inputs as-is", func(t *testing.T) {
		assert.Equal(t, "12", SanitizePIN("1x2"))
		assert.Equal(t, "", SanitizePIN("abcd"))
	})

	t.Run("exact four digits pass through", func(t *testing.T) {
		assert.Equal(t, "0000", SanitizePIN("0000"))
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
}

func TestValidBloodGroup(t *testing.T) {
	for _, g := range BloodGroups {
		assert.True(t, ValidBloodGroup(g), g)
	}
	assert.False(t, ValidBloodGroup(""))
	assert.False(t, ValidBloodGroup("C+"))
	assert.False(t, ValidBloodGroup("o+"))
}

func TestAlertType(t *testing.T) {
	t.Run("three tiers are valid", func(t *testing.T) {
		assert.True(t, AlertLow.Valid())
		assert.True(t, AlertMedium.Valid())
		assert.True(t, AlertHigh.Valid())
		assert.False(t, AlertType("PANIC").Valid())
	})

	t.Run("descriptions match the button labels", func(t *testing.T) {
		assert.Equal(t, "Low-priority alert", AlertLow.Description())
		assert.Equal(t, "Medium-priority alert", AlertMedium.Description())
		assert.Equal(t, "High-priority alert", AlertHigh.Description())
	})
}
