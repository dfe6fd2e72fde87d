//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTruncateText(t *testing.T) {
	t.Run("short text is left as is", func(t *testing.T) {
		// Execute
		s := TruncateText("Mobile", 29)

		// Check
		assert.Equal(t, "Mobile", s, "text unchanged")
	})

	t.Run("long text is cut to max bytes", func(t *testing.T) {
		// Execute
		s := TruncateText("abcdefghij", 4)

		// Check
		assert.Equal(t, "abcd", s, "text cut")
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		// Prepare
		a := "aéb" // é is two bytes

		// Execute
		s := TruncateText(a, 2)

		// Check
		assert.Equal(t, "a", s, "cut before the partial rune")
	})
}

func TestStringToSlot(t *testing.T) {
	t.Run("text is zero padded to slot length", func(t *testing.T) {
		// Execute
		slot := StringToSlot("Male", 30)

		// Check
		assert.Equal(t, 30, len(slot), "slot has right length")
		assert.Equal(t, []byte("Male"), slot[:4], "text at start of slot")
		for i, v := range slot[4:] {
			if v != 0 {
				assert.Failf(t, "zero padding", "byte %d is not zero", i+4)
			}
		}
	})

	t.Run("text filling the slot keeps a terminator", func(t *testing.T) {
		// Execute
		slot := StringToSlot("2023-01-15X", 11)

		// Check
		assert.Equal(t, 11, len(slot), "slot has right length")
		assert.Equal(t, byte(0), slot[10], "last byte is a terminator")
		assert.Equal(t, "2023-01-15", SlotToString(slot), "text cut to fit")
	})
}

func TestSlotToString(t *testing.T) {
	t.Run("reads up to first zero byte", func(t *testing.T) {
		// Prepare
		slot := []byte{'a', 'b', 0, 'c', 0}

		// Execute
		s := SlotToString(slot)

		// Check
		assert.Equal(t, "ab", s, "text read up to terminator")
	})

	t.Run("slot without terminator is read whole", func(t *testing.T) {
		// Execute
		s := SlotToString([]byte("abc"))

		// Check
		assert.Equal(t, "abc", s, "whole slot read")
	})
}
