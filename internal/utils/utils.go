package utils

import (
	"bytes"
	"unicode/utf8"
)

// TruncateText - Returns s cut to at most maxBytes bytes without splitting a UTF-8 sequence
func TruncateText(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// StringToSlot - Returns a zero padded slot of slotLength bytes holding s. The text is truncated so that
// at least one terminating zero byte remains in the slot.
func StringToSlot(s string, slotLength int64) (slot []byte) {
	slot = make([]byte, slotLength)
	if slotLength <= 0 {
		return
	}
	_ = copy(slot, TruncateText(s, int(slotLength-1)))

	return
}

// SlotToString - Returns the text stored in a slot, up to but not including the first zero byte
func SlotToString(slot []byte) string {
	if i := bytes.IndexByte(slot, 0); i >= 0 {
		return string(slot[:i])
	}
	return string(slot)
}
