//go:build unit

package validate

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDate(t *testing.T) {
	t.Run("accepts valid dates", func(t *testing.T) {
		for _, d := range []string{"2023-01-15", "2000-01-01", "2100-12-31"} {
			assert.NoErrorf(t, Date(d), "accepts %s", d)
		}
	})

	t.Run("rejects invalid dates", func(t *testing.T) {
		for _, d := range []string{"", "2023-1-15", "2023/01/15", "1999-12-31", "2101-01-01", "2023-13-01", "2023-00-10", "2023-01-32", "2023-01-00", "20a3-01-15"} {
			assert.Errorf(t, Date(d), "rejects %q", d)
		}
	})
}

func TestTime(t *testing.T) {
	t.Run("accepts valid times", func(t *testing.T) {
		for _, tm := range []string{"00:00:00", "10:30:00", "23:59:59"} {
			assert.NoErrorf(t, Time(tm), "accepts %s", tm)
		}
	})

	t.Run("rejects invalid times", func(t *testing.T) {
		for _, tm := range []string{"", "1:30:00", "10-30-00", "24:00:00", "10:60:00", "10:30:60", "ab:cd:ef"} {
			assert.Errorf(t, Time(tm), "rejects %q", tm)
		}
	})
}

func TestText(t *testing.T) {
	t.Run("checks max length", func(t *testing.T) {
		assert.NoError(t, Text("Electronics", MaxTextLength), "short text accepted")
		assert.Error(t, Text("This text is definitely too long", MaxTextLength), "long text rejected")
	})
}

func TestFloatInRange(t *testing.T) {
	t.Run("parses values within range", func(t *testing.T) {
		// Execute
		v, err := FloatInRange(" 0.25 ", MinDiscount, MaxDiscount)

		// Check
		assert.NoError(t, err, "parses value")
		assert.Equal(t, float32(0.25), v, "correct value")
	})

	t.Run("accepts negative values when range allows", func(t *testing.T) {
		// Execute
		v, err := FloatInRange("-1", MinProfit, MaxProfit)

		// Check
		assert.NoError(t, err, "parses value")
		assert.Equal(t, float32(-1), v, "negative value kept")
	})

	t.Run("rejects values out of range or not numbers", func(t *testing.T) {
		_, err := FloatInRange("1.5", MinDiscount, MaxDiscount)
		assert.Error(t, err, "above max rejected")
		_, err = FloatInRange("-0.1", MinDiscount, MaxDiscount)
		assert.Error(t, err, "below min rejected")
		_, err = FloatInRange("abc", MinDiscount, MaxDiscount)
		assert.Error(t, err, "text rejected")
	})

	t.Run("rejects values that are not finite", func(t *testing.T) {
		for _, s := range []string{"NaN", "nan", "Inf", "-Inf", "+inf"} {
			_, err := FloatInRange(s, MinProfit, MaxProfit)
			assert.Errorf(t, err, "rejects %q", s)
		}
	})
}

func TestIntInRange(t *testing.T) {
	t.Run("parses values within range", func(t *testing.T) {
		// Execute
		v, err := IntInRange("1001", MinCustomerID, MaxCustomerID)

		// Check
		assert.NoError(t, err, "parses value")
		assert.Equal(t, int32(1001), v, "correct value")
	})

	t.Run("rejects values out of range or not numbers", func(t *testing.T) {
		_, err := IntInRange("0", MinQuantity, MaxQuantity)
		assert.Error(t, err, "below min rejected")
		_, err = IntInRange("1001", MinQuantity, MaxQuantity)
		assert.Error(t, err, "above max rejected")
		_, err = IntInRange("1.5", MinQuantity, MaxQuantity)
		assert.Error(t, err, "fraction rejected")
	})
}
