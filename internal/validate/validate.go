package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input bounds used when collecting record fields
const (
	MinYear = 2000
	MaxYear = 2100

	MinAging, MaxAging               = 0, 100
	MinCustomerID, MaxCustomerID     = 1, 999999
	MinSales, MaxSales               = 0, 1000000
	MinQuantity, MaxQuantity         = 1, 1000
	MinDiscount, MaxDiscount         = 0, 1
	MinProfit, MaxProfit             = -1000000, 1000000
	MinShippingCost, MaxShippingCost = 0, 10000

	// MaxTextLength - Max bytes of a short text field, one byte of its slot is the terminator
	MaxTextLength = 29
)

// Date - Checks that date is formatted as YYYY-MM-DD with a year between MinYear and MaxYear,
// a month 1-12 and a day 1-31
func Date(date string) (err error) {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		err = fmt.Errorf("date must be formatted as YYYY-MM-DD")
		return
	}

	year, err := digits(date[0:4])
	if err != nil {
		return
	}
	month, err := digits(date[5:7])
	if err != nil {
		return
	}
	day, err := digits(date[8:10])
	if err != nil {
		return
	}

	if year < MinYear || year > MaxYear {
		err = fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
		return
	}
	if month < 1 || month > 12 {
		err = fmt.Errorf("month must be between 1 and 12")
		return
	}
	if day < 1 || day > 31 {
		err = fmt.Errorf("day must be between 1 and 31")
		return
	}

	return
}

// Time - Checks that time is formatted as HH:MM:SS with hours 0-23, minutes and seconds 0-59
func Time(time string) (err error) {
	if len(time) != 8 || time[2] != ':' || time[5] != ':' {
		err = fmt.Errorf("time must be formatted as HH:MM:SS")
		return
	}

	hour, err := digits(time[0:2])
	if err != nil {
		return
	}
	minute, err := digits(time[3:5])
	if err != nil {
		return
	}
	second, err := digits(time[6:8])
	if err != nil {
		return
	}

	if hour > 23 {
		err = fmt.Errorf("hour must be between 0 and 23")
		return
	}
	if minute > 59 {
		err = fmt.Errorf("minute must be between 0 and 59")
		return
	}
	if second > 59 {
		err = fmt.Errorf("second must be between 0 and 59")
		return
	}

	return
}

// Text - Checks that a text field fits within maxLength bytes
func Text(s string, maxLength int) (err error) {
	if len(s) > maxLength {
		err = fmt.Errorf("text must be at most %d bytes", maxLength)
	}

	return
}

// FloatInRange - Parses s as a float and checks that it lies within min and max (inclusive)
func FloatInRange(s string, min, max float32) (value float32, err error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		err = fmt.Errorf("not a number: %q", s)
		return
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		err = fmt.Errorf("not a finite number: %q", s)
		return
	}

	value = float32(f)
	if value < min || value > max {
		err = fmt.Errorf("enter a value between %.2f and %.2f", min, max)
	}

	return
}

// IntInRange - Parses s as an integer and checks that it lies within min and max (inclusive)
func IntInRange(s string, min, max int32) (value int32, err error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		err = fmt.Errorf("not a whole number: %q", s)
		return
	}

	value = int32(i)
	if value < min || value > max {
		err = fmt.Errorf("enter a value between %d and %d", min, max)
	}

	return
}

// digits - Parses a fixed width field of decimal digits
func digits(s string) (n int, err error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			err = fmt.Errorf("%q is not a number", s)
			return
		}
		n = n*10 + int(c-'0')
	}

	return
}
