package helper

import (
	"fmt"
	"time"
)

// yearsAhead 信用卡到期年份選項涵蓋今年起 16 年
const yearsAhead = 15

// MonthOption is one entry of the card expiry month select list.
type MonthOption struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Months returns "1 - January" through "12 - December".
func Months() []MonthOption {
	months := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, MonthOption{
			Label: fmt.Sprintf("%d - %s", int(m), m.String()),
			Value: int(m),
		})
	}
	return months
}

// Years returns the year of now through fifteen years later.
func Years(now time.Time) []int {
	start := now.Year()
	years := make([]int, 0, yearsAhead+1)
	for y := start; y <= start+yearsAhead; y++ {
		years = append(years, y)
	}
	return years
}
