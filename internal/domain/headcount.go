package domain

import (
	"strconv"
	"strings"
)

// Headcount is the expected attendance derived from stored responses.
type Headcount struct {
	// Responses is the number of stored guest records.
	Responses int `json:"responses"`
	// Attending is the number of responses that confirmed attendance.
	Attending int `json:"attending"`
	// Total is the number of seats needed: each attending response plus
	// its companions.
	Total int `json:"total"`
}

// AttendCount returns how many people a with_guest answer stands for.
// The survey asks for "yes-N" when bringing N companions and "no" otherwise.
// "no" and anything that does not parse count as the invitee alone.
func AttendCount(withGuest string) int {
	s := strings.ToLower(strings.TrimSpace(withGuest))
	rest, ok := strings.CutPrefix(s, "yes-")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 0 {
		return 1
	}
	return 1 + n
}

// IsAttending reports whether an attend_status answer is affirmative.
func IsAttending(attendStatus string) bool {
	s := strings.ToLower(strings.TrimSpace(attendStatus))
	for _, prefix := range []string{"是", "會", "yes"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
