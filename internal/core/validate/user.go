package validate

import (
	"strings"
)

// UserCandidate is the raw create/update payload prior to validation.
type UserCandidate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// User checks a user candidate and returns the ordered violation messages.
// The email format check runs unconditionally, so an empty email reports a
// format violation rather than a separate "required" message.
func User(candidate UserCandidate) []string {
	return Apply(
		Rule{
			Check: func() bool {
				return strings.TrimSpace(candidate.Name) != ""
			},
			Message: "Name is required",
		},
		Rule{
			Check: func() bool {
				return len(candidate.Name) <= 100
			},
			Message: "Name must be less than 100 characters",
		},
		Rule{
			Check: func() bool {
				return strings.Contains(candidate.Email, "@") && strings.Contains(candidate.Email, ".")
			},
			Message: "Invalid email format",
		},
		Rule{
			Check: func() bool {
				return candidate.Age >= 0
			},
			Message: "Age must be non-negative",
		},
		Rule{
			Check: func() bool {
				return candidate.Age <= 150
			},
			Message: "Age must be less than 150",
		},
	)
}
