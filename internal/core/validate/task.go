package validate

import (
	"strings"

	"github.com/averlon/taskboard/internal/core/model"
)

// TaskCandidate is the raw create/update payload prior to validation. Fields
// are any-typed so that type mismatches surface as violation messages
// instead of decoding failures; a nil field means it was absent (or null)
// in the payload.
type TaskCandidate struct {
	Title       any `json:"title"`
	Description any `json:"description"`
	Completed   any `json:"completed"`
	Priority    any `json:"priority"`
}

// Task checks a creation candidate and returns the ordered violation
// messages, empty when the candidate is acceptable.
func Task(candidate TaskCandidate) []string {
	return Apply(taskRules(candidate, true)...)
}

// TaskUpdate checks a partial update candidate. The title-required rule only
// applies when a title is present in the payload.
func TaskUpdate(candidate TaskCandidate) []string {
	return Apply(taskRules(candidate, candidate.Title != nil)...)
}

func taskRules(candidate TaskCandidate, titleRequired bool) []Rule {
	rules := []Rule{}

	if titleRequired {
		rules = append(rules, Rule{
			Check: func() bool {
				title, ok := candidate.Title.(string)
				return ok && strings.TrimSpace(title) != ""
			},
			Message: "Title is required and must be a non-empty string",
		})
	}

	rules = append(rules,
		Rule{
			Check: func() bool {
				title, ok := candidate.Title.(string)
				return !ok || len(title) <= 200
			},
			Message: "Title must be less than 200 characters",
		},
		Rule{
			Check: func() bool {
				if candidate.Description == nil {
					return true
				}
				_, ok := candidate.Description.(string)
				return ok
			},
			Message: "Description must be a string",
		},
		Rule{
			Check: func() bool {
				description, ok := candidate.Description.(string)
				return !ok || len(description) <= 1000
			},
			Message: "Description must be less than 1000 characters",
		},
		Rule{
			Check: func() bool {
				if candidate.Completed == nil {
					return true
				}
				_, ok := candidate.Completed.(bool)
				return ok
			},
			Message: "Completed must be a boolean",
		},
		Rule{
			Check: func() bool {
				if candidate.Priority == nil {
					return true
				}
				priority, ok := candidate.Priority.(string)
				return ok && model.Priority(priority).IsValid()
			},
			Message: "Priority must be one of: low, medium, high",
		},
	)

	return rules
}
