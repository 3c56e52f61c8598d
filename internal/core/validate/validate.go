package validate

// Rule is a single validation check. Check returns true when the candidate
// satisfies the rule.
type Rule struct {
	Check   func() bool
	Message string
}

// Apply evaluates every rule independently, never short-circuiting, so a
// single call reports all simultaneous violations in rule order. An empty
// result means the candidate is acceptable.
func Apply(rules ...Rule) []string {
	var violations []string

	for _, rule := range rules {
		if !rule.Check() {
			violations = append(violations, rule.Message)
		}
	}

	return violations
}
