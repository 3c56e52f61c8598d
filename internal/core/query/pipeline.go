package query

import (
	"slices"
	"strings"

	"github.com/averlon/taskboard/internal/core/model"
)

// Pagination describes the final filtered set: Total counts records after
// filtering but before slicing the requested page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Run applies the listing stages in fixed order: filter by completed, filter
// by priority, filter by search, stable sort, paginate. It never fails,
// whatever the combination of inputs.
func Run(tasks []*model.Task, params Params) ([]*model.Task, Pagination) {
	filtered := make([]*model.Task, 0, len(tasks))

	for _, task := range tasks {
		if params.Completed != nil && task.Completed != *params.Completed {
			continue
		}
		filtered = append(filtered, task)
	}

	if params.Priority != "" {
		filtered = slices.DeleteFunc(filtered, func(task *model.Task) bool {
			return task.Priority != model.Priority(params.Priority)
		})
	}

	if params.Search != "" {
		term := strings.ToLower(params.Search)
		filtered = slices.DeleteFunc(filtered, func(task *model.Task) bool {
			return !strings.Contains(strings.ToLower(task.Title), term) &&
				!strings.Contains(strings.ToLower(task.Description), term)
		})
	}

	slices.SortStableFunc(filtered, func(t1, t2 *model.Task) int {
		result := compareByField(t1, t2, params.SortBy)
		if params.SortOrder == SortOrderDesc {
			return -result
		}
		return result
	})

	total := len(filtered)

	start, end := sliceBounds(total, (params.Page-1)*params.Limit, params.Page*params.Limit)

	return filtered[start:end], Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages(total, params.Limit),
	}
}

// compareByField orders two tasks by the named field: strings compare
// lexicographically, booleans false before true, timestamps chronologically.
// An unrecognized field compares always-equal, so the stable sort leaves the
// prior ordering untouched.
func compareByField(t1, t2 *model.Task, field string) int {
	switch field {
	case "id":
		return strings.Compare(string(t1.ID), string(t2.ID))
	case "title":
		return strings.Compare(t1.Title, t2.Title)
	case "description":
		return strings.Compare(t1.Description, t2.Description)
	case "completed":
		return compareBool(t1.Completed, t2.Completed)
	case "priority":
		return strings.Compare(string(t1.Priority), string(t2.Priority))
	case "createdAt":
		return t1.CreatedAt.Compare(t2.CreatedAt)
	case "updatedAt":
		return t1.UpdatedAt.Compare(t2.UpdatedAt)
	default:
		return 0
	}
}

func compareBool(b1, b2 bool) int {
	switch {
	case b1 == b2:
		return 0
	case b2:
		return -1
	default:
		return 1
	}
}

// sliceBounds resolves a start/end range against a collection of length n
// the way the reference runtime slices arrays: negative offsets count from
// the end, offsets are clipped to the collection bounds and inverted ranges
// are empty. Page and limit are deliberately not clamped upstream, so this
// has to absorb zero and negative values without failing.
func sliceBounds(n, start, end int) (int, int) {
	if start < 0 {
		start = max(n+start, 0)
	} else {
		start = min(start, n)
	}

	if end < 0 {
		end = max(n+end, 0)
	} else {
		end = min(end, n)
	}

	if end < start {
		end = start
	}

	return start, end
}

// totalPages reports 0 for a non-positive limit instead of attempting the
// degenerate division.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
