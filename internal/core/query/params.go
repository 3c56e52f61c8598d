package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	DefaultSortBy = "createdAt"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Params is the recognized set of task listing options. A nil Completed and
// empty Priority/Search mean the corresponding stage is skipped.
type Params struct {
	Completed *bool
	Priority  string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ParamsFromQuery parses the listing options from the request query. Absent
// or non-numeric page/limit fall back to their defaults rather than failing;
// the parsed values are otherwise taken as given, including zero and
// negative ones.
func ParamsFromQuery(query url.Values) Params {
	params := Params{
		SortBy:    DefaultSortBy,
		SortOrder: SortOrderAsc,
		Page:      getQueryInt(query, "page", DefaultPage),
		Limit:     getQueryInt(query, "limit", DefaultLimit),
	}

	if rawCompleted := query.Get("completed"); rawCompleted != "" {
		completed := rawCompleted == "true"
		params.Completed = &completed
	}

	params.Priority = query.Get("priority")
	params.Search = query.Get("search")

	if sortBy := query.Get("sortBy"); sortBy != "" {
		params.SortBy = sortBy
	}

	if query.Get("sortOrder") == SortOrderDesc {
		params.SortOrder = SortOrderDesc
	}

	return params
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultValue
	}

	return int(value)
}
