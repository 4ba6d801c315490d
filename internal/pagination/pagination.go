package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// Params holds a normalized page/limit pair and the resulting row offset
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse normalizes raw page/limit query values. Absent, non-numeric or
// non-positive values fall back to the defaults (page 1, limit 5).
func Parse(pageStr, limitStr string) Params {
	page := DefaultPage
	if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
		page = v
	}

	limit := DefaultLimit
	if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
		limit = v
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
