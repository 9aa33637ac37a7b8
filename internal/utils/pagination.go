package utils

import (
	"math"
)

// PerPage is the number of items on every listing page.
const PerPage = 10

// Page describes one slice of a paginated listing.
type Page struct {
	Number     int
	TotalItems int64
	TotalPages int
	Offset     int
	HasPrev    bool
	HasNext    bool
}

// Paginate computes the page slice for a listing with total items.
// A number below 1 (including unparsed input, which StringToInt turns
// into 0) becomes page 1; a number past the end clamps to the last page
// instead of returning an empty result.
func Paginate(total int64, number int) Page {
	totalPages := int(math.Ceil(float64(total) / float64(PerPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return Page{
		Number:     number,
		TotalItems: total,
		TotalPages: totalPages,
		Offset:     (number - 1) * PerPage,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
}
