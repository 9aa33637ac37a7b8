package utils

import (
	"testing"
)

func TestPaginateFirstPage(t *testing.T) {
	pg := Paginate(25, 1)
	if pg.Number != 1 {
		t.Errorf("Expected page 1, got %d", pg.Number)
	}
	if pg.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", pg.TotalPages)
	}
	if pg.Offset != 0 {
		t.Errorf("Expected offset 0, got %d", pg.Offset)
	}
	if pg.HasPrev {
		t.Error("First page should not have a previous page")
	}
	if !pg.HasNext {
		t.Error("First of three pages should have a next page")
	}
}

func TestPaginateMiddlePage(t *testing.T) {
	pg := Paginate(25, 2)
	if pg.Offset != PerPage {
		t.Errorf("Expected offset %d, got %d", PerPage, pg.Offset)
	}
	if !pg.HasPrev || !pg.HasNext {
		t.Error("Middle page should have both neighbours")
	}
}

func TestPaginateClampsPastEnd(t *testing.T) {
	// A page beyond the last clamps to the last page instead of
	// returning an empty result.
	pg := Paginate(25, 99)
	if pg.Number != 3 {
		t.Errorf("Expected clamp to page 3, got %d", pg.Number)
	}
	if pg.Offset != 20 {
		t.Errorf("Expected offset 20, got %d", pg.Offset)
	}
	if pg.HasNext {
		t.Error("Last page should not have a next page")
	}
}

func TestPaginateInvalidNumbers(t *testing.T) {
	for _, number := range []int{0, -5} {
		pg := Paginate(25, number)
		if pg.Number != 1 {
			t.Errorf("Paginate(25, %d): expected page 1, got %d", number, pg.Number)
		}
	}
}

func TestPaginateEmptyListing(t *testing.T) {
	pg := Paginate(0, 1)
	if pg.TotalPages != 1 {
		t.Errorf("Empty listing should still have one page, got %d", pg.TotalPages)
	}
	if pg.HasPrev || pg.HasNext {
		t.Error("Empty listing should have no neighbours")
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	pg := Paginate(20, 2)
	if pg.TotalPages != 2 {
		t.Errorf("Expected 2 total pages, got %d", pg.TotalPages)
	}
	if pg.HasNext {
		t.Error("Page 2 of 2 should not have a next page")
	}
}
