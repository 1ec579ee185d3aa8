// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 200
)

/* ===============================
   Paging resolver (query → page/limit)
=================================*/

type Paging struct {
	Page  int
	Limit int
}

// ResolvePaging membaca ?page= & ?limit= (alias ?per_page=) dan normalisasi.
func ResolvePaging(c *fiber.Ctx) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = DefaultPage
	}

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page", strconv.Itoa(DefaultPerPage)))
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = DefaultPerPage
	}
	if limit > MaxPerPage {
		limit = MaxPerPage
	}

	return Paging{Page: page, Limit: limit}
}

/* ===============================
   Page builder (in-memory slicing)
=================================*/

// PageMeta: amplop pagination yang dikonsumsi tabel di dashboard.
type PageMeta struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func BuildPageMeta(total, page, limit int) PageMeta {
	if limit <= 0 {
		limit = DefaultPerPage
	}
	if page <= 0 {
		page = DefaultPage
	}
	totalPages := (total + limit - 1) / limit
	return PageMeta{
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// SliceBounds menghitung [start,end) yang aman untuk slice sepanjang total.
// Page di luar jangkauan menghasilkan start==end (halaman kosong, bukan error).
func SliceBounds(total, page, limit int) (int, int) {
	if limit <= 0 {
		limit = DefaultPerPage
	}
	if page <= 0 {
		page = DefaultPage
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
