package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PageParams struct {
	Page     int
	PageSize int
}

// ParsePageParams reads ?currentPage= and ?pageSize=. Absent params fall back
// to the defaults; present but non-numeric or non-positive values are a client
// error, per the 400 contract for invalid pagination input.
func ParsePageParams(c *fiber.Ctx) (PageParams, error) {
	p := PageParams{Page: DefaultPage, PageSize: DefaultPageSize}

	if raw := strings.TrimSpace(c.Query("currentPage")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid currentPage: %q", raw)
		}
		p.Page = n
	}
	if raw := strings.TrimSpace(c.Query("pageSize")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, fmt.Errorf("invalid pageSize: %q", raw)
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.PageSize = n
	}
	return p, nil
}

func (p PageParams) Limit() int64 { return int64(p.PageSize) }
func (p PageParams) Skip() int64 { return int64((p.Page - 1) * p.PageSize) }

// TotalPages computes ceil(total/pageSize).
func (p PageParams) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.PageSize)))
}

// Paged is the list payload for paginated endpoints.
type Paged struct {
	Items      interface{} `json:"items"`
	TotalPages int         `json:"totalPages"`
}
