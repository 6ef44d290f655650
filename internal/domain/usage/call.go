package usage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type CallRecord struct {
	ID              uuid.UUID
	WorkspaceID     string
	ContactName     string
	ContactEmail    string
	PhoneNumber     string
	DurationSeconds int64
	StartedAt       time.Time
}

// Duration formats the call length as mm:ss, or h:mm:ss past one hour.
func (c CallRecord) Duration() string {
	d := time.Duration(c.DurationSeconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

type Page struct {
	number int
	size   int
}

func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	return Page{number: number, size: size}
}

func (p Page) Number() int { return p.number }
func (p Page) Size() int   { return p.size }
func (p Page) Offset() int { return (p.number - 1) * p.size }

func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.size) - 1) / int64(p.size))
}

type CallHistory struct {
	Items      []CallRecord
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
