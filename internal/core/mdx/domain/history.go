package domain

import "time"

// CompiledQuery is a compiled MDX statement recorded in the query history.
type CompiledQuery struct {
	ID        int64
	Name      string
	Cube      string
	MDX       string
	CreatedAt time.Time
}
