package repository

import "strings"

// nullableText maps "" to NULL so empty strings never mask absent data.
func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// nullableFloat maps 0 to NULL; boards report 0 when no figure exists.
func nullableFloat(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}
