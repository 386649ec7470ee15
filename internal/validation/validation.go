// Package validation holds the pure input validators shared by every entry
// point. Validators never touch the database: they check shape and range of
// raw values (path segments arrive as strings, body fields as typed JSON)
// and leave existence checks to the services.
package validation

import (
	"strconv"
	"strings"
)

// PositiveInt parses v as an entity identifier. It returns the parsed id and
// true iff v is a well-formed integer greater than zero.
func PositiveInt(v string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PositiveID reports whether an already-parsed identifier is positive. Body
// fields arrive as typed JSON integers and skip PositiveInt's parsing.
func PositiveID(v int) bool {
	return v > 0
}

// NonEmptyString reports whether v is non-empty after trimming whitespace
func NonEmptyString(v string) bool {
	return strings.TrimSpace(v) != ""
}

// RatingInRange reports whether v is a valid pizzeria rating. A nil value
// means "use the default" and is accepted.
func RatingInRange(v *float64) bool {
	if v == nil {
		return true
	}
	return *v >= 0 && *v <= 5
}

// PositivePrice reports whether v is a valid menu price
func PositivePrice(v float64) bool {
	return v > 0
}
