// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// DictationEvent is the predicate function for dictationevent builders.
type DictationEvent func(*sql.Selector)

// RevealEvent is the predicate function for revealevent builders.
type RevealEvent func(*sql.Selector)
