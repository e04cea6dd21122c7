/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"time"

	"github.com/ssgreg/logf"
)

// Field is a single key/value pair attached to a log entry.
type Field = logf.Field

// Field constructors.
var (
	Error    = logf.Error
	String   = logf.String
	Int      = logf.Int
	Int64    = logf.Int64
	Bool     = logf.Bool
	Duration = logf.Duration
)

// Millis returns a field with the duration rounded down to whole milliseconds.
func Millis(key string, d time.Duration) Field {
	return logf.Int64(key, d.Milliseconds())
}
