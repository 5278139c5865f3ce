package domain

import "errors"

// ErrNotFound is returned when a city or its backing row source does not
// exist (unknown city name, missing CSV file, no rows imported for a city).
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a value is not a member of its fixed allowed
// set (city, month or day) or a source row fails to parse.
// The console re-prompts on it; the loader treats it as fatal.
var ErrValidation = errors.New("validation error")

// ErrInputClosed is returned by interactive prompts when the input stream
// ends before a valid answer was read.
var ErrInputClosed = errors.New("input closed")
