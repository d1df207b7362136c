package entity

import "errors"

// ErrMalformedPayload is returned when the doctor payload is not a JSON array.
var ErrMalformedPayload = errors.New("malformed doctor payload")
