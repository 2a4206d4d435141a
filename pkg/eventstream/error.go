package eventstream

import "errors"

// ErrNilEvent is returned when a publisher is handed a nil event.
var ErrNilEvent = errors.New("event is nil")
