package filters

import "errors"

// ErrUnknownCategory is returned when toggling a key that is not a category
var ErrUnknownCategory = errors.New("unknown category")

// ChangeListener is notified after a toggle changed the visibility map
type ChangeListener func()
