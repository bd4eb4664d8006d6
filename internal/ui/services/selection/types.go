package selection

import "errors"

// ErrUnknownTab is returned when a raw key names neither "All" nor a category
var ErrUnknownTab = errors.New("unknown tab")

// ChangeListener is notified after the active tab was replaced
type ChangeListener func()
