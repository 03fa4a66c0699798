package ports

import "errors"

// Returned by repositories when an identifier names no document.
// Handlers translate it to 404; every other repository error is a store
// failure and becomes 500.
var ErrNotFound = errors.New("not found")
