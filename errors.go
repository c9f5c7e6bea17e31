package notekeeper

import "errors"

// ErrWatchUnsupported is returned by Watch for backends that cannot report changes.
var ErrWatchUnsupported = errors.New("backend does not support watching")
