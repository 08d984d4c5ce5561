package transaction

import "errors"

// ErrCategoryNotFound covers both a nonexistent category and one owned by
// another user.
var ErrCategoryNotFound = errors.New("category not found")
