package regularization

import "errors"

var ErrRegularizationNotFound = errors.New("regularization not found")
