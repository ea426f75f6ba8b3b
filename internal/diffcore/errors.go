package diffcore

import "errors"

var ErrUnknownAlgorithm = errors.New("diffcore: unknown diff algorithm")
