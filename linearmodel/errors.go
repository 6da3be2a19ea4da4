package linearmodel

import (
	"errors"
)

var ErrLengthMismatch = errors.New("the number of input and output values is different")
