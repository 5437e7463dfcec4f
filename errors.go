package dbdm

import "errors"

// ErrParameterBounds indicates a physical parameter outside its valid
// range. Integration failures are reported with the vegas package's
// sentinel errors.
var ErrParameterBounds = errors.New("dbdm: parameter out of valid bounds")
