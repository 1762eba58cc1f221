package roster

import "errors"

// Sentinel kinds for roster assembly errors.
var (
	ErrStarterNotRostered = errors.New("starter not in roster players")
	ErrNilCatalog         = errors.New("nil catalog")
	ErrNilIndex           = errors.New("nil ranking index")
)
