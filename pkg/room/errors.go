package room

import (
	"holdemtable-server/pkg/poker/holdem"
)

// ErrTableNotFound is returned when no table has the requested id
var ErrTableNotFound = holdem.NewError(holdem.KindNotFound, "table not found")

// ErrTableExists is returned when creating a table with an id that is in use
var ErrTableExists = holdem.NewError(holdem.KindValidation, "table already exists")
