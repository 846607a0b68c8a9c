package types

import (
	"cosmossdk.io/errors"
)

const ModuleName = "datalens"

// Datalens errors
var (
	ErrLengthMismatch = errors.Register(ModuleName, 2, "labels and values must be the same length: %d labels, %d values")
	ErrUnknownDataset = errors.Register(ModuleName, 3, "deviation threshold references unknown dataset %s")
	ErrBadThreshold   = errors.Register(ModuleName, 4, "deviation threshold for %s must be a positive number: %s")
	ErrUnknownStatus  = errors.Register(ModuleName, 5, "unknown task status: %s")
)
