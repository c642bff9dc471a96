package game

import "errors"

// Validation failures. Every one of these leaves the state untouched.
var (
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrInsufficientResearch  = errors.New("insufficient research points")
	ErrUnknownBuilding       = errors.New("unknown building kind")
	ErrUnknownResource       = errors.New("unknown resource")
	ErrUnknownManager        = errors.New("unknown manager offer")
	ErrUnknownUpgrade        = errors.New("unknown upgrade")
	ErrNothingToPrestige     = errors.New("not enough progress to prestige")
)
