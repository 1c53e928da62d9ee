package domain

import "errors"

var (
	// ErrAlreadyInitialized is returned when initialize is called on an active collection
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrNotInitialized is returned when a state-changing operation runs before initialize
	ErrNotInitialized = errors.New("collection not initialized")

	// ErrInvalidCaller is returned when the caller address is the zero address
	ErrInvalidCaller = errors.New("invalid caller")

	// ErrSupplyCapReached is returned when the next identifier would exceed the maximum supply
	ErrSupplyCapReached = errors.New("max supply reached")

	// ErrInvalidTokenURI is returned when a token URI contains the record separator
	ErrInvalidTokenURI = errors.New("invalid token uri")

	// ErrNonexistentToken is returned when a token identifier is not registered
	ErrNonexistentToken = errors.New("nonexistent token")

	// ErrTokenAlreadyExists is returned when attempting to mint a token that already exists
	ErrTokenAlreadyExists = errors.New("token already exists")

	// ErrEventAlreadyExists is returned when an event identifier is journaled twice
	ErrEventAlreadyExists = errors.New("event already exists")

	// ErrInvalidReceiver is returned when tokens would be sent to the zero address
	ErrInvalidReceiver = errors.New("invalid receiver")

	// ErrInvalidOwner is returned when querying the balance of the zero address
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrInvalidOperator is returned when the zero address is used as an operator
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrInvalidApprover is returned when the caller may not approve the token
	ErrInvalidApprover = errors.New("invalid approver")

	// ErrInsufficientApproval is returned when the caller may not move the token
	ErrInsufficientApproval = errors.New("insufficient approval")

	// ErrIncorrectOwner is returned when the from address does not own the token
	ErrIncorrectOwner = errors.New("incorrect owner")
)
