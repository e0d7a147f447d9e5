package service

import "errors"

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindInvalidState
)

// Error is a tagged service error: the kind tells the caller which failure
// class it is looking at, so handlers and tests discriminate on the tag
// instead of on message text.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrGigNotFound  = &Error{KindNotFound, "gig not found"}
	ErrBidNotFound  = &Error{KindNotFound, "bid not found"}
	ErrUserNotFound = &Error{KindNotFound, "user not found"}

	ErrNotGigOwner = &Error{KindForbidden, "only the gig owner can do this"}

	ErrGigAlreadyAssigned = &Error{KindInvalidState, "gig already assigned"}
	ErrGigNotOpen         = &Error{KindInvalidState, "gig not open for bidding"}
	ErrEmailAlreadyTaken  = &Error{KindInvalidState, "email already registered"}

	ErrInvalidGigInput = &Error{KindValidation, "title, description and a positive budget are required"}
	ErrInvalidBidInput = &Error{KindValidation, "message and a positive price are required"}

	ErrInvalidCredentials = &Error{KindUnauthenticated, "invalid email or password"}
)

// KindOf reports the kind of a service error, or zero for untagged errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
