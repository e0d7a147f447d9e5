package repo_errors

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")

	// returned by the bid repo when the referenced gig breaks a precondition
	ErrGigNotFound        = errors.New("gig not found")
	ErrGigNotOpen         = errors.New("gig is not open")
	ErrNotGigOwner        = errors.New("acting user is not the gig owner")
	ErrGigAlreadyAssigned = errors.New("gig is already assigned")
)
