package usecase

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate profile not found")
	ErrUnauthorized      = errors.New("unauthorized")
)
