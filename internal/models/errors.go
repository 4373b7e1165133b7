package models

import "errors"

// Ошибки предметной области. Обработчики HTTP сопоставляют их со статусами ответа.
var (
	ErrNotFound                 = errors.New("not found")
	ErrAlreadyExists            = errors.New("already exists")
	ErrEmailAlreadyInUse        = errors.New("email is already in use")
	ErrMembershipStillActive    = errors.New("you cannot renew membership because you still have an active one")
	ErrPlanNotMarkedForDeletion = errors.New("plan is not set for deletion")
	ErrPlanHasActiveMemberships = errors.New("there are still active memberships on this plan")
	ErrWrongPassword            = errors.New("current password is wrong")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrForbidden                = errors.New("forbidden")
	ErrBadRequest               = errors.New("bad request")
	ErrValueOutOfRange          = errors.New("value is out of range")
)
