package domain

import "errors"

// Kind classifies a failure so the transport can pick a status code.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindBadRequest      Kind = "bad_request"
	KindConflict        Kind = "conflict"
	KindRateLimited     Kind = "rate_limited"
	KindInternal        Kind = "internal"
)

// Error is a typed domain failure. Sentinel values are compared with errors.Is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

var (
	ErrUnauthenticated    = newError(KindUnauthenticated, "authentication required")
	ErrInvalidToken       = newError(KindUnauthenticated, "invalid token")
	ErrInvalidCredentials = newError(KindUnauthenticated, "invalid credentials")
	ErrForbidden          = newError(KindForbidden, "You do not have access to this resource")

	ErrUserNotFound       = newError(KindNotFound, "User does not exist")
	ErrRolesNotFound      = newError(KindNotFound, "None of the roles exist")
	ErrAdminRoleImmutable = newError(KindBadRequest, "Admin role cannot be changed")
	ErrDuplicateEmail     = newError(KindConflict, "email already registered")
	ErrGuestRoleMissing   = newError(KindInternal, "guest role is not seeded")

	ErrAgentNotFound    = newError(KindNotFound, "agent not found")
	ErrCustomerNotFound = newError(KindNotFound, "customer not found")
	ErrOrderNotFound    = newError(KindNotFound, "order not found")
	ErrDuplicateRecord  = newError(KindConflict, "record already exists")
	ErrInvalidInput     = newError(KindBadRequest, "invalid input")
	ErrPasswordTooLong  = newError(KindBadRequest, "password must be at most 72 bytes")
)

// KindOf returns the kind of the first domain Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the message of the first domain Error in err's chain,
// without the context added by wrapping.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
