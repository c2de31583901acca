/**
 * @description
 * Business-rule sentinel errors for the reference-data services. These are
 * expected, recoverable outcomes that the API layer translates into HTTP
 * statuses; none of them represents a defect.
 */
package app

import "errors"

var (
	// Uniqueness rejections on creation.
	ErrOrganisationNameInUse = errors.New("organisation name already in use")
	ErrEmailAlreadyInUse     = errors.New("email already in use")
	ErrUserIDAlreadyInUse    = errors.New("user id already in use")
	ErrPbaNumberAlreadyInUse = errors.New("pba number already in use")

	// Existence failures raised by assign/unassign.
	ErrProfessionalUserDoesNotExist = errors.New("professional user does not exist")
	ErrPaymentAccountDoesNotExist   = errors.New("payment account does not exist")

	// Invalid assignment state transitions.
	ErrAccountAlreadyAssigned = errors.New("payment account is already assigned to this user")
	ErrAccountNotAssigned     = errors.New("payment account is not assigned to this user")
)
