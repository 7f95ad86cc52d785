package service

import "errors"

var (
	ErrInvalidRegistrationDetails = errors.New("invalid request-user details")
	ErrAddressInconsistent        = errors.New("this address is inconsistent with the publicKey provided")
	ErrAddressReused              = errors.New("this address was registered previously and cannot be reused")

	ErrUserNotFound           = errors.New("user not found")
	ErrNotAdmin               = errors.New("only administrators may perform this operation")
	ErrInvalidDeleteDetails   = errors.New("invalid delete-user details")
	ErrServerIDIsNotSpecified = errors.New("server id is not specified")
)
