package service

import "errors"

var (
	ErrNodeNotFound = errors.New("node type not found")

	ErrAuthDisabled            = errors.New("token signing is not configured")
	ErrEmptyOperator           = errors.New("operator name is empty")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
