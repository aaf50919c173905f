package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrInvalidSignature = errors.New("response signature mismatch")
	ErrEmptyAddress     = errors.New("empty address")

	ErrNoSelectorNodes   = errors.New("workflow has no selector nodes")
	ErrWorkflowException = errors.New("workflow execution failed")
)
