package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrSecretCodeExists = errors.New("secret code is already assigned to another employee")
)
