package service

import "fmt"

// UserDoesNotExistError reports that the acting user could not be resolved.
type UserDoesNotExistError struct {
	Username string
}

func (e UserDoesNotExistError) Error() string {
	return "Requester username not found: " + e.Username
}

// UserNotAllowedError reports a denied permission-gated action.
type UserNotAllowedError struct {
	Username string
	Action   string
}

func (e UserNotAllowedError) Error() string {
	return fmt.Sprintf("The user %s does not have permissions to %s", e.Username, e.Action)
}
