package errors

import "fmt"

type FunctionalError struct {
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type TechnicalError struct {
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type ResourceNotFoundError struct {
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// TransportError covers request-level failures against a remote collaborator:
// non-2xx responses and payloads that cannot be decoded. Details typically
// carries the status code and a body excerpt.
type TransportError struct {
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ---------------------------------------------------------------------------------------------------------------------

// Functional error
func Functional(message string, details ...any) error {
	return &FunctionalError{Message: message, Details: getDetails(details...)}
}

func (e *FunctionalError) Error() string {
	return fmt.Sprintf("FunctionalError %s", e.Message)
}

// ---------------------------------------------------------------------------------------------------------------------

// Technical error
func Technical(message string, details ...any) error {
	return &TechnicalError{Message: message, Details: getDetails(details...)}
}

func (e *TechnicalError) Error() string {
	return fmt.Sprintf("TechnicalError %s", e.Message)
}

// ---------------------------------------------------------------------------------------------------------------------

// ResourceNotFound error
func ResourceNotFound(message string, details ...any) error {
	return &ResourceNotFoundError{Message: message, Details: getDetails(details...)}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("ResourceNotFoundError %s", e.Message)
}

// ---------------------------------------------------------------------------------------------------------------------

// Transport error
func Transport(message string, details ...any) error {
	return &TransportError{Message: message, Details: getDetails(details...)}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("TransportError %s", e.Message)
}

// ---------------------------------------------------------------------------------------------------------------------

func getDetails(details ...any) any {
	if len(details) == 0 {
		return nil
	}
	if len(details) == 1 {
		return details[0]
	}
	return details
}
