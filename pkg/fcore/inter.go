package fcore

// Optional is implemented by option.Option for every payload type.
type Optional interface {
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if no value is present
	IsNone() bool
}

// Fallible is implemented by result.Result for every payload and error type.
type Fallible interface {
	// IsOk returns true if the outcome carries a success value
	IsOk() bool
	// IsError returns true if the outcome carries an error reason
	IsError() bool
}
