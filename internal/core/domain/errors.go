package domain

import "fmt"

// The lookup pipeline reports failures through a closed set of error types.
// Wrapping kinds keep their cause as a field and implement Unwrap so
// errors.Is/As see through them.

// InvalidProgramIDError reports a program address that failed validation.
type InvalidProgramIDError struct {
	Input  string
	Reason string
}

func (e *InvalidProgramIDError) Error() string {
	return fmt.Sprintf("invalid program id %q: %s", e.Input, e.Reason)
}

// NoTransactionsError reports a program with no signature history at all.
type NoTransactionsError struct {
	Program ProgramID
}

func (e *NoTransactionsError) Error() string {
	return fmt.Sprintf("no transactions found for program %s", e.Program)
}

// TransactionNotFoundError reports a signature the node could not return.
// The node may simply not have indexed it yet, so fetches that produce this
// error are retried.
type TransactionNotFoundError struct {
	Signature Signature
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("transaction %s not found", e.Signature)
}

// MissingBlockTimeError reports a transaction whose record carries no block
// time. This is a property of the record, not a transient condition, and is
// never retried.
type MissingBlockTimeError struct {
	Signature Signature
}

func (e *MissingBlockTimeError) Error() string {
	return fmt.Sprintf("transaction %s has no block time", e.Signature)
}

// MaxRetriesError reports an operation that failed on every attempt. It
// wraps the last underlying error.
type MaxRetriesError struct {
	Operation string
	Attempts  int
	Cause     error
}

func (e *MaxRetriesError) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Operation, e.Attempts, e.Cause)
}

func (e *MaxRetriesError) Unwrap() error {
	return e.Cause
}

// AllEndpointsFailedError reports an exhausted endpoint list. Last is the
// terminal failure of the final endpoint tried.
type AllEndpointsFailedError struct {
	Endpoint  string
	Operation string
	Last      error
}

func (e *AllEndpointsFailedError) Error() string {
	return fmt.Sprintf("all endpoints failed, last error from %s during %s: %v", e.Endpoint, e.Operation, e.Last)
}

func (e *AllEndpointsFailedError) Unwrap() error {
	return e.Last
}
