package salesdirectory

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// DirectoryFull - Custom error to inform that the directory holds max records and can't take more
type DirectoryFull struct {
	msg string
}

// Error - Used to notify that the directory is full
func (E DirectoryFull) Error() string {
	if E.msg == "" {
		return "directory full"
	}
	return E.msg
}

// MalformedID - Custom error to inform that a customer id is not a positive number
type MalformedID struct {
	msg string
}

// Error - Used to notify that a customer id is malformed
func (E MalformedID) Error() string {
	if E.msg == "" {
		return "malformed customer id"
	}
	return E.msg
}

// DuplicateID - Custom error to inform that a customer id is already held by another record
type DuplicateID struct {
	msg string
}

// Error - Used to notify that a customer id is already in use
func (E DuplicateID) Error() string {
	if E.msg == "" {
		return "customer id already exists"
	}
	return E.msg
}

// PersistenceFailure - Custom error to inform that saving or loading a data file failed.
// Any PersistenceFailure matches PersistenceFailure{} in errors.Is, and the cause is available through errors.Unwrap.
type PersistenceFailure struct {
	msg string
	err error
}

// Error - Used to notify that a data file could not be saved or loaded
func (E PersistenceFailure) Error() string {
	msg := E.msg
	if msg == "" {
		msg = "persistence failure"
	}
	if E.err != nil {
		return msg + ": " + E.err.Error()
	}
	return msg
}

// Unwrap - Returns the underlying cause
func (E PersistenceFailure) Unwrap() error {
	return E.err
}

// Is - Reports whether target is a PersistenceFailure
func (E PersistenceFailure) Is(target error) bool {
	_, ok := target.(PersistenceFailure)
	return ok
}
