package errs

// Failure taxonomy shared by the usecase and handler layers.
// Messages are user facing and must stay stable.
var (
	// Identity
	ErrUnauthenticated = New("user not authenticated")
	ErrForbidden       = New("insufficient permissions")

	// Lookup
	ErrNotFound = New("requested resource was not found")

	// Seat reservation
	ErrAlreadyRegistered       = New("you have already registered for this event")
	ErrResourceFull            = New("this event is full")
	ErrCapacityBelowRegistered = New("capacity cannot be lower than the number of registrations")

	// Merch
	ErrInvalidSize      = New("selected size is not available")
	ErrOutOfStock       = New("selected size is out of stock")
	ErrAlreadyProcessed = New("order has already been processed")
	ErrInvalidStatus    = New("invalid order status")

	// Validation
	ErrDomainValidation = New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
