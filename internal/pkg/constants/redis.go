package constants

// Redis keys
const (
	// KeyAvailableTaxis is the set of taxi IDs currently AVAILABLE
	KeyAvailableTaxis = "taxis:available"

	// KeyNotifyFailures is the list of notification failure records awaiting
	// operator recovery
	KeyNotifyFailures = "notifications:failed"
)
