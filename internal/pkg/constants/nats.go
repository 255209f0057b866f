package constants

// NATS subjects
const (
	// SubjectTaxiBookings is the per-taxi notification channel; the verb is
	// filled with the taxi ID.
	SubjectTaxiBookings = "taxi.%s.bookings"

	// SubjectBookingTake carries claim requests from taxis
	SubjectBookingTake = "booking.take"

	// QueueGroupDispatch load-balances claim consumption across instances
	QueueGroupDispatch = "dispatch"
)
