package constants

// NATS Subjects
const (
	// Quote events
	SubjectQuoteCreated  = "quote.created"
	SubjectQuoteRejected = "quote.rejected"

	// Service area events
	SubjectServiceAreaUpdated = "servicearea.updated"
)
