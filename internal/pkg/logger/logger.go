package logger

// Logger defines the logging interface.
//
// Arguments are either concatenated like fmt.Sprint, or, when the first
// argument is a message followed by key/value pairs with string keys,
// emitted as a message with structured attributes:
//
//	log.Info("Created market with id ", id)
//	log.Info("booking cancelled", "booking_id", id, "refund", true)
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
