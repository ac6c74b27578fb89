package core

// Logger is any service that can log leveled application messages.
// Implementations accept an optional trailing list of structured args
// (errors, maps, domain objects) after the message.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
