package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the storage format for timestamps. Nanosecond
	// precision keeps creation-order sorting stable for rows created in
	// the same second.
	TimestampFormat = "2006-01-02T15:04:05.999999999Z07:00"
)
