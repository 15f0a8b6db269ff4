package crt

// InvalidKey - Custom error to inform that a nil key was passed to an operation
type InvalidKey struct {
	msg string
}

// Error - Used to notify that a key was nil
func (E InvalidKey) Error() string {
	if E.msg == "" {
		return "key is not allowed to be nil"
	}
	return E.msg
}

// InvalidValue - Custom error to inform that a nil value was passed to an operation
type InvalidValue struct {
	msg string
}

// Error - Used to notify that a value was nil
func (E InvalidValue) Error() string {
	if E.msg == "" {
		return "value is not allowed to be nil"
	}
	return E.msg
}

// InvalidConfiguration - Custom error to inform that fullness thresholds don't satisfy 0 < min < set < max < 1
type InvalidConfiguration struct {
	msg string
}

// NewInvalidConfiguration - Returns an InvalidConfiguration carrying a message pointing out the offending threshold
func NewInvalidConfiguration(msg string) InvalidConfiguration {
	return InvalidConfiguration{msg: msg}
}

// Error - Used to notify that the given fullness configuration is invalid
func (E InvalidConfiguration) Error() string {
	if E.msg == "" {
		return "fullness thresholds must satisfy 0 < min < set < max < 1"
	}
	return E.msg
}
