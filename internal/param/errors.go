package param

// ParsingError reports a raw token that could not be converted to the
// descriptor's value type, or that failed enum or path validation.
type ParsingError struct {
	// Param is the metavar of the descriptor that rejected the value.
	Param string
	// Value is the raw token as supplied.
	Value   string
	Message string
}

func (e *ParsingError) Error() string {
	return e.Message
}
