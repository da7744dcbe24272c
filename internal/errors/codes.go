package errors

// Error codes for the Ember front end. E0100-E0199 is the parser range;
// lower and higher ranges stay reserved for the semantic and type-checking
// passes that consume this layer's output.
const (
	// E0100: a rule required a token the input did not provide
	ErrorUnexpectedToken = "E0100"

	// E0101: the token stream ended mid-construct
	ErrorEndOfInput = "E0101"

	// E0102: the scanner could not classify part of the input
	ErrorScanFailure = "E0102"

	// E0103: a dedent landed between outer indentation levels
	ErrorBadIndentation = "E0103"
)
