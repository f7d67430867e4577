package lang

import "errors"

var (
	// ErrUnbalancedQuotes is returned when a line ends inside a quote or
	// with a dangling escape byte.
	ErrUnbalancedQuotes = errors.New("unbalanced quotes")

	// ErrMissingRedirectionTarget is returned when a redirection operator
	// is the last token on a line, with no filename following it.
	ErrMissingRedirectionTarget = errors.New("missing filename after redirection operator")
)
