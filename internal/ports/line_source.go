package ports

import "context"

// LineSource yields raw lines of user input, terminator included.
// It fails with a domain.KindEndOfInput error once no more data is available.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}
