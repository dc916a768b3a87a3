package linereader

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/ports"
)

// Reader reads newline-terminated lines from an io.Reader such as os.Stdin.
type Reader struct {
	br *bufio.Reader
}

func New(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

var _ ports.LineSource = (*Reader)(nil)

// ReadLine returns the next line including its terminator. A final line without a
// newline is still returned; only a read that yields no data reports end of input.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", domain.EndOfInput("linereader.readline", err)
		}
		return "", &domain.OpError{
			Op:   "linereader.readline",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return line, nil
}
