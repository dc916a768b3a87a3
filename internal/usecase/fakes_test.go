package usecase

import (
	"context"
	"io"

	"github.com/aalvaropc/promptloop/internal/domain"
)

type fakeLines struct {
	lines []string
	reads int
}

func newFakeLines(lines ...string) *fakeLines {
	return &fakeLines{lines: lines}
}

func (f *fakeLines) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.reads >= len(f.lines) {
		return "", domain.EndOfInput("fake.readline", io.EOF)
	}
	l := f.lines[f.reads]
	f.reads++
	return l + "\n", nil
}

type fixedRandom struct {
	value int
	calls int
	lo    int
	hi    int
}

func (f *fixedRandom) IntRange(lo, hi int) int {
	f.calls++
	f.lo, f.hi = lo, hi
	return f.value
}
