package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/aalvaropc/promptloop/internal/domain"
)

// --- Game ---

func TestNewGame_ConsultsRandomOnce(t *testing.T) {
	rng := &fixedRandom{value: 42}
	g := NewGame(rng, 1, 100)

	assert.Equal(t, 1, rng.calls)
	assert.Equal(t, 1, rng.lo)
	assert.Equal(t, 100, rng.hi)

	assert.Equal(t, domain.Less, g.Try(10))
	assert.Equal(t, domain.Greater, g.Try(99))
	assert.Equal(t, domain.Equal, g.Try(42))
	assert.Equal(t, 3, g.Attempts())
	assert.Equal(t, 1, rng.calls)
}

// --- Program ---

func TestGuess_Transcript(t *testing.T) {
	var buf bytes.Buffer
	p := NewGuess(NewGame(&fixedRandom{value: 42}, 1, 100))
	require.NoError(t, p.Run(context.Background(), newFakeLines("10", "99", "42", "7"), &buf))

	want := strings.Join([]string{
		"Guess the number",
		"Please input your guess",
		"You guessed: 10",
		"Too small",
		"Please input your guess",
		"You guessed: 99",
		"Too big",
		"Please input your guess",
		"You guessed: 42",
		"Numbers are Equal",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestGuess_InvalidInputLeavesGameUntouched(t *testing.T) {
	var buf bytes.Buffer
	game := NewGame(&fixedRandom{value: 1}, 1, 100)
	src := newFakeLines("one", "-1", "1")
	require.NoError(t, NewGuess(game).Run(context.Background(), src, &buf))

	assert.Equal(t, 1, game.Attempts())
	assert.Equal(t, 2, strings.Count(buf.String(), "Please enter a number!"))
	assert.NotContains(t, buf.String(), "You guessed: one")
}

func TestGuess_UpperBoundary(t *testing.T) {
	var buf bytes.Buffer
	p := NewGuess(NewGame(&fixedRandom{value: 100}, 1, 100))
	require.NoError(t, p.Run(context.Background(), newFakeLines("101", "100"), &buf))
	assert.Contains(t, buf.String(), "You guessed: 101\nToo big\n")
	assert.True(t, strings.HasSuffix(buf.String(), "You guessed: 100\nNumbers are Equal\n"))
}

func TestGuess_EndOfInputIsFatal(t *testing.T) {
	p := NewGuess(NewGame(&fixedRandom{value: 50}, 1, 100))
	err := p.Run(context.Background(), newFakeLines("1", "2"), &bytes.Buffer{})
	assert.True(t, domain.IsKind(err, domain.KindEndOfInput))
}

func TestProperty_GuessTerminatesIffTargetHit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		target := rapid.IntRange(1, 100).Draw(rt, "target")
		guesses := rapid.SliceOfN(rapid.IntRange(0, 150), 0, 20).Draw(rt, "guesses")

		lines := make([]string, len(guesses))
		for i, g := range guesses {
			lines[i] = fmt.Sprint(g)
		}

		var buf bytes.Buffer
		src := newFakeLines(lines...)
		err := NewGuess(NewGame(&fixedRandom{value: target}, 1, 100)).Run(context.Background(), src, &buf)

		hit := -1
		for i, g := range guesses {
			if g == target {
				hit = i
				break
			}
		}

		var want strings.Builder
		want.WriteString("Guess the number\n")
		for i, g := range guesses {
			if hit >= 0 && i > hit {
				break
			}
			fmt.Fprintf(&want, "Please input your guess\nYou guessed: %d\n", g)
			switch {
			case g < target:
				want.WriteString("Too small\n")
			case g > target:
				want.WriteString("Too big\n")
			default:
				want.WriteString("Numbers are Equal\n")
			}
		}

		if hit >= 0 {
			if err != nil {
				rt.Fatalf("expected termination, got %v", err)
			}
			if src.reads != hit+1 {
				rt.Fatalf("read %d lines, want %d", src.reads, hit+1)
			}
		} else {
			if !domain.IsKind(err, domain.KindEndOfInput) {
				rt.Fatalf("expected end of input, got %v", err)
			}
			want.WriteString("Please input your guess\n")
		}

		if buf.String() != want.String() {
			rt.Fatalf("output mismatch\n got: %q\nwant: %q", buf.String(), want.String())
		}
	})
}
