package usecase

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/aalvaropc/promptloop/internal/domain"
)

func TestFibonacci_PrintsTerms(t *testing.T) {
	var buf bytes.Buffer
	err := NewFibonacci().Run(context.Background(), newFakeLines("5"), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Enter size of fibonacci series required\n" +
		"The fibonacci series are: \n" +
		"0\n1\n1\n2\n3\n"
	if buf.String() != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestFibonacci_ZeroTerms(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFibonacci().Run(context.Background(), newFakeLines("0"), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Enter size of fibonacci series required\nThe fibonacci series are: \n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}

func TestFibonacci_InvalidSizeIsFatal(t *testing.T) {
	var buf bytes.Buffer
	src := newFakeLines("five", "5")
	err := NewFibonacci().Run(context.Background(), src, &buf)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if src.reads != 1 {
		t.Fatalf("expected a single read, got %d", src.reads)
	}
	want := "Enter size of fibonacci series required\nEnter a number!\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}

func TestFibonacci_SizeAboveLimitIsFatal(t *testing.T) {
	for _, size := range []string{strconv.Itoa(MaxFibonacciTerms + 1), "2147483647"} {
		var buf bytes.Buffer
		err := NewFibonacci().Run(context.Background(), newFakeLines(size), &buf)
		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Fatalf("%s: expected KindInvalidInput, got %v", size, err)
		}
		want := "Enter size of fibonacci series required\nEnter a number!\n"
		if buf.String() != want {
			t.Fatalf("%s: got %q", size, buf.String())
		}
	}
}

func TestFibonacci_SizeAtLimit(t *testing.T) {
	var buf bytes.Buffer
	err := NewFibonacci().Run(context.Background(), newFakeLines(strconv.Itoa(MaxFibonacciTerms)), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// prompt + header + terms
	if got := len(lines) - 2; got != MaxFibonacciTerms {
		t.Fatalf("expected %d terms, got %d", MaxFibonacciTerms, got)
	}
}

func TestFibonacci_NoInput(t *testing.T) {
	err := NewFibonacci().Run(context.Background(), newFakeLines(), &bytes.Buffer{})
	if !domain.IsKind(err, domain.KindEndOfInput) {
		t.Fatalf("expected KindEndOfInput, got %v", err)
	}
}
