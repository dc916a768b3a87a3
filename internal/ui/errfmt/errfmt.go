// Package errfmt turns errors into the short lines shown to users by the CLI and the TUI.
package errfmt

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/promptloop/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindEndOfInput:
			return "No more input"

		case domain.KindInvalidInput:
			return "Expected a whole number"

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "configfinder") {
				return "Config not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if errors.Is(err, domain.ErrInvalidConfig) {
				return "Invalid config at " + base + ": " + detail(err)
			}
			return "Invalid config at " + base

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrInvalidConfig) {
		return "Invalid config: " + detail(err)
	}
	return err.Error()
}

// detail keeps what follows the ErrInvalidConfig sentinel in the message.
func detail(err error) string {
	s := err.Error()
	marker := domain.ErrInvalidConfig.Error() + ": "
	if i := strings.LastIndex(s, marker); i >= 0 {
		return s[i+len(marker):]
	}
	return s
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
