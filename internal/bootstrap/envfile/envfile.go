// Package envfile materializes the project's environment file from its
// checked-in template. An existing file is never touched, so user edits
// survive any number of re-runs.
package envfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// ErrTemplateMissing means the environment template itself is gone,
// which indicates a corrupted checkout. There is no fallback content.
var ErrTemplateMissing = errors.New("environment template not found")

// Ensure copies templatePath to path verbatim if path does not exist.
// Calling it twice produces no observable difference the second time.
func Ensure(log zerolog.Logger, path, templatePath string) error {
	if _, err := os.Stat(path); err == nil {
		log.Debug().Str("path", path).Msg("environment file already exists, leaving it alone")
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking environment file: %w", err)
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateMissing, templatePath)
		}
		return fmt.Errorf("reading environment template: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing environment file: %w", err)
	}
	log.Info().Str("path", path).Msg("created environment file from template")
	return nil
}
