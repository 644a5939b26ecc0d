// Package validation checks user-supplied options before any calculation
// runs: output formats, languages, delimiters and input files.
package validation

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// SupportedFormats lists the output formats the report package renders.
var SupportedFormats = []string{"text", "json", "yaml", "csv"}

// SupportedLanguages lists the languages of the built-in message catalog.
var SupportedLanguages = []string{"en", "tr"}

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file path is empty")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}

	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	if slices.Contains(SupportedFormats, strings.ToLower(format)) {
		return nil
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, quoteList(SupportedFormats))
}

// IsValidLanguage checks if the given language has a message catalog.
func IsValidLanguage(lang string) error {
	_, err := NormalizeLanguage(lang)
	return err
}

// NormalizeLanguage reduces a BCP 47 tag such as "tr-TR" or "en_US" to the
// catalog language it selects.
func NormalizeLanguage(lang string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
	if err == nil {
		base, _ := tag.Base()
		if slices.Contains(SupportedLanguages, base.String()) {
			return base.String(), nil
		}
	}
	return "", fmt.Errorf("unsupported language: %s. Supported languages are %s", lang, quoteList(SupportedLanguages))
}

// IsValidDelimiter checks that a CSV delimiter is a single character other
// than a quote or line break.
func IsValidDelimiter(delimiter string) error {
	runes := []rune(delimiter)
	if len(runes) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", delimiter)
	}
	switch runes[0] {
	case '"', '\r', '\n':
		return fmt.Errorf("CSV delimiter cannot be %q", delimiter)
	}
	return nil
}

// IsValidFilePermissions checks that a file holding personal financial data
// is not readable by others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0640", mode.String())
	}
	return nil
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
