package filters

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input validation limits.
const (
	MaxGameNameLength = 16
	MaxTagLineLength  = 5
	MinTagLineLength  = 3
)

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidateGameName checks the name part of a Riot ID.
// Names may hold letters of any script, digits, spaces and a few symbols.
func ValidateGameName(gameName string) error {
	if gameName == "" {
		return ValidationError{Field: "gameName", Message: "game name cannot be empty"}
	}

	if utf8.RuneCountInString(gameName) > MaxGameNameLength {
		return ValidationError{Field: "gameName", Message: fmt.Sprintf("game name cannot exceed %d characters", MaxGameNameLength)}
	}

	for _, r := range gameName {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune(" _-.", r) {
			return ValidationError{Field: "gameName", Message: "game name contains invalid characters"}
		}
	}

	// Check for excessive whitespace
	if strings.TrimSpace(gameName) != gameName {
		return ValidationError{Field: "gameName", Message: "game name cannot start or end with whitespace"}
	}

	if strings.Contains(gameName, "  ") {
		return ValidationError{Field: "gameName", Message: "game name cannot contain consecutive spaces"}
	}

	return nil
}

// ValidateTagLine checks the part of a Riot ID after the "#".
func ValidateTagLine(tagLine string) error {
	if tagLine == "" {
		return ValidationError{Field: "tagLine", Message: "tag line cannot be empty"}
	}

	length := utf8.RuneCountInString(tagLine)
	if length < MinTagLineLength || length > MaxTagLineLength {
		return ValidationError{Field: "tagLine", Message: fmt.Sprintf("tag line must have between %d and %d characters", MinTagLineLength, MaxTagLineLength)}
	}

	for _, r := range tagLine {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ValidationError{Field: "tagLine", Message: "tag line contains invalid characters"}
		}
	}

	return nil
}
