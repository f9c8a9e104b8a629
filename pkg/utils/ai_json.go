package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"planora/internal/models/response_models"
)

// CleanJSONResponse strips markdown code fences and stray prose from a model
// response and extracts the outermost JSON object or array. Providers wrap
// output in ```json fences often enough that this runs on every response.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the itinerary:",
		"Here is the itinerary:",
		"Here's your itinerary:",
		"Itinerary:",
	}
	response = strings.TrimSpace(response)
	for _, prefix := range prefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimPrefix(response, prefix)
			break
		}
	}

	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingDelim(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingDelim(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelim scans for the closing delimiter matching s[start],
// ignoring delimiters inside JSON string literals.
func findMatchingDelim(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// DecodeItinerary parses a provider response into an Itinerary. Providers are
// inconsistent about wrapping, so both {"itinerary": {...}} and a bare
// itinerary object are accepted.
func DecodeItinerary(raw string) (*response_models.Itinerary, error) {
	cleaned := CleanJSONResponse(raw)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrProviderContract)
	}

	var wrapped struct {
		Itinerary *response_models.Itinerary `json:"itinerary"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && wrapped.Itinerary != nil {
		return wrapped.Itinerary, nil
	}

	var bare response_models.Itinerary
	if err := json.Unmarshal([]byte(cleaned), &bare); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderContract, err)
	}
	return &bare, nil
}

// ValidateItinerary rejects provider output that does not cover every travel
// day or ships days without activities.
func ValidateItinerary(it *response_models.Itinerary, minDays int) error {
	if it == nil {
		return fmt.Errorf("%w: empty itinerary", ErrProviderContract)
	}
	if len(it.Days) < minDays {
		return fmt.Errorf("%w: expected at least %d days, got %d", ErrProviderContract, minDays, len(it.Days))
	}
	for i, day := range it.Days {
		if len(day.Activities) == 0 {
			return fmt.Errorf("%w: day %d has no activities", ErrProviderContract, i+1)
		}
	}
	return nil
}
