package validation

import (
	"fmt"
	"strings"

	"github.com/jistud/coindesk-go/internal/api/request"
)

const (
	maxNameLength     = 100
	maxLangCodeLength = 10
)

// ValidateCreateCoin checks a coin create request body.
func ValidateCreateCoin(req request.CoinCreateRequest) error {
	return validateCoinFields(req.Name, req.I18nNames)
}

// ValidateUpdateCoin checks a coin update request body.
func ValidateUpdateCoin(req request.CoinUpdateRequest) error {
	return validateCoinFields(req.Name, req.I18nNames)
}

func validateCoinFields(name string, i18nNames map[string]string) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(name) == "" {
		errors["name"] = "name is required"
	} else if len(name) > maxNameLength {
		errors["name"] = fmt.Sprintf("name must be %d characters or less", maxNameLength)
	}

	// optional
	for langCode, localizedName := range i18nNames {
		if strings.TrimSpace(langCode) == "" {
			errors["i18nNames"] = "language code cannot be empty"
		} else if len(langCode) > maxLangCodeLength {
			errors["i18nNames"] = fmt.Sprintf("language code %q must be %d characters or less", langCode, maxLangCodeLength)
		} else if strings.TrimSpace(localizedName) == "" {
			errors["i18nNames"] = fmt.Sprintf("localized name for %q cannot be empty", langCode)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
