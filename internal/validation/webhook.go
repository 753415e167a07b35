package validation

import (
	"strings"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

// ValidateWebhookURL accepts "" (unset) or a url under a trusted Discord prefix.
func ValidateWebhookURL(url string) error {
	if url == "" {
		return nil
	}
	for _, prefix := range domain.TrustedWebhookPrefixes {
		if strings.HasPrefix(url, prefix) {
			return nil
		}
	}
	return domain.ErrInvalidWebhookURL
}
