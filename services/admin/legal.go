package admin

import (
	"context"
	"encoding/json"
	"time"

	"spacehub/models"
	"spacehub/utils"

	"go.uber.org/zap"
)

// GetLegalSections returns all legal documents, served from the Redis cache
// when a cached copy exists.
func (s *DefaultAdminService) GetLegalSections() []models.LegalSection {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, utils.LegalCacheKey).Result(); err == nil {
			var cached []models.LegalSection
			if err := json.Unmarshal([]byte(raw), &cached); err == nil && len(cached) > 0 {
				return cached
			}
		}
	}

	sections := buildLegalSections()

	if s.Cache != nil {
		if raw, err := json.Marshal(sections); err == nil {
			if err := s.Cache.Set(ctx, utils.LegalCacheKey, raw, utils.LegalCacheTTL).Err(); err != nil {
				s.Logger.Warn("Failed to cache legal sections", zap.Error(err))
			}
		}
	}
	return sections
}

func buildLegalSections() []models.LegalSection {
	now := time.Now().UTC().Format(time.RFC3339)

	return []models.LegalSection{
		{
			ID:       "tos",
			Title:    "Terms of Service",
			Summary:  "These terms govern your use of the Spacehub platform.",
			Content:  generateTermsOfService(),
			Category: models.RoleSeeker,
			Version:  "v1.0",
			Updated:  now,
		},
		{
			ID:       "privacy",
			Title:    "Privacy Policy",
			Summary:  "How Spacehub collects and uses personal data.",
			Content:  generatePrivacyPolicy(),
			Category: models.RoleSeeker,
			Version:  "v1.0",
			Updated:  now,
		},
		{
			ID:       "conduct",
			Title:    "Community Guidelines & Code of Conduct",
			Summary:  "Rules all seekers and partners must follow to ensure a safe experience.",
			Content:  generateCodeOfConduct(),
			Category: models.RoleBoth,
			Version:  "v1.0",
			Updated:  now,
		},
		{
			ID:       "payments",
			Title:    "Payment & Cancellation Policy",
			Summary:  "How payments, refunds, and cancellations work on Spacehub.",
			Content:  generatePaymentPolicy(),
			Category: models.RoleBoth,
			Version:  "v1.1",
			Updated:  now,
		},
	}
}

// GetLegalSectionsFor returns legal documents relevant to the specified role.
func (s *DefaultAdminService) GetLegalSectionsFor(role string) []models.LegalSection {
	all := s.GetLegalSections()
	var filtered []models.LegalSection

	for _, section := range all {
		if section.Category == models.RoleBoth || section.Category == role {
			filtered = append(filtered, section)
		}
	}
	return filtered
}

func generateTermsOfService() string {
	return `Welcome to Spacehub. By accessing or using our platform, you agree to be bound by these Terms of Service...

1. Eligibility: You must be 18+ to use Spacehub.
2. Platform Use: Spacehub connects seekers with independent space partners.
3. Liability: Spacehub is a facilitator; partners list and manage their own spaces.
4. Payments: Payments are processed via Stripe.
5. Cancellations: Each listing may have a different cancellation policy.
6. Disputes: Disputes must be reported within 48 hours after the booking date.

Full details available on our website.`
}

func generatePrivacyPolicy() string {
	return `Spacehub values your privacy. We collect minimal personal data only as required to provide you with a seamless experience...

1. Data We Collect: Name, email, location, payment info.
2. How We Use It: Bookings, billing, communication.
3. Third Parties: Stripe (payments), analytics.
4. Rights: You can request data deletion anytime.

See our full privacy terms online.`
}

func generateCodeOfConduct() string {
	return `All Spacehub seekers and partners agree to:

- Be respectful and professional.
- Avoid discriminatory or harassing behavior.
- Represent spaces honestly in listings and reviews.
- Follow all applicable laws.

Violations may result in suspension or removal.`
}

func generatePaymentPolicy() string {
	return `1. Payments are securely processed via Stripe.
2. Seekers are charged upon booking confirmation.
3. The platform service fee and processing fee are itemized at checkout.
4. Cancellations of a paid booking are reviewed by support before any refund.
5. Refunds may be full, partial, service-fee-only, or split between parties,
   depending on the circumstances and the cancellation policy in effect.`
}
