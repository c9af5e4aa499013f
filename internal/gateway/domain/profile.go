package domain

// Profile is the onboarding/preferences record owned by the backend.
// The gateway never stores one; it only shuttles them between the
// browser and the backend's /profiles/me endpoints.
type Profile struct {
	ID                  int64    `json:"id,omitempty"`
	UserID              int64    `json:"user_id,omitempty"`
	Role                string   `json:"role,omitempty"`
	Language            string   `json:"language,omitempty"`
	Newsletter          bool     `json:"newsletter"`
	DigestFrequency     string   `json:"digest_frequency,omitempty"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
	TopicSlugs          []string `json:"topic_slugs,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty"`
}
