package portalsdk

import (
	"context"
	"errors"
	"net/http"
)

// maxProfileRetries bounds how many consecutive profile fetch failures
// a session tolerates before latching. An endlessly failing profile
// endpoint must not turn into an endless retry loop.
const maxProfileRetries = 3

// ErrProfileRetriesExhausted is returned once maxProfileRetries
// consecutive fetches have failed. The latch holds until a fetch
// succeeds or ResetProfileRetries is called.
var ErrProfileRetriesExhausted = errors.New("portalsdk: profile retries exhausted")

// ErrProfileNotFound means the user exists but never completed
// onboarding. Not counted against the retry budget; retrying will not
// create a profile.
var ErrProfileNotFound = errors.New("portalsdk: profile not found")

// Profile fetches the caller's profile, caching the result on the
// session. Consecutive failures are counted and latch into
// ErrProfileRetriesExhausted; a success resets the counter.
func (s *Session) Profile(ctx context.Context) (*Profile, error) {
	s.mu.RLock()
	exhausted := s.profileRetries >= maxProfileRetries
	s.mu.RUnlock()
	if exhausted {
		return nil, ErrProfileRetriesExhausted
	}

	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/profile/me", nil, nil)
	if err != nil {
		s.recordProfileFailure()
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		if IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		s.recordProfileFailure()
		return nil, err
	}

	s.mu.Lock()
	s.profile = &profile
	s.profileRetries = 0
	s.mu.Unlock()

	return &profile, nil
}

// CachedProfile returns the last successfully fetched profile without
// a network call, or nil when none is cached.
func (s *Session) CachedProfile() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// UpdateProfile relays a partial patch to the gateway and caches the
// updated record. A success also clears the retry latch.
func (s *Session) UpdateProfile(ctx context.Context, patch ProfileUpdate) (*Profile, error) {
	resp, err := s.client.patchJSON(ctx, "/api/profile/update", patch)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = &profile
	s.profileRetries = 0
	s.mu.Unlock()

	return &profile, nil
}

// ResetProfileRetries clears the retry latch so Profile can be
// attempted again, typically after the user takes some corrective
// action.
func (s *Session) ResetProfileRetries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileRetries = 0
}

func (s *Session) recordProfileFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileRetries++
}
