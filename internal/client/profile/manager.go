package profile

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ultraupload/ultraupload/internal/client/kvstore"
	"github.com/ultraupload/ultraupload/internal/client/models"
	"github.com/ultraupload/ultraupload/internal/common"
	"github.com/ultraupload/ultraupload/internal/logging"
)

// Manager owns the in-memory profile. Persistence is best effort: a failed
// write is logged and the in-memory value is updated anyway.
type Manager struct {
	store kvstore.Store
	log   logging.Logger

	mu      sync.RWMutex
	profile models.Profile
}

func New(store kvstore.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{store: store, log: log.With("component", "profile")}
}

// Load restores the profile from the store. A missing or malformed entry
// leaves the empty profile in place.
func (m *Manager) Load(ctx context.Context) models.Profile {
	raw, ok, err := m.store.Get(ctx, common.ProfileKey)
	switch {
	case err != nil:
		m.log.Warn(ctx, "profile not restored", "error", err)
	case ok:
		var p models.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			m.log.Warn(ctx, "malformed profile ignored", "error", err)
			break
		}
		m.mu.Lock()
		m.profile = p
		m.mu.Unlock()
	}
	return m.Profile()
}

func (m *Manager) Profile() models.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

func (m *Manager) SetBio(ctx context.Context, bio string) {
	m.Update(ctx, func(p *models.Profile) { p.Bio = bio })
}

func (m *Manager) SetWebsite(ctx context.Context, website string) {
	m.Update(ctx, func(p *models.Profile) { p.Website = website })
}

func (m *Manager) SetSocialLinks(ctx context.Context, links models.SocialLinks) {
	m.Update(ctx, func(p *models.Profile) { p.SocialLinks = links })
}

// SetSocial sets a single network handle. It returns false for an unknown
// network, in which case nothing changes.
func (m *Manager) SetSocial(ctx context.Context, network, handle string) bool {
	links := m.Profile().SocialLinks
	if !links.Set(network, handle) {
		return false
	}
	m.SetSocialLinks(ctx, links)
	return true
}

// Update applies fn to a copy of the profile, adopts the result and persists it.
func (m *Manager) Update(ctx context.Context, fn func(*models.Profile)) models.Profile {
	m.mu.Lock()
	p := m.profile
	fn(&p)
	m.profile = p
	m.mu.Unlock()

	raw, err := json.Marshal(p)
	if err != nil {
		m.log.Error(ctx, "encode profile", "error", err)
		return p
	}
	if err := m.store.Set(ctx, common.ProfileKey, string(raw)); err != nil {
		m.log.Warn(ctx, "profile not persisted", "error", err)
	}
	return p
}

// Clear forgets the profile both in memory and in the store.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.profile = models.Profile{}
	m.mu.Unlock()

	if err := m.store.Remove(ctx, common.ProfileKey); err != nil {
		m.log.Warn(ctx, "profile not removed", "error", err)
	}
}
