package models

import "time"

type Identity struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name,omitempty"`
	FavoriteDrivers []string  `json:"favorite_drivers"`
	FavoriteTeams   []string  `json:"favorite_teams"`
	CreatedAt       time.Time `json:"created_at"`
}

// Profile carries the caller-supplied part of an identity on sign-up.
type Profile struct {
	Name            string   `json:"name"`
	FavoriteDrivers []string `json:"favorite_drivers"`
	FavoriteTeams   []string `json:"favorite_teams"`
}

// ProfilePatch edits an identity in place; nil fields are left as they are.
type ProfilePatch struct {
	Name            *string   `json:"name"`
	FavoriteDrivers *[]string `json:"favorite_drivers"`
	FavoriteTeams   *[]string `json:"favorite_teams"`
}

func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.FavoriteDrivers = append([]string{}, i.FavoriteDrivers...)
	c.FavoriteTeams = append([]string{}, i.FavoriteTeams...)
	return &c
}

func (i *Identity) Apply(p ProfilePatch) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.FavoriteDrivers != nil {
		i.FavoriteDrivers = Dedupe(*p.FavoriteDrivers)
	}
	if p.FavoriteTeams != nil {
		i.FavoriteTeams = Dedupe(*p.FavoriteTeams)
	}
}
