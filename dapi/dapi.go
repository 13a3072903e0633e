// Package dapi wraps the bot-token Discord REST calls that back the
// dashboard's autocomplete lookups.
package dapi

import (
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	DefaultLookupLimit = 25
	MaxLookupLimit     = 50

	// Discord's member search endpoint accepts up to 1000.
	MaxMemberLookupLimit = 1000
)

type Helpers struct {
	Discord *discordgo.Session
}

func New(discord *discordgo.Session) *Helpers {
	return &Helpers{Discord: discord}
}

func clampLimit(limit, max int) int {
	if limit <= 0 {
		return DefaultLookupLimit
	}

	if limit > max {
		return max
	}

	return limit
}

func matchesQuery(name, q string) bool {
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(q))
}

// FilterRoles narrows a guild's role list to the ones matching the
// query, highest role first. Managed (integration-owned) roles are
// excluded unless includeManaged is set as they cannot be assigned.
func FilterRoles(roles []*discordgo.Role, q string, limit int, includeManaged bool) []*discordgo.Role {
	limit = clampLimit(limit, MaxLookupLimit)

	sorted := make([]*discordgo.Role, len(roles))
	copy(sorted, roles)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})

	out := []*discordgo.Role{}

	for _, role := range sorted {
		if role.Managed && !includeManaged {
			continue
		}

		if !matchesQuery(role.Name, q) {
			continue
		}

		out = append(out, role)

		if len(out) >= limit {
			break
		}
	}

	return out
}

// FilterChannels narrows a guild's channel list by query, NSFW flag
// and channel type. A nil nsfw matches both; an empty channelTypes
// list matches every type.
func FilterChannels(channels []*discordgo.Channel, q string, limit int, nsfw *bool, channelTypes []int) []*discordgo.Channel {
	limit = clampLimit(limit, MaxLookupLimit)

	out := []*discordgo.Channel{}

	for _, ch := range channels {
		if nsfw != nil && ch.NSFW != *nsfw {
			continue
		}

		if len(channelTypes) > 0 {
			found := false

			for _, ct := range channelTypes {
				if int(ch.Type) == ct {
					found = true
					break
				}
			}

			if !found {
				continue
			}
		}

		if !matchesQuery(ch.Name, q) {
			continue
		}

		out = append(out, ch)

		if len(out) >= limit {
			break
		}
	}

	return out
}

func (h *Helpers) SearchRoles(guildID, q string, limit int, includeManaged bool) ([]*discordgo.Role, error) {
	roles, err := h.Discord.GuildRoles(guildID)

	if err != nil {
		return nil, err
	}

	return FilterRoles(roles, q, limit, includeManaged), nil
}

func (h *Helpers) SearchChannels(guildID, q string, limit int, nsfw *bool, channelTypes []int) ([]*discordgo.Channel, error) {
	channels, err := h.Discord.GuildChannels(guildID)

	if err != nil {
		return nil, err
	}

	return FilterChannels(channels, q, limit, nsfw, channelTypes), nil
}

// SearchMembers uses Discord's own member search endpoint, so there is
// no local filtering beyond the limit clamp. An empty query returns
// nothing (Discord rejects it), mirrored here to save the round trip.
func (h *Helpers) SearchMembers(guildID, q string, limit int) ([]*discordgo.Member, error) {
	if q == "" {
		return []*discordgo.Member{}, nil
	}

	return h.Discord.GuildMembersSearch(guildID, q, clampLimit(limit, MaxMemberLookupLimit))
}

func (h *Helpers) GetChannel(channelID string) (*discordgo.Channel, error) {
	return h.Discord.Channel(channelID)
}

// GetRole scans the guild's role list as Discord has no single-role
// fetch on this API version.
func (h *Helpers) GetRole(guildID, roleID string) (*discordgo.Role, error) {
	roles, err := h.Discord.GuildRoles(guildID)

	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if role.ID == roleID {
			return role, nil
		}
	}

	return nil, nil
}

func (h *Helpers) GetGuildMember(guildID, userID string) (*discordgo.Member, error) {
	return h.Discord.GuildMember(guildID, userID)
}
