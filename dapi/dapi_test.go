package dapi

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRoles(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "1", Name: "Moderator", Position: 3},
		{ID: "2", Name: "Bot Role", Position: 5, Managed: true},
		{ID: "3", Name: "Member", Position: 1},
		{ID: "4", Name: "Admin", Position: 4},
	}

	out := FilterRoles(roles, "", 0, false)
	require.Len(t, out, 3)
	// Highest position first, managed role gone
	assert.Equal(t, "Admin", out[0].Name)
	assert.Equal(t, "Moderator", out[1].Name)
	assert.Equal(t, "Member", out[2].Name)

	out = FilterRoles(roles, "", 0, true)
	require.Len(t, out, 4)
	assert.Equal(t, "Bot Role", out[0].Name)

	out = FilterRoles(roles, "mod", 0, false)
	require.Len(t, out, 1)
	assert.Equal(t, "Moderator", out[0].Name)

	out = FilterRoles(roles, "m", 2, false)
	assert.Len(t, out, 2)
}

func TestFilterChannels(t *testing.T) {
	nsfw := true

	channels := []*discordgo.Channel{
		{ID: "1", Name: "general", Type: discordgo.ChannelTypeGuildText},
		{ID: "2", Name: "lewd", Type: discordgo.ChannelTypeGuildText, NSFW: true},
		{ID: "3", Name: "voice-general", Type: discordgo.ChannelTypeGuildVoice},
		{ID: "4", Name: "announcements", Type: discordgo.ChannelTypeGuildNews},
	}

	out := FilterChannels(channels, "", 0, nil, nil)
	assert.Len(t, out, 4)

	out = FilterChannels(channels, "general", 0, nil, nil)
	require.Len(t, out, 2)
	assert.Equal(t, "general", out[0].Name)
	assert.Equal(t, "voice-general", out[1].Name)

	out = FilterChannels(channels, "", 0, &nsfw, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "lewd", out[0].Name)

	out = FilterChannels(channels, "", 0, nil, []int{int(discordgo.ChannelTypeGuildVoice)})
	require.Len(t, out, 1)
	assert.Equal(t, "voice-general", out[0].Name)

	notNsfw := false
	out = FilterChannels(channels, "", 0, &notNsfw, []int{int(discordgo.ChannelTypeGuildText)})
	require.Len(t, out, 1)
	assert.Equal(t, "general", out[0].Name)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLookupLimit, clampLimit(0, MaxLookupLimit))
	assert.Equal(t, DefaultLookupLimit, clampLimit(-5, MaxLookupLimit))
	assert.Equal(t, 10, clampLimit(10, MaxLookupLimit))
	assert.Equal(t, MaxLookupLimit, clampLimit(9999, MaxLookupLimit))
	assert.Equal(t, MaxMemberLookupLimit, clampLimit(5000, MaxMemberLookupLimit))
}
