package types

import (
	"github.com/bwmarrin/discordgo"
)

type RoleList struct {
	Roles []*discordgo.Role `json:"roles" description:"Roles matching the lookup query, highest first"`
}

type ChannelList struct {
	Channels []*discordgo.Channel `json:"channels" description:"Channels matching the lookup query"`
}

type MemberList struct {
	Members []*discordgo.Member `json:"members" description:"Members matching the lookup query"`
}
