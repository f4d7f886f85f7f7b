package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandRegistryRegister(t *testing.T) {
	registry := NewCommandRegistry()

	cmd, handler := QuestCommand()
	registry.Register(cmd, handler)

	assert.Contains(t, registry.Commands, "quest")
	assert.Contains(t, registry.Handlers, "quest")
}

func TestCommandsEqual(t *testing.T) {
	a, _ := LevelCommand()
	b, _ := LevelCommand()
	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))

	// Different option set
	c, _ := XPTableCommand()
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{c},
	))

	// Different count
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{a, c},
	))
}

func TestCommandEqualPermissions(t *testing.T) {
	plain, _ := StatsCommand()
	admin, _ := SettingsCommand()

	assert.NotNil(t, admin.DefaultMemberPermissions)
	assert.False(t, commandEqual(plain, admin))

	other, _ := SettingsCommand()
	assert.True(t, commandEqual(admin, other))
}

func TestOptionEqualChoices(t *testing.T) {
	a, _ := AdventureBoardCommand()
	b, _ := AdventureBoardCommand()
	assert.True(t, optionEqual(a.Options[0], b.Options[0]))

	// Category choices differ from the bare limit option
	assert.False(t, optionEqual(a.Options[0], a.Options[1]))
}
