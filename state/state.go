package state

import (
	"context"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/infinitybotlist/eureka/genconfig"
	"github.com/infinitybotlist/eureka/snippets"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"guildboard/config"
	"guildboard/dapi"
	"guildboard/dashboard"
	"guildboard/oauth"
	"guildboard/sessions"
	"guildboard/utils"
)

var (
	Discord      *discordgo.Session
	BotUser      *discordgo.User
	Logger       *zap.Logger
	Context      = context.Background()
	Validator    = validator.New()
	Config       *config.Config
	SessionStore sessions.Store
	OAuth        *oauth.Engine
	Helpers      *dapi.Helpers

	// Hooks is the host bot's contribution, registered before Setup.
	Hooks = &dashboard.Hooks{}
)

func Setup() {
	utils.Must(
		Validator.RegisterValidation("notblank", validators.NotBlank),
		Validator.RegisterValidation("nospaces", snippets.ValidatorNoSpaces),
		Validator.RegisterValidation("https", snippets.ValidatorIsHttps),
		Validator.RegisterValidation("httporhttps", snippets.ValidatorIsHttpOrHttps),
	)

	genconfig.GenConfig(config.Config{})

	cfg, err := os.ReadFile("config.yaml")

	if err != nil {
		panic(err)
	}

	err = yaml.Unmarshal(cfg, &Config)

	if err != nil {
		panic(err)
	}

	err = Validator.Struct(Config)

	if err != nil {
		panic("configError: " + err.Error())
	}

	Logger = snippets.CreateZap()

	if Config.Meta.RedisURL != "" {
		store, err := sessions.NewRedis(Config.Meta.RedisURL)

		if err != nil {
			panic(err)
		}

		SessionStore = store
	} else {
		SessionStore = sessions.NewMemory()
	}

	OAuth = oauth.New(Config)

	Discord, err = discordgo.New("Bot " + Config.DiscordAuth.Token)

	if err != nil {
		panic(err)
	}

	BotUser, err = Discord.User("@me")

	if err != nil {
		panic(err)
	}

	Helpers = dapi.New(Discord)

	Logger.Info(
		"Dashboard state initialized",
		zap.String("botUser", BotUser.Username),
		zap.String("basePath", Config.Dashboard.Path()),
	)
}
