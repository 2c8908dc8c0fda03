package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Nargog/TheBridgeSystem/internal/domain"
)

// Config is the typed runtime configuration, parsed from the Nakama runtime
// env map.
type Config struct {
	BotsEnabled         bool   `env:"BRIDGE_BOTS_ENABLED" envDefault:"true"`
	BotMinDelaySec      int    `env:"BRIDGE_BOT_MIN_DELAY_SEC" envDefault:"1"`
	BotMaxDelaySec      int    `env:"BRIDGE_BOT_MAX_DELAY_SEC" envDefault:"3"`
	BotAutoFillDelaySec int    `env:"BRIDGE_BOT_AUTO_FILL_DELAY_SEC" envDefault:"5"`
	PassoutRule         string `env:"BRIDGE_PASSOUT_RULE" envDefault:"four"`
	InviteSecret        string `env:"BRIDGE_INVITE_SECRET"`
	InviteTTLSec        int    `env:"BRIDGE_INVITE_TTL_SEC" envDefault:"86400"`
	StarterPackPath     string `env:"BRIDGE_STARTER_PACK_PATH" envDefault:"data/starter_conventions.json"`
	BotIdentitiesPath   string `env:"BRIDGE_BOT_IDENTITIES_PATH" envDefault:"data/bot_identities.json"`
}

// FromRuntimeEnv parses configuration from the given env map rather than the
// process environment; Nakama hands modules their env as a map.
func FromRuntimeEnv(envMap map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: envMap}); err != nil {
		return Config{}, fmt.Errorf("parse runtime env: %w", err)
	}
	if c.BotMaxDelaySec < c.BotMinDelaySec {
		c.BotMaxDelaySec = c.BotMinDelaySec
	}
	return c, nil
}

// Rule resolves the configured passout rule, falling back to the four-pass
// rule on an unknown value.
func (c Config) Rule() domain.PassoutRule {
	rule, err := domain.ParsePassoutRule(c.PassoutRule)
	if err != nil {
		return domain.PassoutAfterFour
	}
	return rule
}
