package bot

import (
	"fmt"
)

// BotLevel selects a strategy family.
type BotLevel int

const (
	BotLevelPasser BotLevel = iota
	BotLevelSteady
)

// NewBrain creates a strategy for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelPasser:
		return &PasserBot{}, nil
	case BotLevelSteady:
		return &SteadyBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// levelForDifficulty maps an identity difficulty string to a level.
// Unknown values get the steady strategy so tables never stall on a
// misconfigured bot.
func levelForDifficulty(difficulty string) BotLevel {
	if difficulty == "passer" {
		return BotLevelPasser
	}
	return BotLevelSteady
}

// NewAgent builds an agent for a provisioned bot user id, using the
// difficulty from its identity configuration.
func NewAgent(userID string) (*Agent, error) {
	identity, ok := GetBotConfig(userID)
	if !ok {
		identity = BotIdentity{UserID: userID, DisplayName: userID}
	}
	brain, err := NewBrain(levelForDifficulty(identity.Difficulty))
	if err != nil {
		return nil, err
	}
	name := identity.DisplayName
	if name == "" {
		name = identity.Username
	}
	return &Agent{ID: userID, Name: name, Strategy: brain}, nil
}
