package nakama

import (
	"context"
	"database/sql"

	"github.com/Nargog/TheBridgeSystem/internal/bot"
	"github.com/Nargog/TheBridgeSystem/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs, hooks, and the table match handler for the Nakama
// runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromRuntimeEnv(env)
	if err != nil {
		logger.Warn("InitModule: Bad runtime env, using defaults: %v", err)
		cfg, _ = config.FromRuntimeEnv(nil)
	}

	if err := bot.LoadIdentities(cfg.BotIdentitiesPath); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	} else if err := bot.ProvisionBots(ctx, nk, logger); err != nil {
		logger.Warn("InitModule: Could not provision bots: %v", err)
	}

	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcQuickMatch:               rpcQuickMatch,
		RpcConventionsGet:           rpcConventionsGet,
		RpcConventionsChildren:      rpcConventionsChildren,
		RpcConventionsSetMeaning:    rpcConventionsSetMeaning,
		RpcConventionsSetDefinition: rpcConventionsSetDefinition,
		RpcConventionsDelete:        rpcConventionsDelete,
		RpcConventionsImport:        rpcConventionsImport,
		RpcInviteCreate:             rpcInviteCreate,
		RpcInviteRedeem:             rpcInviteRedeem,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}

	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameBridgeTable, func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
		return newMatchHandler(), nil
	}); err != nil {
		return err
	}

	logger.Info("Bridge table module loaded.")
	return nil
}
