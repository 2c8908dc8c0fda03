package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Nargog/TheBridgeSystem/internal/app"
	"github.com/Nargog/TheBridgeSystem/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

func inviteService(ctx context.Context) (*app.InviteService, error) {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromRuntimeEnv(env)
	if err != nil {
		return nil, runtime.NewError("Internal error", errCodeInternal)
	}
	if cfg.InviteSecret == "" {
		return nil, runtime.NewError("Invites are not configured", errCodeInternal)
	}
	return app.NewInviteService(cfg.InviteSecret, time.Duration(cfg.InviteTTLSec)*time.Second), nil
}

// rpcInviteCreate mints an invite token for a table the caller hosts.
// Payload: {"match_id": "..."}
func rpcInviteCreate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		MatchID string `json:"match_id"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}
	if req.MatchID == "" {
		return "", runtime.NewError("Match id is required", errCodeInvalidArgument)
	}

	service, err := inviteService(ctx)
	if err != nil {
		return "", err
	}
	token, err := service.CreateToken(req.MatchID, userID)
	if err != nil {
		logger.Error("rpcInviteCreate [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return marshalResponse(logger, map[string]string{"token": token})
}

// rpcInviteRedeem validates an invite token and returns the table it points at.
// Payload: {"token": "..."}
func rpcInviteRedeem(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if _, err := callerID(ctx); err != nil {
		return "", err
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}

	service, err := inviteService(ctx)
	if err != nil {
		return "", err
	}
	invite, err := service.ParseToken(req.Token)
	if err != nil {
		if errors.Is(err, app.ErrInviteExpired) {
			return "", runtime.NewError("Invite has expired", errCodeInvalidArgument)
		}
		return "", runtime.NewError("Invalid invite", errCodeInvalidArgument)
	}
	return marshalResponse(logger, map[string]string{
		"match_id":     invite.MatchID,
		"host_user_id": invite.HostUserID,
	})
}
