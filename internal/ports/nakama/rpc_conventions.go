package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Nargog/TheBridgeSystem/internal/app"
	"github.com/Nargog/TheBridgeSystem/internal/convention"

	"github.com/heroiclabs/nakama-common/runtime"
)

// gRPC status codes for runtime.NewError.
const (
	errCodeInvalidArgument = 3
	errCodeNotFound        = 5
	errCodeInternal        = 13
)

func conventionService(nk runtime.NakamaModule) *app.ConventionService {
	return app.NewConventionService(NewConventionStorageAdapter(nk), nil)
}

func callerID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("Authentication required", errCodeInvalidArgument)
	}
	return userID, nil
}

func marshalResponse(logger runtime.Logger, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to marshal RPC response: %v", err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return string(b), nil
}

// rpcConventionsGet looks up the convention node at a call path.
// Payload: {"path": ["1C", "PASS", "1NT"]}
func rpcConventionsGet(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		Path []string `json:"path"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}
	if len(req.Path) == 0 {
		return "", runtime.NewError("Path is required", errCodeInvalidArgument)
	}

	record, found, err := conventionService(nk).Get(ctx, userID, req.Path)
	if err != nil {
		logger.Error("rpcConventionsGet [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	if !found {
		return "", runtime.NewError("Convention not found", errCodeNotFound)
	}
	return marshalResponse(logger, record)
}

// rpcConventionsChildren lists child nodes at a call path in creation order.
// Payload: {"path": []} lists the opening calls.
func rpcConventionsChildren(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		Path []string `json:"path"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}

	children, err := conventionService(nk).Children(ctx, userID, req.Path)
	if err != nil {
		if errors.Is(err, convention.ErrPathNotFound) {
			return "", runtime.NewError("Convention not found", errCodeNotFound)
		}
		logger.Error("rpcConventionsChildren [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return marshalResponse(logger, map[string]any{"children": children})
}

// rpcConventionsSetMeaning sets the authored meaning at a call path,
// creating the chain when absent.
// Payload: {"path": ["1C"], "meaning": "12+ hp, 3+ clubs"}
func rpcConventionsSetMeaning(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		Path    []string `json:"path"`
		Meaning string   `json:"meaning"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}
	if len(req.Path) == 0 {
		return "", runtime.NewError("Path is required", errCodeInvalidArgument)
	}

	record, err := conventionService(nk).SetMeaning(ctx, userID, req.Path, req.Meaning)
	if err != nil {
		logger.Error("rpcConventionsSetMeaning [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return marshalResponse(logger, record)
}

// rpcConventionsSetDefinition sets the structured definition at a call path.
// Payload: {"path": ["1NT"], "definition": {"min_hp": 15, "max_hp": 17, ...}}
// A null definition clears it. Range enforcement is the client's concern.
func rpcConventionsSetDefinition(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		Path []string               `json:"path"`
		Def  *convention.Definition `json:"definition"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}
	if len(req.Path) == 0 {
		return "", runtime.NewError("Path is required", errCodeInvalidArgument)
	}

	record, err := conventionService(nk).SetDefinition(ctx, userID, req.Path, req.Def)
	if err != nil {
		logger.Error("rpcConventionsSetDefinition [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return marshalResponse(logger, record)
}

// rpcConventionsDelete removes the subtree at a call path.
// Payload: {"path": ["1C"]}
func rpcConventionsDelete(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		Path []string `json:"path"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}
	if len(req.Path) == 0 {
		return "", runtime.NewError("Path is required", errCodeInvalidArgument)
	}

	removed, err := conventionService(nk).Delete(ctx, userID, req.Path)
	if err != nil {
		if errors.Is(err, convention.ErrPathNotFound) {
			return "", runtime.NewError("Convention not found", errCodeNotFound)
		}
		logger.Error("rpcConventionsDelete [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return marshalResponse(logger, map[string]int{"removed": removed})
}

// rpcConventionsImport imports (label, meaning) pairs under a parent path.
// Clients parse their free-text "label — meaning" lines before calling;
// the grammar never reaches the server.
// Payload: {"parent_path": [], "entries": [{"label": "1C", "meaning": "..."}]}
func rpcConventionsImport(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}

	var req struct {
		ParentPath []string                `json:"parent_path"`
		Entries    []convention.BatchEntry `json:"entries"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", errCodeInvalidArgument)
	}
	if len(req.Entries) == 0 {
		return "", runtime.NewError("Entries are required", errCodeInvalidArgument)
	}

	records, err := conventionService(nk).ImportBatch(ctx, userID, req.ParentPath, req.Entries)
	if err != nil {
		logger.Error("rpcConventionsImport [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", errCodeInternal)
	}
	return marshalResponse(logger, map[string]any{"imported": records})
}
