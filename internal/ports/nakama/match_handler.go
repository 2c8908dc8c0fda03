package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"

	"github.com/Nargog/TheBridgeSystem/internal/app"
	"github.com/Nargog/TheBridgeSystem/internal/bot"
	"github.com/Nargog/TheBridgeSystem/internal/config"
	"github.com/Nargog/TheBridgeSystem/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchLabel is the JSON label the table advertises for listing queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

const (
	labelGameBridge = "bridge"
	phaseLobby      = "lobby"
	phaseAuction    = "auction"
)

// MatchState holds the authoritative runtime state for one bridge table.
type MatchState struct {
	Seats      [domain.NumSeats]string     `json:"seats"`       // user IDs by seat, "" means empty
	OwnerSeat  int                         `json:"owner_seat"`  // seat index of the table owner
	NextDealer int                         `json:"next_dealer"` // dealer for the next auction, rotates per deal
	Tick       int64                       `json:"tick"`
	Presences  map[string]runtime.Presence `json:"-"`
	App        *app.Service                `json:"-"`
	Auction    *domain.Auction             `json:"-"` // nil while in lobby
	Cfg        config.Config               `json:"-"`

	BotWaitUntil int64                 `json:"bot_wait_until"` // tick when the bot on turn acts
	LastSoloTick int64                 `json:"last_solo_tick"` // tick when a lone human started waiting
	Bots         map[string]*bot.Agent `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return domain.NumSeats - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// ownerUserID returns the table owner's user id, or "" when no human owns
// the table. Convention recording is keyed by it.
func (ms *MatchState) ownerUserID() string {
	if ms.OwnerSeat < 0 || ms.OwnerSeat >= domain.NumSeats {
		return ""
	}
	return ms.Seats[ms.OwnerSeat]
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seatUserID := range ms.Seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans at the table.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing bridge table.")

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromRuntimeEnv(env)
	if err != nil {
		logger.Warn("MatchInit: Bad runtime env, using defaults: %v", err)
		cfg, _ = config.FromRuntimeEnv(nil)
	}

	if err := bot.LoadIdentities(cfg.BotIdentitiesPath); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}

	conventions := app.NewConventionService(NewConventionStorageAdapter(nk), nil)
	state := &MatchState{
		OwnerSeat:  -1,
		NextDealer: int(domain.South),
		Presences:  make(map[string]runtime.Presence),
		App:        app.NewService(conventions),
		Cfg:        cfg,
		Bots:       make(map[string]*bot.Agent),
	}

	labelBytes, err := json.Marshal(MatchLabel{Open: state.GetOpenSeatsCount(), Game: labelGameBridge, Phase: phaseLobby})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace while in lobby.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Auction == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Table full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Auction == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	// Owner is always a human.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastTableState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating table with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastTableState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartAuction:
			mh.handleStartAuction(ctx, matchState, dispatcher, logger, msg)
		case OpSelectBid:
			mh.handleSelectBid(ctx, matchState, dispatcher, logger, msg)
		case OpPass:
			mh.handlePass(ctx, matchState, dispatcher, logger, msg)
		case OpUndo:
			mh.handleUndo(ctx, matchState, dispatcher, logger, msg)
		case OpLegalCalls:
			mh.handleLegalCalls(matchState, dispatcher, logger, msg)
		case OpNewAuction:
			mh.handleNewAuction(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.Cfg.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a lone human has waited long enough.
	if state.Auction == nil {
		if state.GetHumanPlayerCount() == 1 {
			if state.LastSoloTick == 0 {
				state.LastSoloTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSoloTick >= int64(state.Cfg.BotAutoFillDelaySec) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					agent, err := bot.NewAgent(identity.UserID)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: Added bot %s to seat %d", identity.UserID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastTableState(state, dispatcher, logger)
				}
				state.LastSoloTick = 0
			}
		} else {
			state.LastSoloTick = 0
		}
		return
	}

	// Tick-delayed bot turns during the auction.
	if state.Auction.Terminated() {
		state.BotWaitUntil = 0
		return
	}
	seat := state.Auction.CurrentSeat()
	userID := state.Seats[seat]
	if !bot.IsBot(userID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.Cfg.BotMinDelaySec
		if spread := state.Cfg.BotMaxDelaySec - state.Cfg.BotMinDelaySec; spread > 0 {
			delay += rand.Intn(spread + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %v) will act at tick %d", userID, seat, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[userID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(userID)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[userID] = agent
	}

	move, err := agent.Act(state.Auction, seat)
	if err != nil {
		logger.Error("processBots: Bot %s failed to choose a call: %v", userID, err)
		return
	}

	ownerID := state.ownerUserID()
	var events []app.Event
	if move.Pass {
		events, err = state.App.Pass(ctx, ownerID, state.Auction, seat)
	} else {
		events, err = state.App.SelectBid(ctx, ownerID, state.Auction, seat, move.Bid)
	}
	if err != nil {
		logger.Error("processBots: Bot %s call rejected: %v", userID, err)
		return
	}
	mh.afterAuctionEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartAuction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartAuction: Request from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartAuction: User %s is not the table owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, "only the table owner can start the auction")
		return
	}
	if state.Auction != nil && !state.Auction.Terminated() {
		mh.sendError(state, dispatcher, logger, senderID, "an auction is already in progress")
		return
	}

	dealer := domain.Seat(state.NextDealer)
	auction, events, err := state.App.StartAuction(state.Seats[:], dealer, state.Cfg.Rule())
	if err != nil {
		logger.Error("StartAuction: Failed to start: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}

	state.Auction = auction
	state.NextDealer = int(dealer.Next())
	state.BotWaitUntil = 0

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

// selectBidRequest is the OpSelectBid payload.
type selectBidRequest struct {
	Bid string `json:"bid"`
}

func (mh *matchHandler) handleSelectBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)
	if senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, senderID, "you are not seated at this table")
		return
	}

	var request selectBidRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleSelectBid: Invalid payload from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, "invalid bid payload")
		return
	}
	b, err := domain.ParseBid(request.Bid)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}

	events, err := state.App.SelectBid(ctx, state.ownerUserID(), state.Auction, domain.Seat(senderSeat), b)
	if err != nil {
		logger.Warn("handleSelectBid: User %s (seat %d) bid %s rejected: %v", senderID, senderSeat, request.Bid, err)
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}
	mh.afterAuctionEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePass(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)
	if senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, senderID, "you are not seated at this table")
		return
	}

	events, err := state.App.Pass(ctx, state.ownerUserID(), state.Auction, domain.Seat(senderSeat))
	if err != nil {
		logger.Warn("handlePass: User %s (seat %d) pass rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}
	mh.afterAuctionEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleUndo(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.seatOf(senderID) != state.OwnerSeat {
		mh.sendError(state, dispatcher, logger, senderID, "only the table owner can undo calls")
		return
	}

	wasTerminated := state.Auction != nil && state.Auction.Terminated()
	events, err := state.App.Undo(state.Auction)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, err.Error())
		return
	}
	// Undoing the closing pass reopens the auction.
	if wasTerminated && !state.Auction.Terminated() {
		mh.updateLabel(state, dispatcher, logger)
	}
	state.BotWaitUntil = 0
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

// legalCallsResponse is the private OpLegalCallsResponse payload.
type legalCallsResponse struct {
	Bids    []string `json:"bids"`
	CanPass bool     `json:"can_pass"`
}

func (mh *matchHandler) handleLegalCalls(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	resp := legalCallsResponse{Bids: []string{}}
	if state.Auction != nil && !state.Auction.Terminated() {
		for _, b := range state.Auction.LegalBids() {
			resp.Bids = append(resp.Bids, b.Label())
		}
		resp.CanPass = true
	}
	mh.sendTo(state, dispatcher, logger, senderID, OpLegalCallsResponse, resp)
}

func (mh *matchHandler) handleNewAuction(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.seatOf(senderID) != state.OwnerSeat {
		mh.sendError(state, dispatcher, logger, senderID, "only the table owner can clear the table")
		return
	}

	state.Auction = nil
	state.BotWaitUntil = 0
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastTableState(state, dispatcher, logger)
}

// afterAuctionEvents broadcasts call events and flips the label back to
// lobby once the auction has terminated.
func (mh *matchHandler) afterAuctionEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	if state.Auction != nil && state.Auction.Terminated() {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// PlayerState is one seat's entry in the table snapshot.
type PlayerState struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot"`
}

// TableStateSnapshot is the OpTableState payload.
type TableStateSnapshot struct {
	Seats       []string      `json:"seats"`
	OwnerSeat   int           `json:"owner_seat"`
	Tick        int64         `json:"tick"`
	Players     []PlayerState `json:"players"`
	Calls       []string      `json:"calls,omitempty"`
	CurrentSeat int           `json:"current_seat"`
	Terminated  bool          `json:"terminated"`
}

func (mh *matchHandler) broadcastTableState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []PlayerState
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userID); name != "" {
			displayName = name
		}

		players = append(players, PlayerState{
			UserID:      userID,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			DisplayName: displayName,
			IsBot:       bot.IsBot(userID),
		})
	}

	snapshot := TableStateSnapshot{
		Seats:       state.Seats[:],
		OwnerSeat:   state.OwnerSeat,
		Tick:        state.Tick,
		Players:     players,
		CurrentSeat: -1,
	}
	if state.Auction != nil {
		snapshot.Calls = state.Auction.CallLabels()
		snapshot.CurrentSeat = int(state.Auction.CurrentSeat())
		snapshot.Terminated = state.Auction.Terminated()
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal table snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpTableState, bytes, nil, nil, true)
}

// broadcastEvent converts an app event to its opcode and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	switch ev.Kind {
	case app.EventAuctionStarted:
		opCode = OpAuctionStarted
	case app.EventCallMade:
		opCode = OpCallMade
	case app.EventCallRetracted:
		opCode = OpCallRetracted
	case app.EventAuctionEnded:
		opCode = OpAuctionEnded
	case app.EventConventionNote:
		opCode = OpConventionNote
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// Targeted events with no connected recipient must not leak to
		// the whole table.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// TableError is the OpTableError payload, sent privately.
type TableError struct {
	Message string `json:"message"`
}

func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID, message string) {
	mh.sendTo(state, dispatcher, logger, userID, OpTableError, TableError{Message: message})
}

func (mh *matchHandler) sendTo(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, opCode int64, payload any) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal payload for opcode %d: %v", opCode, err)
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send opcode %d to %s: presence not found", opCode, userID)
		return
	}
	dispatcher.BroadcastMessage(opCode, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := phaseLobby
	if state.Auction != nil && !state.Auction.Terminated() {
		phase = phaseAuction
	}

	labelBytes, err := json.Marshal(MatchLabel{Open: state.GetOpenSeatsCount(), Game: labelGameBridge, Phase: phase})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Table terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
