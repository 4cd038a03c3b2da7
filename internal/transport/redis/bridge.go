package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
)

type gameController interface {
	OnBoardClicked() error
	OnCellClicked(cell int) error
	OnCellHovered(cell int, hovering bool) error
	Snapshot() tictactoe.Snapshot
}

type publisher interface {
	Publish(action string, payload any)
}

type snapshotRepo interface {
	Save(ctx context.Context, sessionID string, snapshot tictactoe.Snapshot) error
}

// Bridge feeds input messages from Redis to one game, one message at a time.
type Bridge struct {
	logger    *slog.Logger
	client    *redis.Client
	sessionID string
	channels  Channels

	game      gameController
	publisher publisher
	snapshots snapshotRepo

	handlers map[string]func(ctx context.Context, message *Message) error
}

func NewBridge(
	logger *slog.Logger,
	client *redis.Client,
	sessionID string,
	channels Channels,
	game gameController,
	publisher publisher,
	snapshots snapshotRepo,
) *Bridge {
	bridge := &Bridge{
		logger:    logger.With("component", "redis_bridge", "sessionID", sessionID),
		client:    client,
		sessionID: sessionID,
		channels:  channels,
		game:      game,
		publisher: publisher,
		snapshots: snapshots,
		handlers:  make(map[string]func(context.Context, *Message) error),
	}

	bridge.handlers[ActionBoardClicked] = bridge.handleBoardClicked
	bridge.handlers[ActionCellClicked] = bridge.handleCellClicked
	bridge.handlers[ActionCellHovered] = bridge.handleCellHovered

	return bridge
}

// Run - subscribes to the input channel and processes messages until ctx is done.
func (that *Bridge) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	sub := that.client.Subscribe(ctx, that.channels.Input)
	defer func() {
		if err := sub.Close(); err != nil {
			log.Error("could not close subscription", "error", err)
		}
	}()

	// wait for the subscription to be confirmed
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", that.channels.Input, err)
	}

	log.Info("listening for input", "channel", that.channels.Input)
	that.publishState(ctx)

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				log.Info("subscription closed")
				return nil
			}

			if err := that.HandleMessage(ctx, []byte(msg.Payload)); err != nil {
				log.Debug("input ignored", "error", err)
			}
		}
	}
}

// HandleMessage - runs one input message to completion and publishes the resulting state.
func (that *Bridge) HandleMessage(ctx context.Context, raw []byte) error {
	var message Message
	if err := json.Unmarshal(raw, &message); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownAction, message.Action)
	}

	err := handler(ctx, &message)
	that.publishState(ctx)

	if err != nil {
		return fmt.Errorf("%s: %w", message.Action, err)
	}

	return nil
}

func (that *Bridge) handleBoardClicked(_ context.Context, _ *Message) error {
	return that.game.OnBoardClicked()
}

func (that *Bridge) handleCellClicked(_ context.Context, msg *Message) error {
	var payload CellPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	if payload.Cell == nil {
		return fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	return that.game.OnCellClicked(*payload.Cell)
}

func (that *Bridge) handleCellHovered(_ context.Context, msg *Message) error {
	var payload HoverPayload
	if err := decodePayload(msg, &payload); err != nil {
		return err
	}

	if payload.Cell == nil {
		return fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	return that.game.OnCellHovered(*payload.Cell, payload.Hovering)
}

func decodePayload(msg *Message, payload any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%w: payload is empty", apperror.ErrInvalidPayload)
	}

	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return nil
}

func (that *Bridge) publishState(ctx context.Context) {
	snapshot := that.game.Snapshot()

	// stored before it is announced, so a client reacting to the message reads the same state
	if err := that.snapshots.Save(ctx, that.sessionID, snapshot); err != nil {
		that.logger.Error("failed to save snapshot", "error", err)
	}

	that.publisher.Publish(ActionGameState, StatePayload{SessionID: that.sessionID, Game: snapshot})
}
