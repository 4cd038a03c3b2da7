package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
)

const (
	outboxSize     = 256
	publishTimeout = 5 * time.Second
)

// Presenter turns controller requests into render messages. Requests are queued
// and published by Run, so the controller never waits on Redis.
type Presenter struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
	outbox  chan Message
}

func NewPresenter(logger *slog.Logger, client *redis.Client, channel string) *Presenter {
	return &Presenter{
		logger:  logger.With("component", "redis_presenter", "channel", channel),
		client:  client,
		channel: channel,
		outbox:  make(chan Message, outboxSize),
	}
}

func (that *Presenter) SetStatusText(message string) {
	that.Publish(ActionStatusText, StatusPayload{Text: message})
}

func (that *Presenter) SetIndicatorColor(color entity.RGB) {
	that.Publish(ActionIndicatorColor, IndicatorPayload{Color: color.String(), RGB: color})
}

func (that *Presenter) PlacePieceVisual(cell int, piece entity.Mark) tictactoe.PieceHandle {
	handle := tictactoe.PieceHandle(pkg.GeneratePieceHandle())
	that.Publish(ActionPiecePlace, PiecePayload{Handle: handle, Cell: cell, Piece: piece})

	return handle
}

func (that *Presenter) ClearAllPieceVisuals(handles []tictactoe.PieceHandle) {
	that.Publish(ActionPieceClear, ClearPayload{Handles: handles})
}

func (that *Presenter) SetTileHoverAffordance(cell int, enabled bool) {
	that.Publish(ActionTileHover, TileHoverPayload{Cell: cell, Enabled: enabled})
}

// Publish queues a render message. A full queue drops the message.
func (that *Presenter) Publish(action string, payload any) {
	log := that.logger.With("method", "Publish", "action", action)

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "error", err)
		return
	}

	select {
	case that.outbox <- Message{Action: action, Payload: raw}:
	default:
		log.Error("render queue is full, message dropped")
	}
}

// Run publishes queued messages in order until ctx is done.
func (that *Presenter) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-that.outbox:
			if err := that.send(ctx, msg); err != nil {
				log.Error("failed to publish render message", "action", msg.Action, "error", err)
			}
		}
	}
}

func (that *Presenter) send(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msgJSON, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}
