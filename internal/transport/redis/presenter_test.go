package redis

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tabletop/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const receiveTimeout = 10 * time.Second

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPresenter_Publish(t *testing.T) {
	t.Run("Full queue drops instead of blocking", func(t *testing.T) {
		presenter := NewPresenter(slogDiscard(), nil, "render")

		// When: more requests arrive than the queue holds and nobody publishes
		for i := 0; i < outboxSize+10; i++ {
			presenter.SetStatusText("hello")
		}

		// Then: the caller was never blocked and the queue is full
		assert.Len(t, presenter.outbox, outboxSize)
	})

	t.Run("Piece visuals get unique handles", func(t *testing.T) {
		presenter := NewPresenter(slogDiscard(), nil, "render")

		first := presenter.PlacePieceVisual(0, entity.PlayerX)
		second := presenter.PlacePieceVisual(1, entity.PlayerO)

		assert.NotEqual(t, first, second)
		require.Len(t, presenter.outbox, 2)

		msg := <-presenter.outbox
		assert.Equal(t, ActionPiecePlace, msg.Action)

		var payload PiecePayload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, PiecePayload{Handle: first, Cell: 0, Piece: entity.PlayerX}, payload)
	})
}

func TestBridge_Run(t *testing.T) {
	ctx, st := suite.New(t)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Given: a presenter, controller and bridge wired over a real Redis
	channels := NewChannels("tictactoe", "it")
	presenter := NewPresenter(st.Logger, st.Storage, channels.Render)
	controller := tictactoe.NewGameController(st.Logger, presenter, tictactoe.DefaultSettings())
	snapshots := repository.NewSnapshotRepository(st.Storage, time.Minute)
	bridge := NewBridge(st.Logger, st.Storage, "it", channels, controller, presenter, snapshots)

	render := st.Storage.Subscribe(ctx, channels.Render)
	defer render.Close()
	_, err := render.Receive(ctx)
	require.NoError(t, err)
	renderMessages := render.Channel()

	go func() { _ = presenter.Run(runCtx) }()

	bridgeDone := make(chan error, 1)
	go func() { bridgeDone <- bridge.Run(runCtx) }()

	// the initial state is published once the bridge listens
	waitForState(t, renderMessages, func(state StatePayload) bool {
		return state.Game.Phase == entity.PhaseIntro
	})

	// When: a host publishes a start click and a winning sequence for X
	send := func(action string, payload any) {
		raw := inputMessage(t, action, payload)
		require.NoError(t, st.Storage.Publish(ctx, channels.Input, raw).Err())
	}

	send(ActionBoardClicked, nil)
	for _, index := range []int{0, 4, 1, 5, 2} {
		send(ActionCellClicked, CellPayload{Cell: cell(index)})
	}

	// Then: the render channel reports the celebration
	state := waitForState(t, renderMessages, func(state StatePayload) bool {
		return state.Game.Phase == entity.PhaseCelebration
	})
	assert.Equal(t, entity.PlayerX, state.Game.Winner)
	assert.Equal(t, "Winner: X", state.Game.Status)

	// Then: the latest snapshot is stored for late clients
	stored, err := snapshots.GetByID(ctx, "it")
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseCelebration, stored.Phase)

	// When: the context is cancelled the bridge stops
	cancel()
	select {
	case err = <-bridgeDone:
		require.NoError(t, err)
	case <-time.After(receiveTimeout):
		t.Fatal("bridge did not stop")
	}
}

func waitForState(t *testing.T, messages <-chan *goredis.Message, match func(StatePayload) bool) StatePayload {
	t.Helper()

	timeout := time.After(receiveTimeout)
	for {
		select {
		case <-timeout:
			t.Fatal("timed out waiting for game state")
		case raw := <-messages:
			var msg Message
			require.NoError(t, json.Unmarshal([]byte(raw.Payload), &msg))

			if msg.Action != ActionGameState {
				continue
			}

			var state StatePayload
			require.NoError(t, json.Unmarshal(msg.Payload, &state))

			if match(state) {
				return state
			}
		}
	}
}
