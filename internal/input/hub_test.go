package input

import (
	"context"
	"testing"
	"time"

	"github.com/genricoloni/vidmode/internal/domain"
	"github.com/genricoloni/vidmode/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestKeyboard_KeyPress(t *testing.T) {
	kb := NewKeyboard(zap.NewNop())
	if kb.Name() != "Keyboard" {
		t.Errorf("expected name Keyboard, got %q", kb.Name())
	}
	if !kb.Init(context.Background()) {
		t.Fatal("expected Init to succeed")
	}

	kb.KeyPress(KeyUp, domain.KeyDown)

	select {
	case ev := <-kb.Events():
		want := domain.InputEvent{Source: "Keyboard", Key: "KEY_UP", State: domain.KeyDown}
		if ev != want {
			t.Errorf("expected %+v, got %+v", want, ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout: event was not emitted")
	}
}

func TestEmitter_NeverBlocks(t *testing.T) {
	e := NewEmitter(zap.NewNop(), 2)

	accepted := 0
	for i := 0; i < 5; i++ {
		if e.Emit(domain.InputEvent{Key: KeyUp}) {
			accepted++
		}
	}
	if accepted != 2 {
		t.Errorf("expected 2 accepted events, got %d", accepted)
	}
}

func TestEmitter_DropsAfterClose(t *testing.T) {
	e := NewEmitter(zap.NewNop(), 2)
	e.Close()
	e.Close()

	if e.Emit(domain.InputEvent{Key: KeyUp}) {
		t.Error("expected events to be dropped after Close")
	}
	if _, ok := <-e.Events(); ok {
		t.Error("expected the channel to be closed")
	}
}

func TestHub_ForwardsAllSources(t *testing.T) {
	ctrl := gomock.NewController(t)

	kb := NewKeyboard(zap.NewNop())

	remoteEvents := make(chan domain.InputEvent, 1)
	remote := mocks.NewMockInputSource(ctrl)
	remote.EXPECT().Name().Return("CEC").AnyTimes()
	remote.EXPECT().Init(gomock.Any()).Return(true)
	remote.EXPECT().Events().Return((<-chan domain.InputEvent)(remoteEvents))
	remote.EXPECT().Close().DoAndReturn(func() error {
		close(remoteEvents)
		return nil
	})

	broken := mocks.NewMockInputSource(ctrl)
	broken.EXPECT().Name().Return("Broken").AnyTimes()
	broken.EXPECT().Init(gomock.Any()).Return(false)
	broken.EXPECT().Close().Return(nil)

	hub := NewHub(zap.NewNop(), kb, remote, broken)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kb.KeyPress(KeyBack, domain.KeyPressed)
	remoteEvents <- domain.InputEvent{Source: "CEC", Key: KeyPlay, State: domain.KeyPressed}

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-hub.Events():
			got[ev.Source+"/"+ev.Key] = true
		case <-time.After(time.Second):
			t.Fatal("Timeout: event was not forwarded")
		}
	}
	if !got["Keyboard/KEY_BACK"] || !got["CEC/KEY_PLAY"] {
		t.Errorf("expected both sources to be forwarded, got %v", got)
	}

	if err := hub.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := <-hub.Events(); ok {
		t.Error("expected the hub channel to be closed after Stop")
	}
	if err := hub.Stop(); err != nil {
		t.Errorf("expected second Stop to be a no-op, got %v", err)
	}
}

func TestHub_NoSourceReady(t *testing.T) {
	ctrl := gomock.NewController(t)

	broken := mocks.NewMockInputSource(ctrl)
	broken.EXPECT().Name().Return("Broken").AnyTimes()
	broken.EXPECT().Init(gomock.Any()).Return(false)
	broken.EXPECT().Close().Return(nil)

	hub := NewHub(zap.NewNop(), broken)
	if err := hub.Start(context.Background()); err == nil {
		t.Error("expected an error when no source initializes")
	}
	if err := hub.Stop(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
