package remote

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/service"
)

type stubService struct {
	name   string
	inited bool
}

func (s *stubService) Name() string           { return s.name }
func (s *stubService) Dependencies() []string { return nil }
func (s *stubService) Start() error           { return nil }
func (s *stubService) Stop() error            { return nil }

func (s *stubService) Init() error {
	s.inited = true
	return nil
}

func TestServiceLifecycleThroughHub(t *testing.T) {
	dev := device.NewMock()
	cfg := testConfig()
	cfg.EnabledAtStart = true
	ctrl := New(cfg, Deps{Prober: device.Static(dev)})

	hub := service.NewHub(zap.NewNop())
	audio := &stubService{name: "haptic"}
	if err := hub.Register(NewService(ctrl, "haptic")); err != nil {
		t.Fatalf("Register remote: %v", err)
	}
	if err := hub.Register(audio); err != nil {
		t.Fatalf("Register haptic: %v", err)
	}

	if err := hub.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if !audio.inited {
		t.Error("Expected dependency initialized")
	}
	if ctrl.State() != StateEnabled {
		t.Errorf("State() = %v, want enabled", ctrl.State())
	}

	svc, ok := service.Get[*Service](hub, "remote")
	if !ok || svc.Controller() != ctrl {
		t.Fatal("Expected remote service retrievable from hub")
	}

	if err := hub.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	hub.StopAll()

	if ctrl.State() != StateUninitialized || ctrl.GetRemote() != nil {
		t.Error("Expected controller shut down by hub")
	}
}
