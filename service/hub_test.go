package service

import (
	"errors"
	"strings"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	initErr error
	log     *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init() error {
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}
func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}
func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var log []string
	h := NewHub(nil)
	// remote depends on haptic; registration order must not matter
	if err := h.Register(&fakeService{name: "remote", deps: []string{"haptic"}, log: &log}); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(&fakeService{name: "haptic", log: &log}); err != nil {
		t.Fatal(err)
	}

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	h.StopAll()

	want := "init:haptic,init:remote,start:haptic,start:remote,stop:remote,stop:haptic"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("lifecycle = %s\nwant        %s", got, want)
	}
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	h := NewHub(nil)
	_ = h.Register(&fakeService{name: "haptic", log: &log})
	_ = h.Register(&fakeService{name: "remote", deps: []string{"haptic"}, initErr: errors.New("boom"), log: &log})

	err := h.InitAll()
	if err == nil || !strings.Contains(err.Error(), "remote init failed") {
		t.Fatalf("Expected remote init failure, got %v", err)
	}
	want := "init:haptic,init:remote,stop:haptic"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("lifecycle = %s, want %s", got, want)
	}
}

func TestHubRejectsBadGraphs(t *testing.T) {
	var log []string

	h := NewHub(nil)
	_ = h.Register(&fakeService{name: "remote", deps: []string{"missing"}, log: &log})
	if err := h.InitAll(); err == nil {
		t.Error("Expected unregistered dependency error")
	}

	h = NewHub(nil)
	_ = h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	_ = h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := h.InitAll(); err == nil {
		t.Error("Expected circular dependency error")
	}

	if err := h.Register(&fakeService{name: "a", log: &log}); err == nil {
		t.Error("Expected duplicate registration error")
	}
}

func TestHubGet(t *testing.T) {
	var log []string
	h := NewHub(nil)
	_ = h.Register(&fakeService{name: "haptic", log: &log})

	if svc, ok := Get[*fakeService](h, "haptic"); !ok || svc.name != "haptic" {
		t.Error("Expected typed lookup to succeed")
	}
	if _, ok := Get[*fakeService](h, "absent"); ok {
		t.Error("Expected lookup of absent service to fail")
	}
}
