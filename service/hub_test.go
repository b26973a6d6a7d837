package service

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

type recorder struct {
	log []string
}

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	rec      *recorder
	args     []any
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(args ...any) error {
	f.args = args
	f.rec.log = append(f.rec.log, "init:"+f.name)
	return f.initErr
}
func (f *fakeService) Start() error {
	f.rec.log = append(f.rec.log, "start:"+f.name)
	return f.startErr
}
func (f *fakeService) Stop() error {
	f.rec.log = append(f.rec.log, "stop:"+f.name)
	return nil
}
func (f *fakeService) Contribute(publish ResourcePublisher) {
	publish(f.name)
}

func TestHubLifecycleOrder(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&fakeService{name: "scene", deps: []string{"physics", "audio"}, rec: rec})
	h.Register(&fakeService{name: "physics", rec: rec})
	h.Register(&fakeService{name: "audio", rec: rec})

	if err := h.InitAll("tuning"); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()

	want := []string{
		"init:audio", "init:physics", "init:scene",
		"start:audio", "start:physics", "start:scene",
		"stop:scene", "stop:physics", "stop:audio",
	}
	if !slices.Equal(rec.log, want) {
		t.Errorf("Lifecycle = %v, want %v", rec.log, want)
	}

	svc := MustGet[*fakeService](h, "physics")
	if len(svc.args) != 1 || svc.args[0] != "tuning" {
		t.Errorf("Init args = %v", svc.args)
	}
}

func TestHubDuplicateRegister(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	if err := h.Register(&fakeService{name: "audio", rec: rec}); err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	if err := h.Register(&fakeService{name: "audio", rec: rec}); err == nil {
		t.Error("Expected duplicate registration to fail")
	}
}

func TestHubDependencyErrors(t *testing.T) {
	rec := &recorder{}

	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"missing"}, rec: rec})
	if err := h.InitAll(); err == nil || !strings.Contains(err.Error(), "unregistered") {
		t.Errorf("Expected unregistered dependency error, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, rec: rec})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, rec: rec})
	if err := h.InitAll(); err == nil || !strings.Contains(err.Error(), "circular") {
		t.Errorf("Expected circular dependency error, got %v", err)
	}
}

func TestHubInitRollback(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&fakeService{name: "a", rec: rec})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: errors.New("boom"), rec: rec})

	if err := h.InitAll(); err == nil {
		t.Fatal("Expected init failure")
	}
	want := []string{"init:a", "init:b", "stop:a"}
	if !slices.Equal(rec.log, want) {
		t.Errorf("Rollback = %v, want %v", rec.log, want)
	}
}

func TestHubStartRollback(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&fakeService{name: "a", rec: rec})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: errors.New("boom"), rec: rec})

	if err := h.StartAll(); err == nil {
		t.Error("StartAll before InitAll should fail")
	}
	h.InitAll()
	rec.log = nil

	if err := h.StartAll(); err == nil {
		t.Fatal("Expected start failure")
	}
	want := []string{"start:a", "start:b", "stop:a"}
	if !slices.Equal(rec.log, want) {
		t.Errorf("Rollback = %v, want %v", rec.log, want)
	}

	rec.log = nil
	h.StopAll()
	if len(rec.log) != 0 {
		t.Errorf("StopAll after rollback should be a no-op, got %v", rec.log)
	}
}

func TestHubContributeAll(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	h.Register(&fakeService{name: "physics", rec: rec})
	h.Register(&fakeService{name: "audio", rec: rec})
	h.InitAll()

	var got []any
	h.ContributeAll(func(r any) { got = append(got, r) })

	if len(got) != 2 || got[0] != "audio" || got[1] != "physics" {
		t.Errorf("Contributed = %v", got)
	}
	if names := h.Names(); !slices.Equal(names, []string{"audio", "physics"}) {
		t.Errorf("Names = %v", names)
	}
}
