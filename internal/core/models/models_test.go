package models

import (
	"testing"
	"time"
)

func TestSessionValidate(t *testing.T) {
	s := &Session{
		ID:            "abc-123",
		Name:          "Outage-42",
		CloudProvider: ProviderAWS,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	s.Name = ""
	if err := s.Validate(); err == nil {
		t.Error("Validate() should fail without a name")
	}

	s.Name = "Outage-42"
	s.CloudProvider = "digitalocean"
	if err := s.Validate(); err == nil {
		t.Error("Validate() should fail for unknown provider")
	}
}

func TestCloudProviderValid(t *testing.T) {
	for _, p := range []CloudProvider{ProviderAWS, ProviderAzure, ProviderGCP} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if CloudProvider("").Valid() {
		t.Error("empty provider should not be valid")
	}
}

func TestLogValidate(t *testing.T) {
	l := &Log{ID: "l1", SessionID: "s1", Content: "boom", Timestamp: time.Now()}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	l.SessionID = ""
	if err := l.Validate(); err == nil {
		t.Error("Validate() should fail without a session id")
	}
}

func TestLogGrouped(t *testing.T) {
	l := &Log{ID: "l1", SessionID: "s1"}
	if l.Grouped() {
		t.Error("log with nil GroupID should not be grouped")
	}
	gid := "g1"
	l.GroupID = &gid
	if !l.Grouped() {
		t.Error("log with GroupID should be grouped")
	}
}
