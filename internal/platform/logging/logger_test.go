package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesKeyValuePairs(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Info("lineup created", "lineup_id", int64(7), "slots", 11)

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	if entries[0].Message != "lineup created" {
		t.Fatalf("unexpected message: %s", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["lineup_id"] != int64(7) {
		t.Fatalf("unexpected lineup_id field: %v", fields["lineup_id"])
	}
}

func TestLoggerNamesErrorFields(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Warn("create formation failed", "error", errors.New("code taken"))

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: %d", len(entries))
	}
	if got := entries[0].ContextMap()["error"]; got != "code taken" {
		t.Fatalf("unexpected error field: %v", got)
	}
}

func TestLoggerToleratesOddArgs(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Debug("odd", "dangling")

	if len(observed.All()) != 1 {
		t.Fatalf("expected the record to be written")
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("must not panic")
}
