package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-frontmark/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
	infos  int
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  { l.infos++ }
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}
func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return l
}
func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	l.fields = fields
	return l
}

type staticProvider struct {
	logger interfaces.Logger
}

func (p staticProvider) GetLogger(string) interfaces.Logger {
	return p.logger
}

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "frontmark.reader")
	if logger == nil {
		t.Fatalf("expected a logger even without a provider")
	}
	// Must not panic.
	logger.Info("ignored")
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	inner := &recordingLogger{}
	logger := ModuleLogger(staticProvider{logger: inner}, "frontmark.registry")
	if logger == nil {
		t.Fatalf("expected logger")
	}
	if inner.fields["module"] != "frontmark.registry" {
		t.Fatalf("expected module field, got %v", inner.fields)
	}
}

func TestWithFieldsSkipsUnsupportedLoggers(t *testing.T) {
	logger := WithFields(NoOp(), map[string]any{"k": "v"})
	if logger == nil {
		t.Fatalf("expected logger back")
	}
}
