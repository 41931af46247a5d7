// Error handling tests
//
// Copyright (C) 2026  Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestHostErrorMessage(t *testing.T) {
	err := GCodeParseError(12, "Xabc")
	if got := err.Error(); !strings.HasPrefix(got, "[GCODE_PARSE] line 12: ") {
		t.Errorf("expected code and line prefix, got: %s", got)
	}
	if err.Option != "Xabc" {
		t.Errorf("expected option Xabc, got %q", err.Option)
	}

	wrapped := IOError("open input", stderrors.New("no such file"))
	if got := wrapped.Error(); got != "[IO] open input: no such file" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestCodeOfThroughWrapping(t *testing.T) {
	inner := RulesFileError("rules.cfg", stderrors.New("bad"))
	err := fmt.Errorf("loading: %w", inner)

	if CodeOf(err) != ErrRulesFile {
		t.Errorf("expected RULES_FILE, got %q", CodeOf(err))
	}
	if CodeOf(stderrors.New("plain")) != "" {
		t.Error("expected empty code for a plain error")
	}
	if inner.Context["path"] != "rules.cfg" {
		t.Errorf("expected path context, got %v", inner.Context)
	}
}

func TestIsWalksNestedHostErrors(t *testing.T) {
	usage := UsageError("missing input")
	outer := Wrap(usage, ErrIO, "outer")

	if !Is(outer, ErrIO) {
		t.Error("expected outer code to match")
	}
	if !Is(outer, ErrUsage) {
		t.Error("expected nested code to match")
	}
	if Is(outer, ErrLayerSpec) {
		t.Error("did not expect LAYER_SPEC")
	}
	if Is(nil, ErrIO) {
		t.Error("nil error must not match")
	}
}

func TestLayerSpecErrors(t *testing.T) {
	cause := stderrors.New("invalid syntax")
	for _, err := range []*HostError{LayerSpecError("L1-x", cause), TweakValueError("Fx", cause)} {
		if err.Code != ErrLayerSpec {
			t.Errorf("expected LAYER_SPEC, got %s", err.Code)
		}
		if !stderrors.Is(err, cause) {
			t.Errorf("expected %v to unwrap to cause", err)
		}
	}
}
