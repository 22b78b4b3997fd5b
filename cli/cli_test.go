package cli

import (
	"bytes"
	"testing"
)

// =============================================================================
// Command Tree Tests
// =============================================================================

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{"serve": false, "probe": false, "send": false, "smoke": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}

	if root.PersistentFlags().Lookup("env-file") == nil {
		t.Error("persistent flag --env-file not registered")
	}
}

func TestSendRequiresSummaryFlag(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"send"})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	if err := root.Execute(); err == nil {
		t.Error("send without --summary should fail flag validation")
	}
}
