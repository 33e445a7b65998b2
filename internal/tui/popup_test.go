// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eddieoz/openxrypt/models"
)

func Test_identityFromInput(t *testing.T) {
	tests := []struct {
		in   string
		want models.Identity
	}{
		{"alice", "@alice"},
		{"@alice", "@alice"},
		{"  bob  ", "@bob"},
		{"5511999990000", "5511999990000"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := identityFromInput(tt.in); got != tt.want {
			t.Errorf("identityFromInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func Test_composeSnapshot(t *testing.T) {
	snap := composeSnapshot("@alice", "bob", "hello")

	if snap.Host != "x.com" {
		t.Errorf("unexpected host %q", snap.Host)
	}
	if len(snap.Scripts) != 1 || !strings.Contains(snap.Scripts[0], `"screen_name":"alice"`) {
		t.Errorf("scripts do not carry the local handle: %v", snap.Scripts)
	}
	if len(snap.Conversation) != 1 || snap.Conversation[0] != "@bob" {
		t.Errorf("conversation does not carry the peer: %v", snap.Conversation)
	}
	if snap.Composer == nil || snap.Composer.Text != "hello" {
		t.Error("composer does not carry the message")
	}

	post := composeSnapshot("alice", "", "hi")
	if len(post.Conversation) != 0 {
		t.Errorf("post snapshot should have no conversation, got %v", post.Conversation)
	}
}

func Test_humanizeDaemonUnavailableError(t *testing.T) {
	err := fmt.Errorf("Get \"http://127.0.0.1:7633\": dial tcp 127.0.0.1:7633: connection refused")
	if got := humanizeDaemonUnavailableError(err); got != "daemon is not running or unreachable" {
		t.Errorf("unexpected message %q", got)
	}

	plain := errors.New("key not found")
	if got := humanizeDaemonUnavailableError(plain); got != "key not found" {
		t.Errorf("unexpected message %q", got)
	}

	if got := humanizeDaemonUnavailableError(nil); got != "" {
		t.Errorf("expected empty message, got %q", got)
	}
}

func Test_fitText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 20, "short"},
		{"exactly-ten", 0, "exactly-ten"},
		{"abcdefghij", 7, "abcd..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := fitText(tt.in, tt.max); got != tt.want {
			t.Errorf("fitText(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
