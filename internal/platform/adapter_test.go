package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddieoz/openxrypt/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{host: "x.com", want: true},
		{host: "twitter.com", want: true},
		{host: "pro.x.com", want: true},
		{host: "web.whatsapp.com", want: true},
		{host: "example.com", want: false},
		{host: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			adapter, ok := Resolve(tt.host)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, adapter != nil)
		})
	}
}

func TestXAdapter_LocalIdentity(t *testing.T) {
	adapter, ok := Resolve("x.com")
	require.True(t, ok)

	t.Run("parses bootstrap state", func(t *testing.T) {
		snap := models.PageSnapshot{
			Host: "x.com",
			Scripts: []string{
				`var other = 1;`,
				`window.__INITIAL_STATE__={"entities":{"users":{"1":{"screen_name":"alice","name":"Alice"}}}};`,
			},
		}
		assert.Equal(t, models.Identity("@alice"), adapter.LocalIdentity(snap))
	})

	t.Run("sentinel without state blob", func(t *testing.T) {
		snap := models.PageSnapshot{Host: "x.com", Scripts: []string{`var other = 1;`}}
		assert.Equal(t, models.UnknownLocalIdentity, adapter.LocalIdentity(snap))
	})

	t.Run("sentinel when state has no screen name", func(t *testing.T) {
		snap := models.PageSnapshot{
			Host:    "x.com",
			Scripts: []string{`window.__INITIAL_STATE__={"entities":{}};`},
		}
		assert.Equal(t, models.UnknownLocalIdentity, adapter.LocalIdentity(snap))
	})
}

func TestXAdapter_PeerIdentity(t *testing.T) {
	adapter, _ := Resolve("x.com")

	t.Run("handle entry", func(t *testing.T) {
		snap := models.PageSnapshot{Conversation: []string{"Bob Smith", "@bob"}}
		assert.Equal(t, models.Identity("@bob"), adapter.PeerIdentity(snap))
	})

	t.Run("profile href entry", func(t *testing.T) {
		snap := models.PageSnapshot{Conversation: []string{"/bob"}}
		assert.Equal(t, models.Identity("@bob"), adapter.PeerIdentity(snap))
	})

	t.Run("sentinel when unresolvable", func(t *testing.T) {
		snap := models.PageSnapshot{Conversation: []string{"Bob Smith"}}
		assert.Equal(t, models.UnknownPeerIdentity, adapter.PeerIdentity(snap))
	})
}

func TestXAdapter_GroupMemberIdentities(t *testing.T) {
	adapter, _ := Resolve("x.com")

	snap := models.PageSnapshot{GroupMembers: []string{"@bob", "carol", " ", ""}}
	members := adapter.GroupMemberIdentities(snap)

	assert.Equal(t, []models.Identity{"@bob", "@carol"}, members)
}

func TestWhatsAppAdapter_LocalIdentity(t *testing.T) {
	adapter, ok := Resolve("web.whatsapp.com")
	require.True(t, ok)

	tests := []struct {
		name    string
		storage map[string]string
		want    models.Identity
	}{
		{
			name:    "device-qualified wid",
			storage: map[string]string{"last-wid-md": `"5511999999999:12@c.us"`},
			want:    models.Identity("5511999999999"),
		},
		{
			name:    "bare wid",
			storage: map[string]string{"last-wid-md": `"5511999999999@c.us"`},
			want:    models.Identity("5511999999999"),
		},
		{
			name:    "missing entry",
			storage: map[string]string{},
			want:    models.UnknownLocalIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := models.PageSnapshot{Host: "web.whatsapp.com", Storage: tt.storage}
			assert.Equal(t, tt.want, adapter.LocalIdentity(snap))
		})
	}
}

func TestWhatsAppAdapter_PeerIdentity(t *testing.T) {
	adapter, _ := Resolve("web.whatsapp.com")

	t.Run("data id entry", func(t *testing.T) {
		snap := models.PageSnapshot{Conversation: []string{"false_status@broadcast", "true_5521888888888@c.us_ABC123"}}
		assert.Equal(t, models.Identity("5521888888888"), adapter.PeerIdentity(snap))
	})

	t.Run("sentinel when unresolvable", func(t *testing.T) {
		snap := models.PageSnapshot{Conversation: []string{"Bob"}}
		assert.Equal(t, models.UnknownPeerIdentity, adapter.PeerIdentity(snap))
	})
}

func TestWhatsAppAdapter_GroupMemberIdentities(t *testing.T) {
	adapter, _ := Resolve("web.whatsapp.com")

	snap := models.PageSnapshot{GroupMembers: []string{"5511999999999@c.us", "5521888888888@c.us", ""}}
	members := adapter.GroupMemberIdentities(snap)

	assert.Equal(t, []models.Identity{"5511999999999", "5521888888888"}, members)
}

func TestAdapter_PassThroughAnchors(t *testing.T) {
	composer := &models.TextNode{ID: "composer", Text: "draft"}
	send := &models.UIAnchor{ID: "send", Label: "Send"}
	nodes := []models.TextNode{{ID: "m1", Text: "hi"}}

	snap := models.PageSnapshot{Composer: composer, SendControl: send, Nodes: nodes}

	for _, host := range []string{"x.com", "web.whatsapp.com"} {
		adapter, _ := Resolve(host)
		assert.Equal(t, composer, adapter.Composer(snap), host)
		assert.Equal(t, send, adapter.SendControl(snap), host)
		assert.Equal(t, nodes, adapter.MessageCandidates(snap), host)
	}
}
