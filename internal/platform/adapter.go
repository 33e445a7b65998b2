// SPDX-License-Identifier: Apache-2.0

// Package platform resolves platform-specific facts out of page snapshots:
// who the local user is, who the conversation peer is, which nodes hold
// message text. Each supported host is one Adapter variant.
package platform

import (
	"github.com/eddieoz/openxrypt/models"
)

// Adapter exposes the fixed capability set every platform variant
// implements. Resolution failures return sentinel identities or nil
// anchors, never errors; callers treat sentinels as "no key available"
// downstream.
type Adapter interface {
	// LocalIdentity resolves the signed-in user's handle.
	LocalIdentity(snap models.PageSnapshot) models.Identity

	// PeerIdentity resolves the current conversation partner's handle.
	PeerIdentity(snap models.PageSnapshot) models.Identity

	// GroupMemberIdentities lists group conversation members, empty
	// outside a group context.
	GroupMemberIdentities(snap models.PageSnapshot) []models.Identity

	// Composer returns the editable message target, nil when absent.
	Composer(snap models.PageSnapshot) *models.TextNode

	// SendControl returns the submit anchor, nil when absent.
	SendControl(snap models.PageSnapshot) *models.UIAnchor

	// MessageCandidates lists text nodes that may carry ciphertext.
	MessageCandidates(snap models.PageSnapshot) []models.TextNode
}

// Resolve selects the adapter variant for host. The selection happens per
// invocation and is never cached: navigation can move a page between
// hosts. Unknown hosts yield (nil, false).
func Resolve(host string) (Adapter, bool) {
	switch host {
	case "x.com", "www.x.com", "pro.x.com", "twitter.com", "www.twitter.com":
		return &xAdapter{}, true
	case "web.whatsapp.com":
		return &whatsAppAdapter{}, true
	default:
		return nil, false
	}
}
