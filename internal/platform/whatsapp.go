// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"regexp"
	"strings"

	"github.com/eddieoz/openxrypt/models"
)

// whatsAppAdapter resolves identities on WhatsApp Web. Handles are bare
// phone numbers; the signed-in number sits in local storage and peers are
// identified by their @c.us address.
type whatsAppAdapter struct{}

const (
	localWIDKey = "last-wid-md"
	userSuffix  = "@c.us"
)

var peerDataIDRe = regexp.MustCompile(`true_(\d+)@c\.us_`)

func (a *whatsAppAdapter) LocalIdentity(snap models.PageSnapshot) models.Identity {
	wid, ok := snap.Storage[localWIDKey]
	if !ok {
		return models.UnknownLocalIdentity
	}

	// Stored as "<number>:<device>@c.us", possibly quoted.
	wid = strings.Trim(wid, `"`)
	if idx := strings.Index(wid, ":"); idx > 0 {
		return models.Identity(wid[:idx])
	}
	if idx := strings.Index(wid, "@"); idx > 0 {
		return models.Identity(wid[:idx])
	}
	return models.UnknownLocalIdentity
}

func (a *whatsAppAdapter) PeerIdentity(snap models.PageSnapshot) models.Identity {
	for _, entry := range snap.Conversation {
		if m := peerDataIDRe.FindStringSubmatch(entry); m != nil {
			return models.Identity(m[1])
		}
	}
	return models.UnknownPeerIdentity
}

func (a *whatsAppAdapter) GroupMemberIdentities(snap models.PageSnapshot) []models.Identity {
	var members []models.Identity
	for _, entry := range snap.GroupMembers {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		members = append(members, models.Identity(strings.TrimSuffix(entry, userSuffix)))
	}
	return members
}

func (a *whatsAppAdapter) Composer(snap models.PageSnapshot) *models.TextNode {
	return snap.Composer
}

func (a *whatsAppAdapter) SendControl(snap models.PageSnapshot) *models.UIAnchor {
	return snap.SendControl
}

func (a *whatsAppAdapter) MessageCandidates(snap models.PageSnapshot) []models.TextNode {
	return snap.Nodes
}
