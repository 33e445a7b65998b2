// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"regexp"
	"strings"

	"github.com/eddieoz/openxrypt/models"
)

// xAdapter resolves identities on X (formerly Twitter).
//
// The signed-in handle lives in the bootstrap state blob the page embeds
// in an inline script; the peer handle is shown in the DM conversation
// header.
type xAdapter struct{}

var (
	initialStateRe = regexp.MustCompile(`window\.__INITIAL_STATE__\s*=`)
	screenNameRe   = regexp.MustCompile(`"screen_name"\s*:\s*"([A-Za-z0-9_]+)"`)
)

func (a *xAdapter) LocalIdentity(snap models.PageSnapshot) models.Identity {
	for _, script := range snap.Scripts {
		if !initialStateRe.MatchString(script) {
			continue
		}
		if m := screenNameRe.FindStringSubmatch(script); m != nil {
			return models.Identity("@" + m[1])
		}
	}
	return models.UnknownLocalIdentity
}

func (a *xAdapter) PeerIdentity(snap models.PageSnapshot) models.Identity {
	for _, entry := range snap.Conversation {
		entry = strings.TrimSpace(entry)
		if strings.HasPrefix(entry, "@") {
			return models.Identity(entry)
		}
		// Profile links carry the handle as the trailing path segment.
		if strings.Contains(entry, "/") {
			segment := entry[strings.LastIndex(entry, "/")+1:]
			if segment != "" {
				return models.Identity("@" + segment)
			}
		}
	}
	return models.UnknownPeerIdentity
}

func (a *xAdapter) GroupMemberIdentities(snap models.PageSnapshot) []models.Identity {
	var members []models.Identity
	for _, entry := range snap.GroupMembers {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.HasPrefix(entry, "@") {
			entry = "@" + entry
		}
		members = append(members, models.Identity(entry))
	}
	return members
}

func (a *xAdapter) Composer(snap models.PageSnapshot) *models.TextNode {
	return snap.Composer
}

func (a *xAdapter) SendControl(snap models.PageSnapshot) *models.UIAnchor {
	return snap.SendControl
}

func (a *xAdapter) MessageCandidates(snap models.PageSnapshot) []models.TextNode {
	return snap.Nodes
}
