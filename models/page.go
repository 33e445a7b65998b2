// SPDX-License-Identifier: Apache-2.0

package models

// PageSnapshot is a pure-data capture of the host page at one moment: the
// text nodes, the composer, and the identity-bearing fragments a platform
// adapter needs. The browser surface ships a snapshot over the control
// channel on every content mutation; the core never touches a live DOM.
//
// Snapshots are value-copied before patching so a scan is a pure function
// from snapshot to snapshot.
type PageSnapshot struct {
	// Host is the page hostname (e.g. "x.com", "web.whatsapp.com").
	// Adapter selection keys off it on every invocation.
	Host string `json:"host"`

	// Path is the URL path of the current view (e.g. "/notifications").
	// Some views are excluded from symmetric-block decryption by policy.
	Path string `json:"path"`

	// Scripts holds the bodies of inline script tags. X embeds the local
	// user's handle inside a window.__INITIAL_STATE__ assignment here.
	Scripts []string `json:"scripts,omitempty"`

	// Storage holds the host page's local-storage entries. WhatsApp keeps
	// the local account id under "last-wid-md".
	Storage map[string]string `json:"storage,omitempty"`

	// Conversation holds the text fragments and hrefs of the conversation
	// header (DM section details), used to resolve the peer identity.
	Conversation []string `json:"conversation,omitempty"`

	// GroupMembers holds raw member entries of the open group conversation,
	// empty outside a group context.
	GroupMembers []string `json:"group_members,omitempty"`

	// Composer is the writable message input, nil when no composer is
	// present in the current view.
	Composer *TextNode `json:"composer,omitempty"`

	// SendControl is the submit control next to the composer, nil when
	// absent. The core only anchors to it; it never submits.
	SendControl *UIAnchor `json:"send_control,omitempty"`

	// Nodes are the candidate message text nodes the scanner walks.
	Nodes []TextNode `json:"nodes"`
}

// TextNode is one visible text run in the host page.
type TextNode struct {
	// ID addresses the node within its snapshot so a patched snapshot can
	// be mapped back onto the live page by the browser surface.
	ID string `json:"id"`

	// Text is the full text content of the node.
	Text string `json:"text"`

	// Author is the platform handle owning the node (e.g. the post author),
	// empty when the surface could not attribute it.
	Author string `json:"author,omitempty"`
}

// UIAnchor locates a platform control the surface should attach to.
type UIAnchor struct {
	// ID addresses the control within the snapshot.
	ID string `json:"id"`

	// Label is the accessible name of the control, for diagnostics only.
	Label string `json:"label,omitempty"`
}

// Clone returns a deep copy of the snapshot. Scans patch the copy and leave
// the input untouched.
func (s PageSnapshot) Clone() PageSnapshot {
	out := s

	out.Scripts = append([]string(nil), s.Scripts...)
	out.Conversation = append([]string(nil), s.Conversation...)
	out.GroupMembers = append([]string(nil), s.GroupMembers...)
	out.Nodes = append([]TextNode(nil), s.Nodes...)

	if s.Storage != nil {
		out.Storage = make(map[string]string, len(s.Storage))
		for k, v := range s.Storage {
			out.Storage[k] = v
		}
	}
	if s.Composer != nil {
		composer := *s.Composer
		out.Composer = &composer
	}
	if s.SendControl != nil {
		anchor := *s.SendControl
		out.SendControl = &anchor
	}

	return out
}
