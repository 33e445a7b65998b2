// SPDX-License-Identifier: Apache-2.0

package models

// EventMessageNew is the only envelope event currently exchanged between
// installations. The namespaced form leaves room for future message kinds
// (e.g. "xrypt.msg.edit") without breaking older peers.
const EventMessageNew = "xrypt.msg.new"

// ContentTypeText marks the envelope payload as plain user text.
const ContentTypeText = "text"

// MessageEnvelope is the structured plaintext unit wrapped around user text
// before asymmetric encryption. This JSON shape is the only persisted or
// transmitted structured format and must remain stable for interoperability
// between two independent installations:
//
//	{
//	  "event": "xrypt.msg.new",
//	  "params": {
//	    "content": { "type": "text", "text": base64(utf8(text + lock marker)) }
//	  }
//	}
type MessageEnvelope struct {
	// Event is the namespaced message event. Unknown values are a decode
	// failure on the receiving side, never a crash.
	Event string `json:"event"`

	// Params carries the event payload.
	Params EnvelopeParams `json:"params"`
}

// EnvelopeParams is the parameter object of a [MessageEnvelope].
type EnvelopeParams struct {
	Content EnvelopeContent `json:"content"`
}

// EnvelopeContent carries the encoded user text.
type EnvelopeContent struct {
	// Type describes the payload kind; only [ContentTypeText] is produced.
	Type string `json:"type"`

	// Text is the base64 encoding of the UTF-8 user text with the trailing
	// lock marker already appended.
	Text string `json:"text"`
}
