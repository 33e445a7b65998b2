// SPDX-License-Identifier: Apache-2.0

// Package envelope encodes plaintext into the transport envelope carried
// inside encrypted blocks, and decodes received envelopes back to display
// text.
package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/eddieoz/openxrypt/models"
)

// LockMark is appended to plaintext before encoding so recipients see at a
// glance that the message travelled encrypted.
const LockMark = " \U0001F512"

// legacySuffix decorates payloads produced before the envelope format
// existed.
const legacySuffix = LockMark + "\n[ std ]"

// ErrUnknownEvent reports an envelope whose event field names a message
// kind this version does not understand.
var ErrUnknownEvent = errors.New("unknown envelope event")

// ErrMalformedEnvelope reports an envelope that is valid JSON but is
// missing required fields.
var ErrMalformedEnvelope = errors.New("malformed envelope")

// Wrap builds the JSON envelope for text: the lock mark is appended, the
// result base64-encoded, and the whole structure serialized.
func Wrap(text string) ([]byte, error) {
	env := models.MessageEnvelope{
		Event: models.EventMessageNew,
		Params: models.EnvelopeParams{
			Content: models.EnvelopeContent{
				Type: models.ContentTypeText,
				Text: base64.StdEncoding.EncodeToString([]byte(text + LockMark)),
			},
		},
	}
	return json.Marshal(env)
}

// Unwrap decodes a decrypted payload back to display text.
//
// Payloads that are not envelope JSON are treated as legacy plaintext and
// returned with a marker suffix so the reader can tell the message
// predates the envelope format. Envelope JSON with an unrecognized event
// returns ErrUnknownEvent.
func Unwrap(payload []byte) (string, error) {
	var env models.MessageEnvelope
	if err := json.Unmarshal(payload, &env); err != nil || env.Event == "" {
		return string(payload) + legacySuffix, nil
	}

	if env.Event != models.EventMessageNew {
		return "", ErrUnknownEvent
	}
	if env.Params.Content.Type != models.ContentTypeText {
		return "", ErrMalformedEnvelope
	}

	text, err := base64.StdEncoding.DecodeString(strings.TrimSpace(env.Params.Content.Text))
	if err != nil {
		return "", ErrMalformedEnvelope
	}

	return string(text), nil
}
