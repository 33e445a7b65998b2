// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eddieoz/openxrypt/internal/config"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestControlClient(t *testing.T, serverURL string) *httpControlClient {
	t.Helper()
	log := logger.Nop()
	popupCfg := config.Popup{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	c, err := NewHTTPControlClient(popupCfg, log)
	require.NoError(t, err)
	return c.(*httpControlClient)
}

func writeErrorEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ControlResponse{Status: models.StatusError, Message: message})
}

func TestNewHTTPControlClient_BadAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "://nope"} {
		_, err := NewHTTPControlClient(config.Popup{BaseURL: addr}, logger.Nop())
		assert.Error(t, err, "address %q", addr)
	}
}

func Test_normalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host gets http scheme", raw: "127.0.0.1:7633", want: "http://127.0.0.1:7633"},
		{name: "trailing slash trimmed", raw: "http://localhost:7633/", want: "http://localhost:7633"},
		{name: "scheme kept", raw: "https://daemon.local", want: "https://daemon.local"},
		{name: "surrounding whitespace", raw: "  http://localhost:7633  ", want: "http://localhost:7633"},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncryptText_Success(t *testing.T) {
	input := models.PageSnapshot{
		Host:     "x.com",
		Path:     "/messages/123",
		Composer: &models.TextNode{ID: "composer", Text: "hello"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/text/encrypt", r.URL.Path)

		var req models.EncryptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ModeDM, req.Mode)
		assert.Equal(t, "hello", req.Snapshot.Composer.Text)

		patched := req.Snapshot
		composer := *patched.Composer
		composer.Text = "-----BEGIN PGP MESSAGE-----"
		patched.Composer = &composer

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.EncryptResponse{
			ControlResponse: models.ControlResponse{Status: models.StatusSuccess},
			Snapshot:        patched,
		})
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	got, err := c.EncryptText(context.Background(), models.ModeDM, input)

	require.NoError(t, err)
	require.NotNil(t, got.Composer)
	assert.Equal(t, "-----BEGIN PGP MESSAGE-----", got.Composer.Text)
	assert.Equal(t, "hello", input.Composer.Text)
}

func TestEncryptText_UnprocessableKeepsInput(t *testing.T) {
	input := models.PageSnapshot{
		Host:     "x.com",
		Composer: &models.TextNode{ID: "composer", Text: "hello ⌚"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusUnprocessableEntity, "message contains disallowed characters")
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	got, err := c.EncryptText(context.Background(), models.ModeDM, input)

	require.ErrorIs(t, err, ErrUnprocessable)
	assert.Contains(t, err.Error(), "disallowed characters")
	assert.Equal(t, input, got)
}

func TestEncryptText_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusBadRequest, "unknown encryption mode")
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	_, err := c.EncryptText(context.Background(), "smoke-signal", models.PageSnapshot{})

	require.ErrorIs(t, err, ErrBadRequest)
}

func TestScan_Success(t *testing.T) {
	input := models.PageSnapshot{
		Host:  "x.com",
		Path:  "/messages/123",
		Nodes: []models.TextNode{{ID: "n1", Text: "ciphertext"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scan", r.URL.Path)

		var req models.ScanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		patched := req.Snapshot
		patched.Nodes = []models.TextNode{{ID: "n1", Text: "plaintext"}}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ScanResponse{
			ControlResponse: models.ControlResponse{Status: models.StatusSuccess},
			Snapshot:        patched,
			Replaced:        1,
		})
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	got, replaced, err := c.Scan(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, replaced)
	assert.Equal(t, "plaintext", got.Nodes[0].Text)
}

func TestPassphrase_Lifecycle(t *testing.T) {
	var held bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/passphrase", r.URL.Path)

		switch r.Method {
		case http.MethodPost:
			var req models.PassphraseRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "hunter2", req.Passphrase)
			held = true
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			held = false
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.PassphraseStatus{HasPassphrase: held})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	ctx := context.Background()

	has, err := c.CheckPassphrase(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, c.SetPassphrase(ctx, "hunter2"))

	has, err = c.CheckPassphrase(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, c.ResetPassphrase(ctx))

	has, err = c.CheckPassphrase(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPutKey_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/keys/public", r.URL.Path)

		var req models.PutKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.Identity("@alice"), req.Handle)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.KeyResponse{
			ControlResponse: models.ControlResponse{Status: models.StatusSuccess},
			Handle:          req.Handle,
			ArmoredKey:      req.ArmoredKey,
			Fingerprint:     "0123 4567 89ab cdef",
		})
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	got, err := c.PutKey(context.Background(), NamespacePublic, "@alice", "-----BEGIN PGP PUBLIC KEY BLOCK-----")

	require.NoError(t, err)
	assert.Equal(t, models.Identity("@alice"), got.Handle)
	assert.Equal(t, "0123 4567 89ab cdef", got.Fingerprint)
}

func TestPutKey_InvalidKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusBadRequest, "invalid key provided")
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	_, err := c.PutKey(context.Background(), NamespacePublic, "@alice", "not a key")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid key provided")
}

func TestGetKey_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/keys/public/@bob", r.URL.Path)
		writeErrorEnvelope(w, http.StatusNotFound, "key not found")
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	_, err := c.GetKey(context.Background(), NamespacePublic, "@bob")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestListKeys_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/keys/private", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.KeyListResponse{
			ControlResponse: models.ControlResponse{Status: models.StatusSuccess},
			Keys: []models.KeyListEntry{
				{Handle: "@alice", Fingerprint: "0123 4567"},
				{Handle: "@carol", Fingerprint: "89ab cdef"},
			},
		})
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	keys, err := c.ListKeys(context.Background(), NamespacePrivate)

	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, models.Identity("@alice"), keys[0].Handle)
}

func TestDeleteKey_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/keys/public/@alice", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	require.NoError(t, c.DeleteKey(context.Background(), NamespacePublic, "@alice"))
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	version, err := c.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestVersion_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := newTestControlClient(t, srv.URL)
	_, err := c.Version(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
}

func Test_errorMessage(t *testing.T) {
	assert.Equal(t, "key not found",
		errorMessage([]byte(`{"status":"error","message":"key not found"}`)))
	assert.Equal(t, "plain text body", errorMessage([]byte("  plain text body\n")))
	assert.Equal(t, "", errorMessage(nil))
}
