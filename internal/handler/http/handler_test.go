package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eddieoz/openxrypt/internal/guard"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/mock"
	"github.com/eddieoz/openxrypt/internal/service"
	"github.com/eddieoz/openxrypt/internal/store"
	"github.com/eddieoz/openxrypt/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockKeyStore, *mock.MockEngine) {
	t.Helper()

	mockStore := mock.NewMockKeyStore(ctrl)
	mockEngine := mock.NewMockEngine(ctrl)
	services := service.NewServices(mockStore, mockEngine, guard.New(), logger.Nop())

	return NewHandler(services, nil, nil, "1.2.3-test", logger.Nop()), mockStore, mockEngine
}

func doRequest(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestPassphraseLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/passphrase", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[models.PassphraseStatus](t, rec).HasPassphrase)

	rec = doRequest(t, h, http.MethodPost, "/api/passphrase", models.PassphraseRequest{Passphrase: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusSuccess, decodeBody[models.ControlResponse](t, rec).Status)

	rec = doRequest(t, h, http.MethodGet, "/api/passphrase", nil)
	assert.True(t, decodeBody[models.PassphraseStatus](t, rec).HasPassphrase)

	rec = doRequest(t, h, http.MethodDelete, "/api/passphrase", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/passphrase", nil)
	assert.False(t, decodeBody[models.PassphraseStatus](t, rec).HasPassphrase)
}

func TestSetPassphrase_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/api/passphrase", models.PassphraseRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.StatusError, decodeBody[models.ControlResponse](t, rec).Status)
}

func TestGetVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3-test", rec.Body.String())
}

func TestPutKey_Public(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockStore, mockEngine := newTestHandler(t, ctrl)

	mockEngine.EXPECT().Fingerprint("ARMORED").Return("0123 4567", nil)
	mockStore.EXPECT().PutPublicKey(gomock.Any(), gomock.Any()).Return(nil)

	rec := doRequest(t, h, http.MethodPost, "/api/keys/public", models.PutKeyRequest{
		Handle:     "@bob",
		ArmoredKey: "ARMORED",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.KeyResponse](t, rec)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "0123 4567", resp.Fingerprint)
}

func TestPutKey_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockEngine := newTestHandler(t, ctrl)

	mockEngine.EXPECT().Fingerprint("garbage").Return("", assert.AnError)

	rec := doRequest(t, h, http.MethodPost, "/api/keys/public", models.PutKeyRequest{
		Handle:     "@bob",
		ArmoredKey: "garbage",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutKey_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/api/keys/public", models.PutKeyRequest{Handle: "@bob"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetKey_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockStore, _ := newTestHandler(t, ctrl)

	mockStore.EXPECT().GetPublicKey(gomock.Any(), "@nobody").
		Return(models.PublicKeyRecord{}, store.ErrKeyNotFound)

	rec := doRequest(t, h, http.MethodGet, "/api/keys/public/@nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListKeys_UnknownNamespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/keys/ssh/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListKeys_Private(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockStore, _ := newTestHandler(t, ctrl)

	mockStore.EXPECT().ListPrivateKeys(gomock.Any()).Return([]models.PrivateKeyRecord{
		{Handle: "@alice", Fingerprint: "aaaa bbbb"},
	}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/keys/private/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[models.KeyListResponse](t, rec)
	require.Len(t, resp.Keys, 1)
	assert.Equal(t, models.Identity("@alice"), resp.Keys[0].Handle)
	assert.Equal(t, "aaaa bbbb", resp.Keys[0].Fingerprint)
}

func TestDeleteKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockStore, _ := newTestHandler(t, ctrl)

	mockStore.EXPECT().DeletePublicKey(gomock.Any(), "@bob").Return(nil)

	rec := doRequest(t, h, http.MethodDelete, "/api/keys/public/@bob", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEncryptText_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/text/encrypt", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncryptText_UnknownMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/api/text/encrypt", models.EncryptRequest{Mode: "carrier-pigeon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncryptText_DM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockStore, mockEngine := newTestHandler(t, ctrl)

	mockStore.EXPECT().GetPublicKey(gomock.Any(), "@bob").
		Return(models.PublicKeyRecord{Handle: "@bob", ArmoredKey: "BOB-PUB"}, nil)
	mockStore.EXPECT().GetPrivateKey(gomock.Any(), "@alice").
		Return(models.PrivateKeyRecord{Handle: "@alice", PublicKey: "ALICE-PUB"}, nil)
	mockEngine.EXPECT().EncryptArmored(gomock.Any(), []string{"BOB-PUB", "ALICE-PUB"}).
		Return("-----ARMORED-----", nil)

	rec := doRequest(t, h, http.MethodPost, "/api/text/encrypt", models.EncryptRequest{
		Mode: models.ModeDM,
		Snapshot: models.PageSnapshot{
			Host:         "x.com",
			Path:         "/messages/1",
			Scripts:      []string{`window.__INITIAL_STATE__={"screen_name":"alice"};`},
			Conversation: []string{"@bob"},
			Composer:     &models.TextNode{ID: "composer", Text: "hello"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.EncryptResponse](t, rec)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Contains(t, resp.Snapshot.Composer.Text, "-----ARMORED-----")
}

func TestEncryptText_IdentityUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodPost, "/api/text/encrypt", models.EncryptRequest{
		Mode: models.ModeDM,
		Snapshot: models.PageSnapshot{
			Host:     "x.com",
			Composer: &models.TextNode{ID: "composer", Text: "hello"},
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScan_UnknownHostPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	snap := models.PageSnapshot{
		Host:  "example.com",
		Nodes: []models.TextNode{{ID: "m1", Text: "plain text"}},
	}

	rec := doRequest(t, h, http.MethodPost, "/api/scan", models.ScanRequest{Snapshot: snap})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[models.ScanResponse](t, rec)
	assert.Equal(t, 0, resp.Replaced)
	assert.Equal(t, "plain text", resp.Snapshot.Nodes[0].Text)
}
