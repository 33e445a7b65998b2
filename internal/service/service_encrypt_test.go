package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eddieoz/openxrypt/internal/crypto"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/internal/mock"
	"github.com/eddieoz/openxrypt/internal/scanner"
	"github.com/eddieoz/openxrypt/models"
)

func newTestEncryptSvc(t *testing.T, ctrl *gomock.Controller) (EncryptService, *mock.MockKeyStore, *mock.MockEngine) {
	t.Helper()
	mockStore := mock.NewMockKeyStore(ctrl)
	mockEngine := mock.NewMockEngine(ctrl)
	keyring := NewKeyringService(mockStore, mockEngine, logger.Nop())
	svc := NewEncryptService(mockEngine, keyring, logger.Nop())
	return svc, mockStore, mockEngine
}

func composerSnapshot(text string) models.PageSnapshot {
	return models.PageSnapshot{
		Host:         "x.com",
		Path:         "/messages/123",
		Scripts:      []string{`window.__INITIAL_STATE__={"screen_name":"alice"};`},
		Conversation: []string{"@bob"},
		Composer:     &models.TextNode{ID: "composer", Text: text},
	}
}

func TestEncryptForSend_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockEngine := newTestEncryptSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetPublicKey(ctx, "@bob").
		Return(models.PublicKeyRecord{Handle: "@bob", ArmoredKey: "BOB-PUB"}, nil)
	mockStore.EXPECT().GetPrivateKey(ctx, "@alice").
		Return(models.PrivateKeyRecord{Handle: "@alice", PublicKey: "ALICE-PUB"}, nil)
	mockEngine.EXPECT().EncryptArmored(gomock.Any(), []string{"BOB-PUB", "ALICE-PUB"}).
		Return("-----ARMORED-----", nil)

	snap := composerSnapshot("hello")
	patched, err := svc.EncryptForSend(ctx, snap)
	require.NoError(t, err)

	assert.Equal(t, "-----ARMORED-----\n"+scanner.ProvenanceTag, patched.Composer.Text)
	assert.Equal(t, "hello", snap.Composer.Text, "input snapshot must stay untouched")
}

func TestEncryptForSend_RejectsDisallowedRunes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEncryptSvc(t, ctrl)

	tests := []struct {
		name string
		text string
	}{
		{name: "emoji", text: "hello \U0001F600"},
		{name: "zero width joiner", text: "a‍b"},
		{name: "bmp symbol", text: "meet at ⌚"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := composerSnapshot(tt.text)
			patched, err := svc.EncryptForSend(context.Background(), snap)

			assert.ErrorIs(t, err, ErrDisallowedContent)
			assert.Equal(t, tt.text, patched.Composer.Text)
		})
	}
}

func TestEncryptForSend_NoComposer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEncryptSvc(t, ctrl)

	snap := composerSnapshot("hello")
	snap.Composer = nil

	_, err := svc.EncryptForSend(context.Background(), snap)
	assert.ErrorIs(t, err, ErrNoComposer)
}

func TestEncryptForSend_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEncryptSvc(t, ctrl)

	_, err := svc.EncryptForSend(context.Background(), composerSnapshot("   "))
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestEncryptForSend_UnsupportedHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEncryptSvc(t, ctrl)

	snap := composerSnapshot("hello")
	snap.Host = "example.com"

	_, err := svc.EncryptForSend(context.Background(), snap)
	assert.ErrorIs(t, err, ErrUnsupportedHost)
}

func TestEncryptForSend_UnresolvedLocalIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEncryptSvc(t, ctrl)

	snap := composerSnapshot("hello")
	snap.Scripts = nil

	_, err := svc.EncryptForSend(context.Background(), snap)
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
}

func TestEncryptForSend_UnresolvedPeerIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEncryptSvc(t, ctrl)

	snap := composerSnapshot("hello")
	snap.Conversation = nil

	_, err := svc.EncryptForSend(context.Background(), snap)
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
}

func TestEncryptForSend_EncryptionFailureLeavesComposer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockEngine := newTestEncryptSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetPublicKey(ctx, "@bob").
		Return(models.PublicKeyRecord{Handle: "@bob", ArmoredKey: "BOB-PUB"}, nil)
	mockStore.EXPECT().GetPrivateKey(ctx, "@alice").
		Return(models.PrivateKeyRecord{Handle: "@alice", PublicKey: "ALICE-PUB"}, nil)
	mockEngine.EXPECT().EncryptArmored(gomock.Any(), gomock.Any()).
		Return("", crypto.ErrEncryptionFailed)

	snap := composerSnapshot("hello")
	patched, err := svc.EncryptForSend(ctx, snap)

	assert.ErrorIs(t, err, crypto.ErrEncryptionFailed)
	assert.Equal(t, "hello", patched.Composer.Text)
}

func TestEncryptForSend_GroupConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockEngine := newTestEncryptSvc(t, ctrl)
	ctx := context.Background()

	snap := composerSnapshot("hello group")
	snap.Conversation = nil
	snap.GroupMembers = []string{"@bob", "@carol"}

	mockStore.EXPECT().GetPublicKey(ctx, "@bob").
		Return(models.PublicKeyRecord{Handle: "@bob", ArmoredKey: "BOB-PUB"}, nil)
	mockStore.EXPECT().GetPublicKey(ctx, "@carol").
		Return(models.PublicKeyRecord{Handle: "@carol", ArmoredKey: "CAROL-PUB"}, nil)
	mockStore.EXPECT().GetPrivateKey(ctx, "@alice").
		Return(models.PrivateKeyRecord{Handle: "@alice", PublicKey: "ALICE-PUB"}, nil)
	mockEngine.EXPECT().EncryptArmored(gomock.Any(), []string{"BOB-PUB", "CAROL-PUB", "ALICE-PUB"}).
		Return("-----ARMORED-----", nil)

	patched, err := svc.EncryptForSend(ctx, snap)
	require.NoError(t, err)
	assert.Contains(t, patched.Composer.Text, "-----ARMORED-----")
}

func TestEncryptForConstrainedPost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockEngine := newTestEncryptSvc(t, ctrl)
	ctx := context.Background()

	key := []byte("derived-key-material-32-bytes!!!")

	mockStore.EXPECT().GetPrivateKey(ctx, "@alice").
		Return(models.PrivateKeyRecord{Handle: "@alice", Fingerprint: "0123 4567"}, nil)
	mockEngine.EXPECT().DeriveSymmetricKey("0123 4567").Return(key)
	mockEngine.EXPECT().EncryptSymmetric("short post", key).Return("BASE64PAYLOAD", nil)

	snap := composerSnapshot("short post")
	patched, err := svc.EncryptForConstrainedPost(ctx, snap)
	require.NoError(t, err)

	assert.Equal(t, "XRPT\nBASE64PAYLOAD\nXRPT\n", patched.Composer.Text)
	assert.Equal(t, "short post", snap.Composer.Text)
}

func TestEncryptForConstrainedPost_FailureLeavesComposer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockEngine := newTestEncryptSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().GetPrivateKey(ctx, "@alice").
		Return(models.PrivateKeyRecord{Handle: "@alice", Fingerprint: "0123 4567"}, nil)
	mockEngine.EXPECT().DeriveSymmetricKey("0123 4567").Return([]byte("key"))
	mockEngine.EXPECT().EncryptSymmetric(gomock.Any(), gomock.Any()).
		Return("", errors.New("cipher failure"))

	snap := composerSnapshot("short post")
	patched, err := svc.EncryptForConstrainedPost(ctx, snap)

	require.Error(t, err)
	assert.Equal(t, "short post", patched.Composer.Text)
}
