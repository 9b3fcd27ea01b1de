package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"club-auth/app/domain"
	"club-auth/app/driver/memstore"
	mock_port "club-auth/app/mocks"
	"club-auth/app/port"
	"club-auth/app/utils/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUseCase(t *testing.T, validator port.CredentialValidator, store port.RecordStore) *SessionUseCase {
	t.Helper()
	return NewSessionUseCase(validator, store, metrics.Noop{}, slog.Default(), 0)
}

func memberIdentity() *domain.Identity {
	return &domain.Identity{
		ID:          uuid.New(),
		Email:       "student@university.edu",
		Secret:      "student123",
		FirstName:   "Alex",
		LastName:    "Rivera",
		Role:        domain.RoleMember,
		Permissions: []domain.Permission{domain.PermissionClubsView, domain.PermissionEventsJoin},
		CreatedAt:   time.Now().UTC(),
	}
}

func TestSessionUseCase_LoginSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), "student@university.edu", "student123", "student").
		Return(memberIdentity(), nil)

	recorder := mock_port.NewMockMetricsRecorder(ctrl)
	recorder.EXPECT().RecordLogin("member")

	store := memstore.New()
	uc := NewSessionUseCase(validator, store, recorder, slog.Default(), 0)
	uc.Restore(context.Background())

	identity, err := uc.Login(context.Background(), "student@university.edu", "student123", "student")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, domain.RoleMember, identity.Role)
	assert.NotNil(t, identity.LastLoginAt)

	snap := uc.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.False(t, snap.IsLoading)
	require.NotNil(t, snap.CurrentIdentity)
	assert.Equal(t, identity.ID, snap.CurrentIdentity.ID)

	// the composite record landed in the store
	value, ok, err := store.Get(context.Background(), domain.SessionRecordKey)
	require.NoError(t, err)
	require.True(t, ok)
	record, err := domain.DecodeSessionRecord(value)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, record.Identity.ID)
	assert.NotEmpty(t, record.Token)
}

func TestSessionUseCase_LoginFailureLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{name: "invalid credentials", wantErr: domain.ErrInvalidCredentials},
		{name: "role mismatch", wantErr: domain.NewRoleMismatchError(domain.RoleAdmin)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			validator := mock_port.NewMockCredentialValidator(ctrl)
			validator.EXPECT().
				Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.wantErr)

			store := memstore.New()
			uc := newTestUseCase(t, validator, store)
			uc.Restore(context.Background())

			_, err := uc.Login(context.Background(), "student@university.edu", "bad", "student")
			require.Error(t, err)
			assert.Equal(t, tt.wantErr.Error(), err.Error())

			snap := uc.Snapshot()
			assert.False(t, snap.IsAuthenticated)
			assert.Nil(t, snap.CurrentIdentity)
			assert.False(t, snap.IsLoading)

			_, ok, _ := store.Get(context.Background(), domain.SessionRecordKey)
			assert.False(t, ok, "no partial record may be written")
		})
	}
}

func TestSessionUseCase_LoginStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(memberIdentity(), nil)

	store := mock_port.NewMockRecordStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.SessionRecordKey).Return("", false, nil)
	store.EXPECT().
		Set(gomock.Any(), domain.SessionRecordKey, gomock.Any()).
		Return(errors.New("disk full"))

	uc := newTestUseCase(t, validator, store)
	uc.Restore(context.Background())

	_, err := uc.Login(context.Background(), "student@university.edu", "student123", "student")
	require.Error(t, err)

	snap := uc.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.CurrentIdentity)
}

func TestSessionUseCase_RestoreRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := memberIdentity()
	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(identity, nil)

	store := memstore.New()

	first := newTestUseCase(t, validator, store)
	first.Restore(context.Background())
	_, err := first.Login(context.Background(), "student@university.edu", "student123", "student")
	require.NoError(t, err)

	// simulated process restart: a fresh lifecycle manager over the same store
	second := newTestUseCase(t, validator, store)
	assert.True(t, second.Snapshot().IsLoading)

	second.Restore(context.Background())

	snap := second.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.CurrentIdentity)
	assert.Equal(t, identity.ID, snap.CurrentIdentity.ID)
}

func TestSessionUseCase_RestoreEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, mock_port.NewMockCredentialValidator(ctrl), memstore.New())
	uc.Restore(context.Background())

	snap := uc.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.CurrentIdentity)
}

func TestSessionUseCase_RestoreCorruptRecordIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memstore.New()
	require.NoError(t, store.Set(context.Background(), domain.SessionRecordKey, "not json at all"))

	uc := newTestUseCase(t, mock_port.NewMockCredentialValidator(ctrl), store)
	uc.Restore(context.Background())

	snap := uc.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsAuthenticated)

	// the corrupt record was removed, not left to fail again next start
	_, ok, _ := store.Get(context.Background(), domain.SessionRecordKey)
	assert.False(t, ok)
}

func TestSessionUseCase_RestoreRunsOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := memberIdentity()
	record, err := domain.NewSessionRecord(identity, domain.NewSessionToken())
	require.NoError(t, err)
	encoded, err := record.Encode()
	require.NoError(t, err)

	store := memstore.New()
	require.NoError(t, store.Set(context.Background(), domain.SessionRecordKey, encoded))

	uc := newTestUseCase(t, mock_port.NewMockCredentialValidator(ctrl), store)
	uc.Restore(context.Background())
	require.True(t, uc.Snapshot().IsAuthenticated)

	require.NoError(t, uc.Logout(context.Background()))

	// a second restore call must not resurrect the session
	uc.Restore(context.Background())
	assert.False(t, uc.Snapshot().IsAuthenticated)
}

func TestSessionUseCase_LogoutIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := memberIdentity()
	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(identity, nil)

	store := memstore.New()
	uc := newTestUseCase(t, validator, store)
	uc.Restore(context.Background())

	_, err := uc.Login(context.Background(), "student@university.edu", "student123", "student")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, uc.Logout(context.Background()))

		snap := uc.Snapshot()
		assert.False(t, snap.IsAuthenticated)
		assert.Nil(t, snap.CurrentIdentity)
		assert.False(t, snap.IsLoading)

		_, ok, _ := store.Get(context.Background(), domain.SessionRecordKey)
		assert.False(t, ok)
	}
}

func TestSessionUseCase_LogoutClearsStateEvenOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_port.NewMockRecordStore(ctrl)
	store.EXPECT().Get(gomock.Any(), domain.SessionRecordKey).Return("", false, nil)
	store.EXPECT().
		Delete(gomock.Any(), domain.SessionRecordKey).
		Return(errors.New("store offline"))

	uc := newTestUseCase(t, mock_port.NewMockCredentialValidator(ctrl), store)
	uc.Restore(context.Background())

	err := uc.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, uc.Snapshot().IsAuthenticated)
}

func TestSessionUseCase_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := memberIdentity()
	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(identity, nil)

	store := memstore.New()
	uc := newTestUseCase(t, validator, store)
	uc.Restore(context.Background())

	_, err := uc.Login(context.Background(), "student@university.edu", "student123", "student")
	require.NoError(t, err)

	newBio := "robotics club treasurer"
	updated, err := uc.UpdateProfile(context.Background(), domain.ProfileUpdate{Bio: &newBio})
	require.NoError(t, err)
	assert.Equal(t, newBio, updated.Bio)
	assert.Equal(t, "Alex", updated.FirstName) // untouched field survives

	// the merge is re-persisted under the same token
	value, ok, err := store.Get(context.Background(), domain.SessionRecordKey)
	require.NoError(t, err)
	require.True(t, ok)
	record, err := domain.DecodeSessionRecord(value)
	require.NoError(t, err)
	assert.Equal(t, newBio, record.Identity.Bio)
}

func TestSessionUseCase_UpdateProfileWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(t, mock_port.NewMockCredentialValidator(ctrl), memstore.New())
	uc.Restore(context.Background())

	name := "Nobody"
	_, err := uc.UpdateProfile(context.Background(), domain.ProfileUpdate{FirstName: &name})
	assert.ErrorIs(t, err, domain.ErrProfileUpdateFailed)
}

func TestSessionUseCase_ChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{name: "accepted", current: "student123", next: "longenough"},
		{name: "current too short", current: "short", next: "longenough", wantErr: domain.ErrCurrentPasswordIncorrect},
		{name: "new too short", current: "student123", next: "tiny", wantErr: domain.ErrPasswordTooShort},
		{name: "both empty", current: "", next: "", wantErr: domain.ErrCurrentPasswordIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := newTestUseCase(t, mock_port.NewMockCredentialValidator(ctrl), memstore.New())

			err := uc.ChangePassword(context.Background(), tt.current, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionUseCase_Predicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leader := &domain.Identity{
		ID:          uuid.New(),
		Email:       "leader@university.edu",
		Role:        domain.RoleClubLeader,
		Permissions: []domain.Permission{domain.PermissionClubsManage},
	}

	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(leader, nil)

	uc := newTestUseCase(t, validator, memstore.New())
	uc.Restore(context.Background())

	// empty session answers false everywhere
	assert.False(t, uc.IsAdmin())
	assert.False(t, uc.IsClubLeader())
	assert.False(t, uc.IsMember())
	assert.False(t, uc.HasPermission(domain.PermissionClubsManage))

	_, err := uc.Login(context.Background(), "leader@university.edu", "leader123", "leader")
	require.NoError(t, err)

	assert.False(t, uc.IsAdmin())
	assert.True(t, uc.IsClubLeader())
	assert.False(t, uc.IsMember())
	assert.True(t, uc.HasPermission(domain.PermissionClubsManage))
	assert.False(t, uc.HasPermission(domain.PermissionAdminAll))
}

func TestSessionUseCase_LoginHonorsArtificialDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := mock_port.NewMockCredentialValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(memberIdentity(), nil)

	uc := NewSessionUseCase(validator, memstore.New(), metrics.Noop{}, slog.Default(), 20*time.Millisecond)
	uc.Restore(context.Background())

	start := time.Now()
	_, err := uc.Login(context.Background(), "student@university.edu", "student123", "student")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSessionUseCase_LoginCancelledDuringDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSessionUseCase(
		mock_port.NewMockCredentialValidator(ctrl),
		memstore.New(),
		metrics.Noop{},
		slog.Default(),
		time.Second,
	)
	uc.Restore(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Login(ctx, "student@university.edu", "student123", "student")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, uc.Snapshot().IsAuthenticated)
}
