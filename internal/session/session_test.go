package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"
	"eventPortal/internal/session/mocks"
	"eventPortal/internal/session/storage"
	"eventPortal/internal/session/storage/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func admin() models.AuthUser {
	role := models.RoleAdmin
	return models.AuthUser{
		User:  models.User{ID: 4, Username: "ann", Email: "ann@example.com", Role: &role},
		Token: "opaque",
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	valid, err := json.Marshal(admin())
	require.NoError(t, err)

	testCases := []struct {
		name      string
		mockSetup func(st *mocks.Storage)
		loggedIn  bool
		wantErr   bool
	}{
		{
			name: "Nothing persisted",
			mockSetup: func(st *mocks.Storage) {
				st.On("Get", mock.Anything, Key).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "Persisted session",
			mockSetup: func(st *mocks.Storage) {
				st.On("Get", mock.Anything, Key).Return(valid, nil)
			},
			loggedIn: true,
		},
		{
			name: "Corrupt JSON is cleared",
			mockSetup: func(st *mocks.Storage) {
				st.On("Get", mock.Anything, Key).Return([]byte(`{"id":4,"username":`), nil)
				st.On("Remove", mock.Anything, Key).Return(nil)
			},
		},
		{
			name: "Record without token is cleared",
			mockSetup: func(st *mocks.Storage) {
				st.On("Get", mock.Anything, Key).Return([]byte(`{"id":4,"username":"ann"}`), nil)
				st.On("Remove", mock.Anything, Key).Return(nil)
			},
		},
		{
			name: "Failing cleanup is not fatal",
			mockSetup: func(st *mocks.Storage) {
				st.On("Get", mock.Anything, Key).Return([]byte(`[]`), nil)
				st.On("Remove", mock.Anything, Key).Return(errors.New("read-only"))
			},
		},
		{
			name: "Unreachable storage",
			mockSetup: func(st *mocks.Storage) {
				st.On("Get", mock.Anything, Key).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := mocks.NewStorage(t)
			tc.mockSetup(st)

			s, err := Open(context.Background(), slogdiscard.NewDiscardLogger(), st)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			user, ok := s.Current()
			assert.Equal(t, tc.loggedIn, ok)
			if tc.loggedIn {
				assert.Equal(t, admin(), user)
			} else {
				assert.Equal(t, models.AuthUser{}, user)
			}
		})
	}
}

func TestLoginLogoutPersist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	log := slogdiscard.NewDiscardLogger()

	st, err := file.New(t.TempDir())
	require.NoError(t, err)

	s, err := Open(ctx, log, st)
	require.NoError(t, err)

	_, ok := s.Current()
	require.False(t, ok)

	require.NoError(t, s.Login(ctx, admin()))

	user, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "opaque", user.Token)

	reopened, err := Open(ctx, log, st)
	require.NoError(t, err)
	user, ok = reopened.Current()
	require.True(t, ok)
	assert.Equal(t, admin(), user)

	require.NoError(t, reopened.Logout(ctx))
	_, ok = reopened.Current()
	assert.False(t, ok)

	_, err = st.Get(ctx, Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, reopened.Logout(ctx))
	require.NoError(t, reopened.Close())
}

func TestLoginRejectsIncompleteUser(t *testing.T) {
	t.Parallel()

	st := mocks.NewStorage(t)
	st.On("Get", mock.Anything, Key).Return(nil, storage.ErrNotFound)

	s, err := Open(context.Background(), slogdiscard.NewDiscardLogger(), st)
	require.NoError(t, err)

	err = s.Login(context.Background(), models.AuthUser{User: models.User{ID: 1, Username: "ann"}})
	require.Error(t, err)

	_, ok := s.Current()
	assert.False(t, ok)
	st.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginStorageFailureKeepsPreviousState(t *testing.T) {
	t.Parallel()

	st := mocks.NewStorage(t)
	st.On("Get", mock.Anything, Key).Return(nil, storage.ErrNotFound)
	st.On("Set", mock.Anything, Key, mock.Anything).Return(errors.New("disk full"))

	s, err := Open(context.Background(), slogdiscard.NewDiscardLogger(), st)
	require.NoError(t, err)

	require.Error(t, s.Login(context.Background(), admin()))

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLogoutClearsMemoryOnStorageFailure(t *testing.T) {
	t.Parallel()

	valid, err := json.Marshal(admin())
	require.NoError(t, err)

	st := mocks.NewStorage(t)
	st.On("Get", mock.Anything, Key).Return(valid, nil)
	st.On("Remove", mock.Anything, Key).Return(errors.New("read-only"))

	s, err := Open(context.Background(), slogdiscard.NewDiscardLogger(), st)
	require.NoError(t, err)

	require.Error(t, s.Logout(context.Background()))

	_, ok := s.Current()
	assert.False(t, ok)
}
