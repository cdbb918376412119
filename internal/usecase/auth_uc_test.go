package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanquiga/frontendfinal/internal/adapters/storage/memory"
	"github.com/juanquiga/frontendfinal/internal/domain"
)

func TestLoginStoresSessionKeys(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	fa := &fakeAuth{session: &domain.Session{Token: "t", Username: "ana", Role: "ROLE_USER", IsLoggedIn: true}}
	uc := &AuthUC{Store: st, Auth: fa}

	_, err := uc.Login(ctx, "  ana ", " pw ")
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{Username: "ana", Password: "pw"}, fa.lastCred)

	for k, want := range map[string]string{"token": "t", "username": "ana", "usuario": "ana", "role": "ROLE_USER", "isLoggedIn": "true"} {
		v, ok, _ := st.Get(ctx, k)
		assert.True(t, ok, k)
		assert.Equal(t, want, v, k)
	}

	s, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, s.IsLoggedIn)
	assert.False(t, s.IsAdmin())
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	fa := &fakeAuth{}
	uc := &AuthUC{Store: memory.New(), Auth: fa}
	_, err := uc.Login(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Empty(t, fa.lastCred.Username)
}

func TestRegisterDoesNotOpenSession(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	uc := &AuthUC{Store: st, Auth: &fakeAuth{}}

	require.NoError(t, uc.Register(ctx, "ana", "pw"))
	keys, _ := st.Keys(ctx)
	assert.Empty(t, keys)
}

func TestLogoutKeepsCart(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	uc := &AuthUC{Store: st, Auth: &fakeAuth{session: &domain.Session{Token: "t", Username: "ana", IsLoggedIn: true}}}
	_, _ = uc.Login(ctx, "ana", "pw")
	require.NoError(t, st.Set(ctx, domain.KeyCart, "[]"))

	require.NoError(t, uc.Logout(ctx))
	keys, _ := st.Keys(ctx)
	assert.Equal(t, []string{domain.KeyCart}, keys)

	require.NoError(t, uc.ClearAll(ctx))
	keys, _ = st.Keys(ctx)
	assert.Empty(t, keys)
}

func TestVerifyAdmin(t *testing.T) {
	ctx := context.Background()

	uc := &AuthUC{Store: memory.New(), Auth: &fakeAuth{}}
	_, err := uc.VerifyAdmin(ctx)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)

	user := loggedInAuth(t, "ROLE_USER")
	_, err = user.VerifyAdmin(ctx)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	admin := loggedInAuth(t, domain.RoleAdmin)
	s, err := admin.VerifyAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", s.Username)

	admin.Auth.(*fakeAuth).validErr = domain.ErrSessionExpired
	_, err = admin.VerifyAdmin(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestCurrentFallsBackToUsuarioKey(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	_ = st.Set(ctx, domain.KeyToken, "t")
	_ = st.Set(ctx, domain.KeyUsuario, "legacy")
	uc := &AuthUC{Store: st, Auth: &fakeAuth{}}

	s, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "legacy", s.Username)
	assert.False(t, s.IsLoggedIn)
}
