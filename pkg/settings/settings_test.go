package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/socialauth/googleauth/pkg/settings"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		s := settings.Settings{ClientID: "id", ClientSecret: "secret"}
		require.NoError(t, s.Validate())
	})

	t.Run("missing client ID", func(t *testing.T) {
		t.Parallel()
		s := settings.Settings{ClientSecret: "secret"}
		require.ErrorIs(t, s.Validate(), settings.ErrMissingClientID)
	})

	t.Run("missing client secret", func(t *testing.T) {
		t.Parallel()
		s := settings.Settings{ClientID: "id"}
		require.ErrorIs(t, s.Validate(), settings.ErrMissingClientSecret)
	})
}

func TestParseScopes(t *testing.T) {
	t.Parallel()

	t.Run("comma separated", func(t *testing.T) {
		t.Parallel()
		got := settings.ParseScopes("a,b,c")
		require.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("newline separated", func(t *testing.T) {
		t.Parallel()
		got := settings.ParseScopes("a\nb\nc")
		require.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("mixed separators and whitespace", func(t *testing.T) {
		t.Parallel()
		got := settings.ParseScopes(" a ,\n b ,c\r\n")
		require.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, settings.ParseScopes(""))
		require.Empty(t, settings.ParseScopes(" ,\n, "))
	})

	t.Run("single scope", func(t *testing.T) {
		t.Parallel()
		got := settings.ParseScopes("https://www.googleapis.com/auth/drive")
		require.Equal(t, []string{"https://www.googleapis.com/auth/drive"}, got)
	})
}

func TestParseEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("two endpoints keep order", func(t *testing.T) {
		t.Parallel()
		got, err := settings.ParseEndpoints("/v1/a|first\n/v1/b|second")
		require.NoError(t, err)
		require.Equal(t, []settings.Endpoint{
			{Path: "/v1/a", Name: "first"},
			{Path: "/v1/b", Name: "second"},
		}, got)
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		t.Parallel()
		got, err := settings.ParseEndpoints("\n/v1/a|first\n\n")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		_, err := settings.ParseEndpoints("/v1/a")
		require.ErrorIs(t, err, settings.ErrInvalidEndpoint)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := settings.ParseEndpoints("|first")
		require.ErrorIs(t, err, settings.ErrInvalidEndpoint)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		got, err := settings.ParseEndpoints("")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestStaticProvider(t *testing.T) {
	t.Parallel()

	want := settings.Settings{ClientID: "id", ClientSecret: "secret"}
	p := settings.NewStatic(want)

	got, err := p.Settings(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFileProvider(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "settings.yaml")
		content := `client_id: test-id
client_secret: test-secret
scopes: "https://www.googleapis.com/auth/drive,https://www.googleapis.com/auth/calendar"
restricted_domain: example.com
endpoints: |
  /v1/a|first
  /v1/b|second
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		got, err := settings.NewFile(path).Settings(context.Background())
		require.NoError(t, err)
		require.Equal(t, "test-id", got.ClientID)
		require.Equal(t, "test-secret", got.ClientSecret)
		require.Equal(t, "example.com", got.RestrictedDomain)
		require.Equal(t, []string{
			"https://www.googleapis.com/auth/drive",
			"https://www.googleapis.com/auth/calendar",
		}, got.Scopes)
		require.Equal(t, []settings.Endpoint{
			{Path: "/v1/a", Name: "first"},
			{Path: "/v1/b", Name: "second"},
		}, got.Endpoints)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := settings.NewFile("/nonexistent/settings.yaml").Settings(context.Background())
		require.ErrorIs(t, err, settings.ErrLoadFailed)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("client_id: [broken"), 0o600))

		_, err := settings.NewFile(path).Settings(context.Background())
		require.ErrorIs(t, err, settings.ErrLoadFailed)
	})
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("GOOGLE_AUTH_CLIENT_ID", "env-id")
	t.Setenv("GOOGLE_AUTH_CLIENT_SECRET", "env-secret")
	t.Setenv("GOOGLE_AUTH_SCOPES", "a,b")
	t.Setenv("GOOGLE_AUTH_ENDPOINTS", "/v1/a|first")

	got, err := settings.NewEnv().Settings(context.Background())
	require.NoError(t, err)
	require.Equal(t, "env-id", got.ClientID)
	require.Equal(t, "env-secret", got.ClientSecret)
	require.Equal(t, []string{"a", "b"}, got.Scopes)
	require.Equal(t, []settings.Endpoint{{Path: "/v1/a", Name: "first"}}, got.Endpoints)
}
