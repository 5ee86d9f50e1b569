package guard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// unsetEnv clears key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestResolveProcessLocaleIgnoresDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := "CONTRACT_GUARD_DOTENV_MARKER=from_dotenv\nCONTRACT_LOCALE=de\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(dotenv), 0o600))
	t.Chdir(dir)

	for _, key := range []string{"CONTRACT_GUARD_DOTENV_MARKER", "CONTRACT_LOCALE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		unsetEnv(t, key)
	}

	assert.Equal(t, language.English, resolveProcessLocale())

	_, err := RejectIfNull[*int](nil, "p")
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.NotEmpty(t, RejectIfTrue(true, "", KindOf(nil)).Error())

	_, found := os.LookupEnv("CONTRACT_GUARD_DOTENV_MARKER")
	assert.False(t, found, ".env must not be loaded into the environment")
	_, found = os.LookupEnv("CONTRACT_LOCALE")
	assert.False(t, found)
}

func TestResolveProcessLocaleFromEnvironment(t *testing.T) {
	unsetEnv(t, "CONTRACT_LOCALE")
	unsetEnv(t, "LC_ALL")
	t.Setenv("LC_MESSAGES", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	assert.Equal(t, language.German, resolveProcessLocale())
}
