package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocales(t *testing.T) {
	assert := assert.New(t)

	table := map[string][]string{
		"fr-FR":             {"fr-FR", "en-US"},
		"fr-FR:de-DE":       {"fr-FR", "de-DE", "en-US"},
		"en-US:fr-FR":       {"en-US", "fr-FR"},
		"::ja-JP:":          {"ja-JP", "en-US"},
		"de-CH: :en-GB":     {"de-CH", "en-GB", "en-US"},
		"en-GB:en-US:es-ES": {"en-GB", "en-US", "es-ES"},
	}

	for env, expected := range table {
		t.Setenv(ENV_LANG, env)
		assert.Equal(expected, locales(), env)
	}
}

func TestWithFallback(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{FALLBACK}, withFallback(nil))

	tags := []string{"", "pt-BR"}
	assert.Equal([]string{"pt-BR", FALLBACK}, withFallback(tags))
	assert.Equal([]string{"", "pt-BR"}, tags)
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLocales()

	table := map[string]string{
		"plain %v":          "plain x",
		"watch '%v' failed": "watch 'x' failed",
		"%v: no such thing": "x: no such thing",
	}

	for _, tags := range [][]string{nil, {"fr-FR"}, {"en-US"}} {
		SetLocales(tags...)
		for key, expected := range table {
			assert.Equal(expected, From(key, "x"), tags)
		}
		assert.Equal("no arguments", From("no arguments"), tags)
	}
}
