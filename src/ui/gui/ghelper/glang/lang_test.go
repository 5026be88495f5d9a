package glang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLangTypeByString(t *testing.T) {
	assert.Equal(t, EN, LangTypeByString("en"))
	assert.Equal(t, RU, LangTypeByString("ru"))
	assert.Equal(t, ZZ, LangTypeByString("ja"))
	assert.Equal(t, "ru", RU.String())
}

func TestDictionariesMatch(t *testing.T) {
	en, err := NewGUILangWorker("assets/lang", "en")
	require.NoError(t, err)
	ru, err := NewGUILangWorker("assets/lang", "ru")
	require.NoError(t, err)

	require.NotEmpty(t, en.dict)
	assert.Len(t, ru.dict, len(en.dict))
	for k := range en.dict {
		_, ok := ru.dict[k]
		assert.True(t, ok, "ru is missing %q", k)
	}
	assert.Equal(t, "Назад", ru.T("button.back"))
	assert.Equal(t, "no.such.key", en.T("no.such.key"))
}

func TestSetLangKeepsDictionaryOnError(t *testing.T) {
	lw, err := NewGUILangWorker("assets/lang", "en")
	require.NoError(t, err)
	assert.ErrorIs(t, lw.SetLang(ZZ), ErrUnsupportedLang)
	assert.Equal(t, EN, lw.GetLang())
	assert.Equal(t, "Back", lw.T("button.back"))

	_, err = NewGUILangWorker("assets/lang", "xx")
	assert.ErrorIs(t, err, ErrUnsupportedLang)
}
