package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalizer(t *testing.T) {
	en, err := NewLocalizer("en", "")
	require.NoError(t, err)
	assert.Equal(t, "en", en.Language())
	assert.Equal(t, "Payment schedule", en.Message(TitleSchedule))

	tr, err := NewLocalizer("TR", "")
	require.NoError(t, err)
	assert.Equal(t, "tr", tr.Language())
	assert.Equal(t, "Ödeme planı", tr.Message(TitleSchedule))
	assert.Equal(t, "En yüksek faiz oranı", tr.Message(enumCode(priorityPrefix, "highest_rate")))

	_, err = NewLocalizer("fr", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no message catalog for language 'fr'")
}

func TestLocalizer_FormatsArguments(t *testing.T) {
	loc, err := NewLocalizer("en", "")
	require.NoError(t, err)

	msg := loc.Message(NoteTruncated, 60, "12.34")
	assert.Equal(t, "The schedule stops after 60 months with 12.34 still owed.", msg)
}

func TestLocalizer_TurkishCountsAndLiteralPercent(t *testing.T) {
	tr, err := NewLocalizer("tr", "")
	require.NoError(t, err)
	assert.Equal(t, "Ödeme planı 60 ay sonra 12.34 borç kalmışken duruyor.", tr.Message(NoteTruncated, 60, "12.34"))
	assert.Equal(t, "201.00 tutarındaki ödeme bakiyeyi 100 ayda kapatmıyor.", tr.Message(NoteTargetNotReached, "201.00", 100))
	assert.Equal(t, "Faiz %", tr.Message("column.annual_rate"))

	en, err := NewLocalizer("en", "")
	require.NoError(t, err)
	assert.Equal(t, "Rate %", en.Message("column.annual_rate"))
}

func TestLocalizer_UnknownCodeFallsBackToCode(t *testing.T) {
	loc, err := NewLocalizer("tr", "")
	require.NoError(t, err)
	assert.Equal(t, "column.unknown", loc.Message("column.unknown"))
}

func TestBuiltinCatalog_LanguagesShareCodes(t *testing.T) {
	for code := range builtinCatalog["en"] {
		_, ok := builtinCatalog["tr"][code]
		assert.True(t, ok, "missing Turkish text for %s", code)
	}
	assert.Len(t, builtinCatalog["tr"], len(builtinCatalog["en"]))
}

func TestNewLocalizer_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	content := `
en:
  title.schedule: "Amortization table"
  label.custom: "Only in English"
TR:
  title.savings: "Kazanç"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	en, err := NewLocalizer("en", path)
	require.NoError(t, err)
	assert.Equal(t, "Amortization table", en.Message(TitleSchedule))
	assert.Equal(t, "Minimum payment", en.Message(TitleMinimum))

	tr, err := NewLocalizer("tr", path)
	require.NoError(t, err)
	assert.Equal(t, "Kazanç", tr.Message(TitleSavings))
	assert.Equal(t, "Only in English", tr.Message("label.custom"))

	// the built-in catalog is left untouched
	assert.Equal(t, "Payment schedule", builtinCatalog["en"][TitleSchedule])
}

func TestNewLocalizer_BadOverrides(t *testing.T) {
	_, err := NewLocalizer("en", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading message catalog")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("en: [not, a, map]"), 0600))
	_, err = NewLocalizer("en", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing message catalog")

	require.NoError(t, os.WriteFile(path, []byte("\"en!\":\n  title.schedule: x\n"), 0600))
	_, err = NewLocalizer("en", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language 'en!'")
}
