package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Įveskite žinutę", Translate(LanguageLT, "pleaseEnterMessage", nil))
	assert.Equal(t, "Please enter a message", Translate(LanguageEN, "pleaseEnterMessage", nil))
}

func TestTranslateInterpolatesParams(t *testing.T) {
	got := Translate(LanguageEN, "newInquirySubject", map[string]string{"name": "Jonas"})
	assert.Equal(t, "New inquiry from Jonas - InTouch", got)

	got = Translate(LanguageLT, "newInquiryFrom", map[string]string{"name": "Jonas"})
	assert.Equal(t, "Nuo: Jonas", got)
}

func TestTranslateFallsBackToEnglishThenKey(t *testing.T) {
	assert.Equal(t, "Inquiry from InTouch", Translate(Language("de"), "inquiryFromInTouch", nil))
	assert.Equal(t, "missingKey", Translate(LanguageLT, "missingKey", nil))
}

func TestTableUnknownLanguageResolvesToDefault(t *testing.T) {
	table := Table(Language("de"))
	assert.Equal(t, tables[DefaultLanguage], table)
}

func TestBothLanguagesCoverTheSameKeys(t *testing.T) {
	for key := range tables[LanguageLT] {
		_, ok := tables[LanguageEN][key]
		assert.True(t, ok, "key %q missing from EN table", key)
	}
	for key := range tables[LanguageEN] {
		_, ok := tables[LanguageLT][key]
		assert.True(t, ok, "key %q missing from LT table", key)
	}
}
