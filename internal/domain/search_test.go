package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipientSelection_AddKeepsOrderAndDeduplicates(t *testing.T) {
	s := NewRecipientSelection()
	s.Add("a@example.com")
	s.Add("b@example.com")
	s.Add("a@example.com")
	s.Add("")

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, s.Emails())
	assert.Equal(t, 2, s.Len())
}

func TestRecipientSelection_Toggle(t *testing.T) {
	s := NewRecipientSelection("a@example.com")

	s.Toggle("a@example.com")
	assert.False(t, s.Contains("a@example.com"))

	s.Toggle("b@example.com")
	assert.True(t, s.Contains("b@example.com"))
}

func TestRecipientSelection_SyncReplacesWhenTermEmpty(t *testing.T) {
	s := NewRecipientSelection("old@example.com")

	s.SyncWithFiltered([]string{"a@example.com", "b@example.com"}, "")

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, s.Emails())
}

func TestRecipientSelection_SyncSuppressedByActiveSearchTerm(t *testing.T) {
	s := NewRecipientSelection("kept@example.com")

	s.SyncWithFiltered([]string{"a@example.com"}, "santech")
	assert.Equal(t, []string{"kept@example.com"}, s.Emails())

	// Whitespace-only terms do not count as active.
	s.SyncWithFiltered([]string{"a@example.com"}, "   ")
	assert.Equal(t, []string{"a@example.com"}, s.Emails())
}

func TestRecipientSelection_SyncIgnoresEmptyFilteredSet(t *testing.T) {
	s := NewRecipientSelection("kept@example.com")

	s.SyncWithFiltered(nil, "")

	assert.Equal(t, []string{"kept@example.com"}, s.Emails())
}

func TestRecipientSelection_SelectVisibleIsAdditive(t *testing.T) {
	s := NewRecipientSelection("other@example.com")

	s.SelectVisible([]string{"a@example.com", "b@example.com"})

	assert.Equal(t, []string{"other@example.com", "a@example.com", "b@example.com"}, s.Emails())
}

func TestRecipientSelection_DeselectVisibleIsSubtractive(t *testing.T) {
	s := NewRecipientSelection("other@example.com", "a@example.com", "b@example.com")

	s.DeselectVisible([]string{"a@example.com", "b@example.com"})

	assert.Equal(t, []string{"other@example.com"}, s.Emails())
}

func TestRecipientSelection_EmailsReturnsCopy(t *testing.T) {
	s := NewRecipientSelection("a@example.com")

	emails := s.Emails()
	emails[0] = "mutated@example.com"

	assert.Equal(t, []string{"a@example.com"}, s.Emails())
}

func TestTypeFilter_Matches(t *testing.T) {
	assert.True(t, TypeAll.Matches(SpecialistTypeIndividual))
	assert.True(t, TypeAll.Matches(SpecialistTypeBusiness))
	assert.True(t, TypeFilterIndividual.Matches(SpecialistTypeIndividual))
	assert.False(t, TypeFilterIndividual.Matches(SpecialistTypeBusiness))
	assert.False(t, TypeFilterBusiness.Matches(SpecialistTypeIndividual))
}

func TestTypeFilter_IsValid(t *testing.T) {
	assert.True(t, TypeAll.IsValid())
	assert.True(t, TypeFilterIndividual.IsValid())
	assert.True(t, TypeFilterBusiness.IsValid())
	assert.False(t, TypeFilter("").IsValid())
	assert.False(t, TypeFilter("company").IsValid())
}

func TestCoverage_NationwideMatchesAnyCity(t *testing.T) {
	c := Nationwide()

	assert.True(t, c.IsNationwide())
	assert.True(t, c.Includes([]string{"Vilnius"}))
	assert.True(t, c.Includes([]string{"Kaunas", "Utena"}))
	assert.True(t, c.Includes(nil))
}

func TestCoverage_CityListMatching(t *testing.T) {
	c := CitiesCoverage([]string{"Vilnius", "Kaunas"})

	assert.False(t, c.IsNationwide())
	assert.True(t, c.Includes([]string{"Kaunas"}))
	assert.True(t, c.Includes([]string{"Utena", "Vilnius"}))
	assert.False(t, c.Includes([]string{"Utena"}))
	assert.True(t, c.Includes(nil), "empty city filter imposes no restriction")
}

func TestSpecialist_DisplayName(t *testing.T) {
	individual := Specialist{
		SpecialistProfile: SpecialistProfile{Type: SpecialistTypeIndividual},
		FirstName:         "Jonas",
		LastName:          "Petrauskas",
	}
	assert.Equal(t, "Jonas Petrauskas", individual.DisplayName())

	business := Specialist{
		SpecialistProfile: SpecialistProfile{Type: SpecialistTypeBusiness},
		CompanyName:       "UAB Statyba",
	}
	assert.Equal(t, "UAB Statyba", business.DisplayName())
}
