package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/repository"
)

const (
	categoryConstruction = "Statyba, remontas, medžiagos, NT"
	categoryServices     = "Paslaugos"
	servicePlumbing      = "Santechnikos darbai"
	serviceElectrical    = "Elektros darbai"
	serviceCleaning      = "Valymo paslaugos"
)

// newSearchFixture seeds four specialists in roster order: Jonas (plumber,
// Vilnius), Petras (electrician, Kaunas), UAB Statyba (business, nationwide)
// and Ona (cleaner, Vilnius).
func newSearchFixture(t *testing.T) (*SearchServiceImpl, *SpecialistServiceImpl) {
	t.Helper()

	repos := repository.NewMemoryRepositories()
	logger := zap.NewNop()
	specialists := NewSpecialistService(repos.Specialist, repos.User, nil, nil, logger)

	seed := []struct {
		user    domain.CreateUserDTO
		profile domain.CreateProfileDTO
	}{
		{
			user: domain.CreateUserDTO{
				Email: "jonas@example.com", Role: domain.UserRoleSpecialist,
				FirstName: "Jonas", LastName: "Petrauskas",
			},
			profile: domain.CreateProfileDTO{
				Type:       domain.SpecialistTypeIndividual,
				Profession: "Santechnikas",
				Categories: []string{categoryConstruction},
				Services:   []string{servicePlumbing},
				Cities:     []string{"Vilnius"},
			},
		},
		{
			user: domain.CreateUserDTO{
				Email: "petras@example.com", Role: domain.UserRoleSpecialist,
				FirstName: "Petras", LastName: "Kazlauskas",
			},
			profile: domain.CreateProfileDTO{
				Type:       domain.SpecialistTypeIndividual,
				Profession: "Elektrikas",
				Categories: []string{categoryConstruction},
				Services:   []string{serviceElectrical},
				Cities:     []string{"Kaunas"},
			},
		},
		{
			user: domain.CreateUserDTO{
				Email: "info@uabstatyba.lt", Role: domain.UserRoleSpecialist,
				CompanyName: "UAB Statyba", CompanyCode: "1234567",
			},
			profile: domain.CreateProfileDTO{
				Type:       domain.SpecialistTypeBusiness,
				Profession: "Statybos darbai",
				Categories: []string{categoryConstruction},
				Services:   []string{servicePlumbing},
			},
		},
		{
			user: domain.CreateUserDTO{
				Email: "ona@example.com", Role: domain.UserRoleSpecialist,
				FirstName: "Ona", LastName: "Jonaitienė",
			},
			profile: domain.CreateProfileDTO{
				Type:       domain.SpecialistTypeIndividual,
				Profession: "Valytoja",
				Categories: []string{categoryServices},
				Services:   []string{serviceCleaning},
				Cities:     []string{"Vilnius"},
			},
		},
	}

	ctx := context.Background()
	for _, s := range seed {
		id, err := repos.User.Create(ctx, s.user, "hash")
		require.NoError(t, err)
		_, err = specialists.CreateProfile(ctx, id, s.profile)
		require.NoError(t, err)
	}

	return NewSearchService(specialists, logger), specialists
}

func emails(specialists []domain.Specialist) []string {
	out := make([]string, 0, len(specialists))
	for _, sp := range specialists {
		out = append(out, sp.Email)
	}
	return out
}

func TestSearch_NoCriteriaListsAllOfTheType(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SpecialistType: domain.TypeFilterIndividual,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"jonas@example.com", "petras@example.com", "ona@example.com"}, emails(result.Specialists))
	assert.Equal(t, emails(result.Specialists), result.Selection, "visible set is auto-selected when no term is active")
}

func TestSearch_InvalidTypeDefaultsToIndividual(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SpecialistType: domain.TypeFilter("whatever"),
	}, nil)
	require.NoError(t, err)

	assert.NotContains(t, emails(result.Specialists), "info@uabstatyba.lt")
}

func TestSearch_CategoryIsTheControllingGate(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SelectedCategories: []string{categoryConstruction},
		SpecialistType:     domain.TypeAll,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"jonas@example.com", "petras@example.com", "info@uabstatyba.lt"}, emails(result.Specialists))
}

func TestSearch_ServiceClauseNarrowsWithinMatchingCategories(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SelectedCategories: []string{categoryConstruction},
		SelectedServicesByCategory: map[string][]string{
			categoryConstruction: {servicePlumbing},
		},
		SpecialistType: domain.TypeAll,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"jonas@example.com", "info@uabstatyba.lt"}, emails(result.Specialists))
}

func TestSearch_ServiceSelectionOfOtherCategoryDoesNotConstrain(t *testing.T) {
	search, _ := newSearchFixture(t)

	// Services are selected only under Paslaugos; construction specialists
	// match through the unconstrained construction category.
	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SelectedCategories: []string{categoryConstruction, categoryServices},
		SelectedServicesByCategory: map[string][]string{
			categoryServices: {serviceCleaning},
		},
		SpecialistType: domain.TypeAll,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"jonas@example.com", "petras@example.com", "info@uabstatyba.lt", "ona@example.com"}, emails(result.Specialists))
}

func TestSearch_CityFilterAndNationwideWildcard(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SelectedCities: []string{"Vilnius"},
		SpecialistType: domain.TypeAll,
	}, nil)
	require.NoError(t, err)

	// UAB Statyba has no cities and therefore covers all of Lithuania.
	assert.Equal(t, []string{"jonas@example.com", "info@uabstatyba.lt", "ona@example.com"}, emails(result.Specialists))
}

func TestSearch_TypeFilter(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SpecialistType: domain.TypeFilterBusiness,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"info@uabstatyba.lt"}, emails(result.Specialists))

	result, err = search.Search(context.Background(), domain.FilterCriteria{
		SpecialistType: domain.TypeAll,
	}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Specialists, 4)
}

func TestSearch_TermMatchesNameEmailAndProfession(t *testing.T) {
	search, _ := newSearchFixture(t)

	cases := []struct {
		term string
		want []string
	}{
		{"jonas", []string{"jonas@example.com"}},
		{"PETRA", []string{"jonas@example.com", "petras@example.com"}}, // Petrauskas and Petras
		{"uabstatyba", []string{"info@uabstatyba.lt"}},
		{"elektrik", []string{"petras@example.com"}},
	}

	for _, tc := range cases {
		result, err := search.Search(context.Background(), domain.FilterCriteria{
			SearchTerm:     tc.term,
			SpecialistType: domain.TypeAll,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, emails(result.Specialists), "term %q", tc.term)
	}
}

func TestSearch_ClausesCombineWithAND(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SearchTerm:         "santechnik",
		SelectedCategories: []string{categoryConstruction},
		SelectedCities:     []string{"Kaunas"},
		SpecialistType:     domain.TypeAll,
	}, nil)
	require.NoError(t, err)

	// Jonas matches term and category but serves only Vilnius.
	assert.Empty(t, result.Specialists)
}

func TestSearch_ActiveTermPreservesPriorSelection(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SearchTerm:     "jonas",
		SpecialistType: domain.TypeAll,
	}, []string{"petras@example.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"jonas@example.com"}, emails(result.Specialists))
	assert.Equal(t, []string{"petras@example.com"}, result.Selection,
		"manual curation survives while a term is active")
}

func TestSearch_EmptyTermResyncsSelectionToVisible(t *testing.T) {
	search, _ := newSearchFixture(t)

	result, err := search.Search(context.Background(), domain.FilterCriteria{
		SelectedCities: []string{"Vilnius"},
		SpecialistType: domain.TypeFilterIndividual,
	}, []string{"petras@example.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"jonas@example.com", "ona@example.com"}, result.Selection)
}

func TestSuggest_RequiresTwoCharacters(t *testing.T) {
	search, _ := newSearchFixture(t)

	suggestions, err := search.Suggest(context.Background(), "j", nil)
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	suggestions, err = search.Suggest(context.Background(), "jo", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, suggestions)
}

func TestSuggest_IgnoresOtherFiltersAndAnnotatesSelection(t *testing.T) {
	search, _ := newSearchFixture(t)

	suggestions, err := search.Suggest(context.Background(), "example.com", []string{"ona@example.com"})
	require.NoError(t, err)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "Jonas Petrauskas", suggestions[0].Name)
	assert.False(t, suggestions[0].IsSelected)
	assert.Equal(t, "ona@example.com", suggestions[2].Email)
	assert.True(t, suggestions[2].IsSelected)
}

func TestSuggestSpecialists_CapsAtFiveInRosterOrder(t *testing.T) {
	var roster []domain.Specialist
	for i := 0; i < 8; i++ {
		roster = append(roster, domain.Specialist{
			SpecialistProfile: domain.SpecialistProfile{
				UserID:     int64(i + 1),
				Type:       domain.SpecialistTypeIndividual,
				Profession: "Santechnikas",
			},
			Email:     fmt.Sprintf("user%d@example.com", i+1),
			FirstName: "Vardas",
			LastName:  "Pavardė",
		})
	}

	suggestions := SuggestSpecialists(roster, "santechnik", domain.NewRecipientSelection())

	require.Len(t, suggestions, 5)
	for i, s := range suggestions {
		assert.Equal(t, int64(i+1), s.UserID)
	}
}

func TestFilterSpecialists_IsDeterministic(t *testing.T) {
	_, specialists := newSearchFixture(t)

	roster, err := specialists.GetAll(context.Background())
	require.NoError(t, err)

	criteria := domain.FilterCriteria{
		SelectedCategories: []string{categoryConstruction},
		SpecialistType:     domain.TypeAll,
	}

	first := FilterSpecialists(roster, criteria)
	second := FilterSpecialists(roster, criteria)
	assert.Equal(t, emails(first), emails(second))
}

// The full listing-page walkthrough: filter, auto-select, narrow by term,
// toggle, compose.
func TestSearch_EndToEndContactFlow(t *testing.T) {
	search, _ := newSearchFixture(t)
	messages := NewMessageService(nil, zap.NewNop())
	ctx := context.Background()

	// Step 1: the customer filters construction specialists in Vilnius.
	step1, err := search.Search(ctx, domain.FilterCriteria{
		SelectedCategories: []string{categoryConstruction},
		SelectedCities:     []string{"Vilnius"},
		SpecialistType:     domain.TypeAll,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"jonas@example.com", "info@uabstatyba.lt"}, step1.Selection)

	// Step 2: a search term narrows the view without touching the selection.
	step2, err := search.Search(ctx, domain.FilterCriteria{
		SearchTerm:         "Jonas",
		SelectedCategories: []string{categoryConstruction},
		SelectedCities:     []string{"Vilnius"},
		SpecialistType:     domain.TypeAll,
	}, step1.Selection)
	require.NoError(t, err)
	assert.Equal(t, []string{"jonas@example.com"}, emails(step2.Specialists))
	assert.Equal(t, step1.Selection, step2.Selection)

	// Step 3: the customer drops the company from the recipients.
	selection := domain.NewRecipientSelection(step2.Selection...)
	selection.Toggle("info@uabstatyba.lt")
	require.Equal(t, []string{"jonas@example.com"}, selection.Emails())

	// Step 4: compose hands off to the mail client.
	result, err := messages.Compose(domain.MessageDraft{
		Recipients: selection.Emails(),
		Subject:    "Užklausa iš InTouch",
		Body:       "Laba diena, reikia santechniko.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecipientCount)
	assert.Contains(t, result.MailtoURI, "mailto:jonas%40example.com?subject=")
}
