package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"intouch/internal/domain"
)

const maxSuggestions = 5

type SearchServiceImpl struct {
	specialists SpecialistService
	logger      *zap.Logger
}

func NewSearchService(specialists SpecialistService, logger *zap.Logger) *SearchServiceImpl {
	return &SearchServiceImpl{
		specialists: specialists,
		logger:      logger,
	}
}

func (s *SearchServiceImpl) Search(ctx context.Context, criteria domain.FilterCriteria, selected []string) (*domain.SearchResult, error) {
	if !criteria.SpecialistType.IsValid() {
		criteria.SpecialistType = domain.TypeFilterIndividual
	}

	roster, err := s.specialists.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load roster for search", zap.Error(err))
		return nil, err
	}

	filtered := FilterSpecialists(roster, criteria)

	selection := domain.NewRecipientSelection(selected...)
	selection.SyncWithFiltered(emailsOf(filtered), criteria.SearchTerm)

	return &domain.SearchResult{
		Specialists: filtered,
		Suggestions: SuggestSpecialists(roster, criteria.SearchTerm, selection),
		Selection:   selection.Emails(),
	}, nil
}

func (s *SearchServiceImpl) Suggest(ctx context.Context, term string, selected []string) ([]domain.Suggestion, error) {
	roster, err := s.specialists.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load roster for suggestions", zap.Error(err))
		return nil, err
	}

	return SuggestSpecialists(roster, term, domain.NewRecipientSelection(selected...)), nil
}

// FilterSpecialists returns the subset of the roster matching every clause
// of the criteria, in roster order. No ranking is applied: identical inputs
// yield identical, order-stable output.
func FilterSpecialists(roster []domain.Specialist, criteria domain.FilterCriteria) []domain.Specialist {
	var filtered []domain.Specialist
	for _, sp := range roster {
		if matches(sp, criteria) {
			filtered = append(filtered, sp)
		}
	}
	return filtered
}

func matches(sp domain.Specialist, criteria domain.FilterCriteria) bool {
	if term := strings.TrimSpace(criteria.SearchTerm); term != "" && !matchesTerm(sp, term) {
		return false
	}

	// The category clause is the controlling gate: a specialist whose
	// categories do not intersect the selection is excluded regardless of
	// services.
	if len(criteria.SelectedCategories) > 0 && !intersects(sp.Categories, criteria.SelectedCategories) {
		return false
	}

	if !criteria.SpecialistType.Matches(sp.Type) {
		return false
	}

	// Nationwide coverage matches any requested city.
	if !sp.Coverage.Includes(criteria.SelectedCities) {
		return false
	}

	return matchesServices(sp, criteria)
}

// matchesTerm is the shared search clause: case-insensitive substring match
// against display name, email or profession.
func matchesTerm(sp domain.Specialist, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(sp.DisplayName()), term) ||
		strings.Contains(strings.ToLower(sp.Email), term) ||
		strings.Contains(strings.ToLower(sp.Profession), term)
}

// matchesServices narrows within the already-matching categories: it only
// constrains when at least one selected category has selected services, and
// only the services of the specialist's matching categories are relevant.
func matchesServices(sp domain.Specialist, criteria domain.FilterCriteria) bool {
	if len(criteria.SelectedCategories) == 0 {
		return true
	}

	var relevant []string
	for _, cat := range criteria.SelectedCategories {
		if !contains(sp.Categories, cat) {
			continue
		}
		relevant = append(relevant, criteria.SelectedServicesByCategory[cat]...)
	}
	if len(relevant) == 0 {
		return true
	}

	return intersects(sp.Services, relevant)
}

// SuggestSpecialists returns up to five roster entries matching the term,
// in roster order, annotated with their selection state. Suggestions ignore
// the other filter criteria and require at least two characters.
func SuggestSpecialists(roster []domain.Specialist, term string, selection *domain.RecipientSelection) []domain.Suggestion {
	if len([]rune(term)) < 2 {
		return nil
	}

	var suggestions []domain.Suggestion
	for _, sp := range roster {
		if !matchesTerm(sp, term) {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			UserID:     sp.UserID,
			Name:       sp.DisplayName(),
			Email:      sp.Email,
			Profession: sp.Profession,
			IsSelected: selection.Contains(sp.Email),
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

func emailsOf(specialists []domain.Specialist) []string {
	emails := make([]string, 0, len(specialists))
	for _, sp := range specialists {
		if sp.Email != "" {
			emails = append(emails, sp.Email)
		}
	}
	return emails
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
