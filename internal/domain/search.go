package domain

import "strings"

// FilterCriteria is the page-local filter state of the specialist listing.
// Empty slices impose no restriction; SpecialistType is single-select on the
// listing page. The composition flow additionally allows TypeAll.
type FilterCriteria struct {
	SelectedCategories         []string            `json:"selected_categories"`
	SelectedServicesByCategory map[string][]string `json:"selected_services_by_category"`
	SelectedCities             []string            `json:"selected_cities"`
	SpecialistType             TypeFilter          `json:"specialist_type"`
	SearchTerm                 string              `json:"search_term"`
}

// TypeFilter is the specialist-type criterion. The listing page always pins
// it to a concrete type; the message-composition page also accepts TypeAll.
type TypeFilter string

const (
	TypeAll              TypeFilter = "all"
	TypeFilterIndividual TypeFilter = TypeFilter(SpecialistTypeIndividual)
	TypeFilterBusiness   TypeFilter = TypeFilter(SpecialistTypeBusiness)
)

func (t TypeFilter) IsValid() bool {
	return t == TypeAll || t == TypeFilterIndividual || t == TypeFilterBusiness
}

func (t TypeFilter) Matches(st SpecialistType) bool {
	return t == TypeAll || string(t) == string(st)
}

// Suggestion is a read-only projection of a roster entry offered while the
// user types a search term, annotated with its current selection state.
type Suggestion struct {
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
	IsSelected bool   `json:"is_selected"`
}

// SearchResult is one filter step of the listing page: the visible subset,
// the suggestions for the current term, and the recipient selection after
// auto-sync.
type SearchResult struct {
	Specialists []Specialist `json:"specialists"`
	Suggestions []Suggestion `json:"suggestions"`
	Selection   []string     `json:"selection"`
}

// RecipientSelection is the working set of recipient email addresses for an
// outbound message. It is distinct from filter-matched visibility: filtering
// decides who is shown, the selection decides who receives the message.
// Insertion order is preserved so recipient lists are stable.
type RecipientSelection struct {
	emails []string
}

func NewRecipientSelection(emails ...string) *RecipientSelection {
	s := &RecipientSelection{}
	for _, e := range emails {
		s.Add(e)
	}
	return s
}

func (s *RecipientSelection) Contains(email string) bool {
	for _, e := range s.emails {
		if e == email {
			return true
		}
	}
	return false
}

func (s *RecipientSelection) Add(email string) {
	if email == "" || s.Contains(email) {
		return
	}
	s.emails = append(s.emails, email)
}

func (s *RecipientSelection) Remove(email string) {
	for i, e := range s.emails {
		if e == email {
			s.emails = append(s.emails[:i], s.emails[i+1:]...)
			return
		}
	}
}

// Toggle flips a single email's membership, independent of filter state.
func (s *RecipientSelection) Toggle(email string) {
	if s.Contains(email) {
		s.Remove(email)
	} else {
		s.Add(email)
	}
}

// SyncWithFiltered replaces the selection wholesale with the filtered set's
// emails, but only while no search term is active. A non-empty search term
// suppresses auto-sync so a user's manual curation during a text search is
// never clobbered by passive filter adjustments.
func (s *RecipientSelection) SyncWithFiltered(filteredEmails []string, searchTerm string) {
	if strings.TrimSpace(searchTerm) != "" {
		return
	}
	if len(filteredEmails) == 0 {
		return
	}
	s.emails = nil
	for _, e := range filteredEmails {
		s.Add(e)
	}
}

// SelectVisible adds every currently visible email without dropping
// selections made under other filters.
func (s *RecipientSelection) SelectVisible(visibleEmails []string) {
	for _, e := range visibleEmails {
		s.Add(e)
	}
}

// DeselectVisible removes exactly the currently visible emails, leaving
// selections outside the current filter view untouched.
func (s *RecipientSelection) DeselectVisible(visibleEmails []string) {
	for _, e := range visibleEmails {
		s.Remove(e)
	}
}

// Emails returns a copy of the selected addresses in insertion order.
func (s *RecipientSelection) Emails() []string {
	out := make([]string, len(s.emails))
	copy(out, s.emails)
	return out
}

func (s *RecipientSelection) Len() int {
	return len(s.emails)
}
