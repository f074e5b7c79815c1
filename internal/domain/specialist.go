package domain

import (
	"time"
)

type SpecialistType string

const (
	SpecialistTypeIndividual SpecialistType = "individual"
	SpecialistTypeBusiness   SpecialistType = "business"
)

func (t SpecialistType) IsValid() bool {
	return t == SpecialistTypeIndividual || t == SpecialistTypeBusiness
}

// Coverage is the set of cities a specialist serves. A nationwide coverage
// matches any city filter. The empty city list on the wire is read as
// nationwide, which is load-bearing product behavior: profiles without an
// explicit city serve all of Lithuania.
type Coverage struct {
	Cities []string `json:"cities"`
}

func Nationwide() Coverage {
	return Coverage{}
}

func CitiesCoverage(cities []string) Coverage {
	return Coverage{Cities: cities}
}

func (c Coverage) IsNationwide() bool {
	return len(c.Cities) == 0
}

// Includes reports whether the coverage intersects the requested cities.
// An empty request or nationwide coverage always matches.
func (c Coverage) Includes(cities []string) bool {
	if len(cities) == 0 || c.IsNationwide() {
		return true
	}
	for _, want := range cities {
		for _, have := range c.Cities {
			if have == want {
				return true
			}
		}
	}
	return false
}

type SpecialistProfile struct {
	UserID      int64          `json:"user_id"`
	Type        SpecialistType `json:"type"`
	Profession  string         `json:"profession"`
	Categories  []string       `json:"categories"`
	Services    []string       `json:"services"`
	Coverage    Coverage       `json:"coverage"`
	Phone       string         `json:"phone"`
	Description string         `json:"description"`
	HourlyRate  float64        `json:"hourly_rate"`
	Experience  int            `json:"experience"`
	Verified    bool           `json:"verified"`
	PhotoURL    string         `json:"photo_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Specialist is the read model served to listings: the profile joined with
// the owner's identity fields. The join happens on the read path; identity
// is not stored redundantly in the profile.
type Specialist struct {
	SpecialistProfile
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CompanyCode string `json:"company_code,omitempty"`
}

func (s Specialist) DisplayName() string {
	if s.Type == SpecialistTypeBusiness {
		return s.CompanyName
	}
	return s.FirstName + " " + s.LastName
}

const (
	DefaultHourlyRate = 25
	DefaultExperience = 1
)

type CreateProfileDTO struct {
	Type        SpecialistType `json:"type" binding:"required,oneof=individual business"`
	Profession  string         `json:"profession"`
	Categories  []string       `json:"categories" binding:"required,min=1"`
	Services    []string       `json:"services" binding:"required,min=1"`
	Cities      []string       `json:"cities"`
	Phone       string         `json:"phone"`
	Description string         `json:"description"`
}

type UpdateProfileDTO struct {
	Profession  *string   `json:"profession"`
	Categories  []string  `json:"categories"`
	Services    []string  `json:"services"`
	Cities      *[]string `json:"cities"`
	Phone       *string   `json:"phone"`
	Description *string   `json:"description"`
	HourlyRate  *float64  `json:"hourly_rate" binding:"omitempty,min=0"`
	Experience  *int      `json:"experience" binding:"omitempty,min=0"`
}
