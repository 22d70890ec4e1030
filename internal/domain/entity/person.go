package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a person. Candidate matching is binary: the target gender is
// always the opposite of the reference person's gender, and GenderOther is
// never used as a target.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Opposite returns the target gender for candidate matching and whether a
// target exists for this gender.
func (g Gender) Opposite() (Gender, bool) {
	switch g {
	case GenderMale:
		return GenderFemale, true
	case GenderFemale:
		return GenderMale, true
	default:
		return "", false
	}
}

// AccountStatus tracks where a person stands in the agency's pipeline.
type AccountStatus string

const (
	StatusActive        AccountStatus = "active"
	StatusMember        AccountStatus = "member"
	StatusClient        AccountStatus = "client"
	StatusClientExpired AccountStatus = "client_expire"
	StatusInactive      AccountStatus = "inactive"
	StatusSuspended     AccountStatus = "suspended"
)

// ReferenceStatuses are the account statuses eligible to appear in the
// matchmakers' reference listing.
var ReferenceStatuses = []AccountStatus{StatusMember, StatusClient, StatusClientExpired}

// Person is the core identity record. Staff (admin/manager/matchmaker) and
// members share the table; only members carry a Profile.
type Person struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	Gender       Gender
	Status       AccountStatus
	MatchmakerID *uuid.UUID // staff member who validated / is assigned to this person
	AgencyID     *uuid.UUID
	Profile      *Profile // nil for staff and for members who never started one
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the matchmaking-relevant attributes of a member. Attribute
// names follow the legacy French schema so filter keys, columns and scoring
// criteria line up across layers.
type Profile struct {
	PersonID  uuid.UUID
	Completed bool

	FirstName string
	LastName  string
	BirthDate *time.Time

	CountryResidence string
	CityResidence    string
	CountryOrigin    string
	CityOrigin       string

	Religion         string
	EducationLevel   string
	EmploymentStatus string
	Sector           string
	IncomeBracket    string
	MaritalStatus    []string // historically multi-valued
	Housing          string
	Motorized        string

	Height float64 // cm, 0 = unset
	Weight float64 // kg, 0 = unset

	HealthStatus     string   // single etat_sante value
	HealthConditions []string // situation_sante list

	Smoker  string
	Drinker string

	Sport   string
	Hobbies string // comma-separated
	Origin  string

	// Lifestyle and religious stances (relevant to women in the legacy product)
	HijabChoice       string
	Veil              string
	NiqabAcceptance   string
	Polygamy          string
	ForeignMarriage   string
	WorkAfterMarriage string

	HasChildren   *bool
	ChildrenCount *int

	Bio         string
	PicturePath string

	Preferences *SearchPreferences

	UpdatedAt time.Time
}

// HasPreferences reports whether the member stored any search preferences.
func (p *Profile) HasPreferences() bool {
	return p != nil && p.Preferences != nil
}

// SearchPreferences are the stored search criteria of a reference person.
// They seed the default filter set and the scoring windows.
type SearchPreferences struct {
	// Absolute desired age range. Both must be set to be used verbatim.
	AgeMin *int
	AgeMax *int

	// Symmetric ± window around the reference's own age, used by the scorer
	// and as the default filter window when no absolute range is stored.
	AgeWindowOffset *int

	Countries []string
	Cities    []string

	Religion         string
	IncomeMinimum    string
	EducationLevel   string
	EmploymentStatus string
	MaritalStatuses  []string
}
