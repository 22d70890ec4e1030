// Package model contains the GORM persistence models. Column names follow
// the legacy French schema the agency's data was migrated from.
package model

import (
	"strings"
	"time"

	"mawadda/internal/domain/entity"

	"github.com/google/uuid"
)

// PersonModel maps the persons table.
type PersonModel struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Email        string     `gorm:"column:email;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash"`
	Role         string     `gorm:"column:role;index"`
	Gender       string     `gorm:"column:genre"`
	Status       string     `gorm:"column:statut;index"`
	MatchmakerID *uuid.UUID `gorm:"column:matchmaker_id;type:uuid;index"`
	AgencyID     *uuid.UUID `gorm:"column:agence_id;type:uuid;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`

	Profile *ProfileModel `gorm:"foreignKey:PersonID;references:ID"`
}

// TableName overrides the default GORM table name.
func (PersonModel) TableName() string {
	return "persons"
}

// ProfileModel maps the profiles table. The multi-valued columns
// (etat_matrimonial, situation_sante) are stored comma-separated, as the
// legacy system left them.
type ProfileModel struct {
	PersonID  uuid.UUID `gorm:"column:person_id;type:uuid;primaryKey"`
	Completed bool      `gorm:"column:is_completed;index"`

	FirstName string     `gorm:"column:prenom"`
	LastName  string     `gorm:"column:nom"`
	BirthDate *time.Time `gorm:"column:date_naissance"`

	CountryResidence string `gorm:"column:pays_residence"`
	CityResidence    string `gorm:"column:ville_residence"`
	CountryOrigin    string `gorm:"column:pays_origine"`
	CityOrigin       string `gorm:"column:ville_origine"`

	Religion         string `gorm:"column:religion"`
	EducationLevel   string `gorm:"column:niveau_etudes"`
	EmploymentStatus string `gorm:"column:situation_professionnelle"`
	Sector           string `gorm:"column:secteur"`
	IncomeBracket    string `gorm:"column:tranche_revenu"`
	MaritalStatus    string `gorm:"column:etat_matrimonial"`
	Housing          string `gorm:"column:logement"`
	Motorized        string `gorm:"column:motorise"`

	Height float64 `gorm:"column:taille"`
	Weight float64 `gorm:"column:poids"`

	HealthStatus     string `gorm:"column:etat_sante"`
	HealthConditions string `gorm:"column:situation_sante"`

	Smoker  string `gorm:"column:fumeur"`
	Drinker string `gorm:"column:buveur"`

	Sport   string `gorm:"column:sport"`
	Hobbies string `gorm:"column:loisirs"`
	Origin  string `gorm:"column:origine"`

	HijabChoice       string `gorm:"column:hijab_choice"`
	Veil              string `gorm:"column:veil"`
	NiqabAcceptance   string `gorm:"column:niqab_acceptance"`
	Polygamy          string `gorm:"column:polygamy"`
	ForeignMarriage   string `gorm:"column:foreign_marriage"`
	WorkAfterMarriage string `gorm:"column:work_after_marriage"`

	HasChildren   *bool `gorm:"column:has_children"`
	ChildrenCount *int  `gorm:"column:children_count"`

	Bio         string `gorm:"column:bio"`
	PicturePath string `gorm:"column:photo_path"`

	// Stored search preferences of the member.
	PrefAgeMin           *int   `gorm:"column:pref_age_min"`
	PrefAgeMax           *int   `gorm:"column:pref_age_max"`
	PrefAgeWindowOffset  *int   `gorm:"column:pref_age_offset"`
	PrefCountries        string `gorm:"column:pref_pays"`
	PrefCities           string `gorm:"column:pref_villes"`
	PrefReligion         string `gorm:"column:pref_religion"`
	PrefIncomeMinimum    string `gorm:"column:pref_revenu_minimum"`
	PrefEducationLevel   string `gorm:"column:pref_niveau_etudes"`
	PrefEmploymentStatus string `gorm:"column:pref_situation_professionnelle"`
	PrefMaritalStatuses  string `gorm:"column:pref_etat_matrimonial"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *PersonModel) ToDomain() *entity.Person {
	if m == nil {
		return nil
	}

	return &entity.Person{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Gender:       entity.Gender(m.Gender),
		Status:       entity.AccountStatus(m.Status),
		MatchmakerID: m.MatchmakerID,
		AgencyID:     m.AgencyID,
		Profile:      m.Profile.ToDomain(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDomain maps the profile model to a domain Profile, splitting the
// comma-separated legacy columns into lists.
func (m *ProfileModel) ToDomain() *entity.Profile {
	if m == nil {
		return nil
	}

	profile := &entity.Profile{
		PersonID:  m.PersonID,
		Completed: m.Completed,

		FirstName: m.FirstName,
		LastName:  m.LastName,
		BirthDate: m.BirthDate,

		CountryResidence: m.CountryResidence,
		CityResidence:    m.CityResidence,
		CountryOrigin:    m.CountryOrigin,
		CityOrigin:       m.CityOrigin,

		Religion:         m.Religion,
		EducationLevel:   m.EducationLevel,
		EmploymentStatus: m.EmploymentStatus,
		Sector:           m.Sector,
		IncomeBracket:    m.IncomeBracket,
		MaritalStatus:    splitList(m.MaritalStatus),
		Housing:          m.Housing,
		Motorized:        m.Motorized,

		Height: m.Height,
		Weight: m.Weight,

		HealthStatus:     m.HealthStatus,
		HealthConditions: splitList(m.HealthConditions),

		Smoker:  m.Smoker,
		Drinker: m.Drinker,

		Sport:   m.Sport,
		Hobbies: m.Hobbies,
		Origin:  m.Origin,

		HijabChoice:       m.HijabChoice,
		Veil:              m.Veil,
		NiqabAcceptance:   m.NiqabAcceptance,
		Polygamy:          m.Polygamy,
		ForeignMarriage:   m.ForeignMarriage,
		WorkAfterMarriage: m.WorkAfterMarriage,

		HasChildren:   m.HasChildren,
		ChildrenCount: m.ChildrenCount,

		Bio:         m.Bio,
		PicturePath: m.PicturePath,

		UpdatedAt: m.UpdatedAt,
	}

	if prefs := m.preferences(); prefs != nil {
		profile.Preferences = prefs
	}

	return profile
}

// preferences collects the pref_* columns into a SearchPreferences, or nil
// when the member stored none.
func (m *ProfileModel) preferences() *entity.SearchPreferences {
	prefs := &entity.SearchPreferences{
		AgeMin:           m.PrefAgeMin,
		AgeMax:           m.PrefAgeMax,
		AgeWindowOffset:  m.PrefAgeWindowOffset,
		Countries:        splitList(m.PrefCountries),
		Cities:           splitList(m.PrefCities),
		Religion:         m.PrefReligion,
		IncomeMinimum:    m.PrefIncomeMinimum,
		EducationLevel:   m.PrefEducationLevel,
		EmploymentStatus: m.PrefEmploymentStatus,
		MaritalStatuses:  splitList(m.PrefMaritalStatuses),
	}

	if prefs.AgeMin == nil && prefs.AgeMax == nil && prefs.AgeWindowOffset == nil &&
		len(prefs.Countries) == 0 && len(prefs.Cities) == 0 &&
		prefs.Religion == "" && prefs.IncomeMinimum == "" &&
		prefs.EducationLevel == "" && prefs.EmploymentStatus == "" &&
		len(prefs.MaritalStatuses) == 0 {
		return nil
	}

	return prefs
}

func splitList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}

	items := make([]string, 0, 2)
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}
