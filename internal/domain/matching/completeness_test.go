package matching

import (
	"testing"
	"time"

	"mawadda/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCompleteness_Empty(t *testing.T) {
	assert.Zero(t, Completeness(nil))
	assert.Zero(t, Completeness(&entity.Profile{}))
}

func TestCompleteness_Full(t *testing.T) {
	birth := time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC)
	yes := true
	profile := &entity.Profile{
		FirstName:        "Sara",
		LastName:         "Benali",
		BirthDate:        &birth,
		EducationLevel:   "Licence",
		EmploymentStatus: "Salarié",
		Sector:           "Santé",
		IncomeBracket:    "2500-5000",
		Religion:         "Islam",
		MaritalStatus:    []string{"célibataire"},
		Housing:          "locataire",
		Height:           165,
		Weight:           60,
		HealthStatus:     "bonne",
		Smoker:           "non",
		Drinker:          "non",
		Sport:            "course",
		Motorized:        "oui",
		Hobbies:          "lecture",
		Origin:           "maghrébine",
		CountryResidence: "Maroc",
		CityResidence:    "Casablanca",
		CountryOrigin:    "Maroc",
		CityOrigin:       "Rabat",
		Bio:              "Bonjour",
		PicturePath:      "/photos/sara.jpg",
		HasChildren:      &yes,
	}

	assert.Equal(t, 100, Completeness(profile))
}

func TestCompleteness_NamePartsCountSeparately(t *testing.T) {
	onlyFirst := &entity.Profile{FirstName: "Sara"}
	both := &entity.Profile{FirstName: "Sara", LastName: "Benali"}

	assert.Equal(t, 1*100/23, Completeness(onlyFirst))
	assert.Equal(t, 2*100/23, Completeness(both))
}

func TestCompleteness_LocationsNeedCityAndCountry(t *testing.T) {
	countryOnly := &entity.Profile{CountryOrigin: "Maroc"}
	full := &entity.Profile{CountryOrigin: "Maroc", CityOrigin: "Rabat"}

	assert.Zero(t, Completeness(countryOnly))
	assert.Equal(t, 1*100/23, Completeness(full))
}

func TestCompleteness_Partial(t *testing.T) {
	profile := &entity.Profile{
		Religion:       "Islam",
		EducationLevel: "Master",
	}

	// 2 of 23 fields, floored percentage
	assert.Equal(t, 2*100/23, Completeness(profile))
}
