// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mawadda/internal/domain/entity"
	"mawadda/internal/domain/repository"
	"mawadda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
// It returns the repository as a domain.PersonRepository interface, adhering to dependency inversion.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// FindByID retrieves a single person by their unique ID, profile included.
func (repo *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	var personM model.PersonModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("persons.id = ?", id).
		First(&personM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find person by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return personM.ToDomain(), nil
}

// FindByEmail retrieves a single person by their email address.
func (repo *personRepository) FindByEmail(ctx context.Context, email string) (*entity.Person, error) {
	var personM model.PersonModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("persons.email = ?", email).
		First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by email")
	}

	return personM.ToDomain(), nil
}

// FindCandidates returns every active, completed-profile member matching the
// candidate query. The filter predicate is translated to SQL so the filtering
// happens in the database, not in application memory.
func (repo *personRepository) FindCandidates(ctx context.Context, query repository.CandidateQuery) ([]*entity.Person, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Joins("JOIN profiles ON profiles.person_id = persons.id").
		Where("persons.role = ?", string(entity.RoleUser)).
		Where("persons.id <> ?", query.ExcludeID).
		Where("persons.genre = ?", string(query.Gender)).
		Where("persons.statut = ?", string(entity.StatusActive)).
		Where("profiles.is_completed = ?", true)

	if sql, args := buildCondition(query.Predicate); sql != "" {
		tx = tx.Where(sql, args...)
	}

	var personsM []*model.PersonModel
	if err := tx.Preload("Profile").Find(&personsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query candidates")
	}

	return toDomainList(personsM), nil
}

// FindReferences lists the members eligible as reference persons within the
// given staff scope, newest first.
func (repo *personRepository) FindReferences(ctx context.Context, scope repository.ReferenceScope) ([]*entity.Person, error) {
	statuses := make([]string, 0, len(entity.ReferenceStatuses))
	for _, status := range entity.ReferenceStatuses {
		statuses = append(statuses, string(status))
	}

	tx := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Joins("JOIN profiles ON profiles.person_id = persons.id").
		Where("persons.role = ?", string(entity.RoleUser)).
		Where("persons.statut IN ?", statuses).
		Where("profiles.is_completed = ?", true)

	switch {
	case scope.MatchmakerID != nil:
		tx = tx.Where("persons.matchmaker_id = ?", *scope.MatchmakerID)
	case scope.AgencyID != nil:
		// The agency pool covers its own members and those handled by the
		// agency's staff.
		tx = tx.Where(
			"persons.agence_id = ? OR persons.matchmaker_id IN (?)",
			*scope.AgencyID,
			repo.db.Model(&model.PersonModel{}).
				Select("id").
				Where("agence_id = ? AND role <> ?", *scope.AgencyID, string(entity.RoleUser)),
		)
	}

	var personsM []*model.PersonModel
	err := tx.Preload("Profile").
		Order("persons.created_at DESC").
		Find(&personsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list references")
	}

	return toDomainList(personsM), nil
}

func toDomainList(personsM []*model.PersonModel) []*entity.Person {
	persons := make([]*entity.Person, 0, len(personsM))
	for _, personM := range personsM {
		persons = append(persons, personM.ToDomain())
	}

	return persons
}
