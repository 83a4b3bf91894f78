// Package character exposes the character operations the front ends call:
// CRUD over the repository plus one method per sheet mutation. Mutations
// load the stored record, apply the domain operation, persist, and return
// the updated snapshot.
package character

import (
	"context"
	"strings"

	"github.com/jkode-CMU/dndbeyond/internal/dice"
	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/characters"
	"github.com/jkode-CMU/dndbeyond/internal/savequeue"
	"github.com/jkode-CMU/dndbeyond/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface
type Service interface {
	// Create persists a new character, assigning an id when none is set
	Create(ctx context.Context, char *character.Character) (*character.Character, error)

	// Get retrieves a character by ID
	Get(ctx context.Context, characterID string) (*character.Character, error)

	// List returns every stored character, sorted by name
	List(ctx context.Context) ([]*character.Character, error)

	// Rename changes the character's name
	Rename(ctx context.Context, characterID, name string) (*character.Character, error)

	// Delete removes a character and cancels any pending deferred save
	Delete(ctx context.Context, characterID string) error

	SetHitPoints(ctx context.Context, characterID string, value int) (*character.Character, error)
	SetMaxHitPoints(ctx context.Context, characterID string, value int) (*character.Character, error)
	SetTempHP(ctx context.Context, characterID string, value int) (*character.Character, error)
	ApplyDamage(ctx context.Context, characterID string, amount int) (*character.Character, error)
	Heal(ctx context.Context, characterID string, amount int) (*character.Character, error)
	ToggleDeathSave(ctx context.Context, characterID string, kind character.DeathSaveKind, index int) (*character.Character, error)
	ToggleUsedAbility(ctx context.Context, characterID, abilityID string) (*character.Character, error)
	ToggleSpellSlot(ctx context.Context, characterID string, level, slotIndex int) (*character.Character, error)
	LongRest(ctx context.Context, characterID string) (*character.Character, error)
	SpendHitDie(ctx context.Context, characterID string) (*character.Character, error)
	SetCurrency(ctx context.Context, characterID string, field character.CurrencyField, value int) (*character.Character, error)
	AddEquipment(ctx context.Context, characterID string, item character.EquipmentItem) (*character.Character, error)
	RemoveEquipment(ctx context.Context, characterID string, index int) (*character.Character, error)
	LevelUp(ctx context.Context, characterID string, choice character.LevelUpChoice) (*character.Character, error)

	// UpdateNotes records the sheet's free-text notes. The write is
	// debounced through the save queue; Flush forces it out.
	UpdateNotes(ctx context.Context, characterID, notes string) error

	// Flush drains any deferred saves
	Flush(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	repository Repository
	idGen      uuid.Generator
	roller     dice.Roller
	saves      *savequeue.Queue
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository

	// Optional. Defaults: google uuids, random rolls, a queue with the
	// default debounce window.
	UUIDGenerator uuid.Generator
	Roller        dice.Roller
	SaveQueue     *savequeue.Queue
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, apperr.InvalidArgument("repository is required")
	}

	s := &service{
		repository: cfg.Repository,
		idGen:      cfg.UUIDGenerator,
		roller:     cfg.Roller,
		saves:      cfg.SaveQueue,
	}
	if s.idGen == nil {
		s.idGen = uuid.NewGoogleUUIDGenerator()
	}
	if s.roller == nil {
		s.roller = dice.NewRandomRoller()
	}
	if s.saves == nil {
		s.saves = savequeue.New(nil)
	}
	return s, nil
}

func (s *service) Create(ctx context.Context, char *character.Character) (*character.Character, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}
	if strings.TrimSpace(char.Name) == "" {
		return nil, apperr.Validation("character name is required")
	}

	created := char.Clone()
	if created.ID == "" {
		created.ID = s.idGen.New()
	}
	created.Normalize()

	if err := s.repository.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, characterID string) (*character.Character, error) {
	return s.repository.Get(ctx, characterID)
}

func (s *service) List(ctx context.Context) ([]*character.Character, error) {
	return s.repository.List(ctx)
}

func (s *service) Rename(ctx context.Context, characterID, name string) (*character.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("character name is required")
	}
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.Name = name
	})
}

func (s *service) Delete(ctx context.Context, characterID string) error {
	s.saves.Cancel(characterID)
	return s.repository.Delete(ctx, characterID)
}

func (s *service) SetHitPoints(ctx context.Context, characterID string, value int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.SetHitPoints(value)
	})
}

func (s *service) SetMaxHitPoints(ctx context.Context, characterID string, value int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.SetMaxHitPoints(value)
	})
}

func (s *service) SetTempHP(ctx context.Context, characterID string, value int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.SetTempHP(value)
	})
}

func (s *service) ApplyDamage(ctx context.Context, characterID string, amount int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.ApplyDamage(amount)
	})
}

func (s *service) Heal(ctx context.Context, characterID string, amount int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.Heal(amount)
	})
}

func (s *service) ToggleDeathSave(ctx context.Context, characterID string, kind character.DeathSaveKind, index int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.ToggleDeathSave(kind, index)
	})
}

func (s *service) ToggleUsedAbility(ctx context.Context, characterID, abilityID string) (*character.Character, error) {
	if abilityID == "" {
		return nil, apperr.InvalidArgument("ability ID is required")
	}
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.ToggleUsedAbility(abilityID)
	})
}

func (s *service) ToggleSpellSlot(ctx context.Context, characterID string, level, slotIndex int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.ToggleSpellSlot(level, slotIndex)
	})
}

func (s *service) LongRest(ctx context.Context, characterID string) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.ApplyLongRest()
	})
}

func (s *service) SpendHitDie(ctx context.Context, characterID string) (*character.Character, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if _, err := char.SpendHitDie(s.roller); err != nil {
		return nil, apperr.Wrap(err, "failed to roll hit die")
	}
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, err
	}
	return char, nil
}

func (s *service) SetCurrency(ctx context.Context, characterID string, field character.CurrencyField, value int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.SetCurrency(field, value)
	})
}

func (s *service) AddEquipment(ctx context.Context, characterID string, item character.EquipmentItem) (*character.Character, error) {
	if item.Name == "" {
		return nil, apperr.Validation("equipment name is required")
	}
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.AddEquipmentItem(item)
	})
}

func (s *service) RemoveEquipment(ctx context.Context, characterID string, index int) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.RemoveEquipmentItem(index)
	})
}

func (s *service) LevelUp(ctx context.Context, characterID string, choice character.LevelUpChoice) (*character.Character, error) {
	return s.mutate(ctx, characterID, func(c *character.Character) {
		c.LevelUp(choice)
	})
}

// UpdateNotes defers the write through the save queue so a typing burst
// lands as a single save. The queued task re-reads the stored record and
// applies only the notes text, so it cannot clobber structured edits made
// while the save was pending.
func (s *service) UpdateNotes(ctx context.Context, characterID, notes string) error {
	if characterID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	return s.saves.Enqueue(characterID, func(taskCtx context.Context) error {
		_, err := s.mutate(taskCtx, characterID, func(c *character.Character) {
			c.Notes = notes
		})
		if apperr.IsNotFound(err) {
			// Deleted while the save was pending.
			return nil
		}
		return err
	})
}

func (s *service) Flush(ctx context.Context) error {
	return s.saves.Flush(ctx)
}

func (s *service) mutate(ctx context.Context, characterID string, fn func(*character.Character)) (*character.Character, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	fn(char)
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, err
	}
	return char, nil
}
