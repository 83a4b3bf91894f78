// Package services wires the service layer together for the entry points.
package services

import (
	"github.com/jkode-CMU/dndbeyond/internal/clients/compendium"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/characters"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/notes"
	characterService "github.com/jkode-CMU/dndbeyond/internal/services/character"
	notesService "github.com/jkode-CMU/dndbeyond/internal/services/notes"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	NotesService     notesService.Service
	Compendium       compendium.Client
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	NotesRepository     notes.Repository
	Compendium          compendium.Client
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Fall back to in-memory repositories when none are provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	notesRepo := cfg.NotesRepository
	if notesRepo == nil {
		notesRepo = notes.NewInMemoryRepository()
	}

	charService, err := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
	})
	if err != nil {
		return nil, err
	}

	noteService, err := notesService.NewService(&notesService.ServiceConfig{
		Repository: notesRepo,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		CharacterService: charService,
		NotesService:     noteService,
		Compendium:       cfg.Compendium,
	}, nil
}
