// Package games manages the scripture games content, verse scrambles
// and character guesses. The dashboard keeps the frontend's historical
// list keys for these routes, so the client's normalizer emits
// verses/pagination and characters/pagination instead of the generic
// data/meta shape and the page types here decode those names.
package games

import (
	"context"
	"time"

	"github.com/gracewaylabs/graceway-admin/internal/apiclient"
	"github.com/gracewaylabs/graceway-admin/internal/services/rest"
	pkgerrors "github.com/gracewaylabs/graceway-admin/pkg/errors"
	"github.com/gracewaylabs/graceway-admin/pkg/pagination"
)

const (
	versesPath     = "/games/verse-scrambles"
	charactersPath = "/games/character-guesses"
)

// VerseScramble is a verse unscrambling puzzle.
type VerseScramble struct {
	ID         string    `json:"id"`
	Verse      string    `json:"verse"`
	Reference  string    `json:"reference"`
	Difficulty string    `json:"difficulty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CharacterGuess is a guess-the-character puzzle.
type CharacterGuess struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Clues     []string  `json:"clues"`
	Reference string    `json:"reference"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// VersePage is the verse scramble listing shape.
type VersePage struct {
	Verses []VerseScramble `json:"verses"`
	Meta   pagination.Meta `json:"pagination"`
}

// CharacterPage is the character guess listing shape.
type CharacterPage struct {
	Characters []CharacterGuess `json:"characters"`
	Meta       pagination.Meta  `json:"pagination"`
}

type VerseScrambleParams struct {
	Verse      string `json:"verse" validate:"required,max=1000"`
	Reference  string `json:"reference" validate:"required,max=120"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type VerseScrambleUpdateParams struct {
	Verse      *string `json:"verse,omitempty" validate:"omitempty,max=1000"`
	Reference  *string `json:"reference,omitempty" validate:"omitempty,max=120"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Active     *bool   `json:"active,omitempty"`
}

type CharacterGuessParams struct {
	Name      string   `json:"name" validate:"required,max=120"`
	Clues     []string `json:"clues" validate:"required,min=1,max=10,dive,max=300"`
	Reference string   `json:"reference" validate:"max=120"`
}

type CharacterGuessUpdateParams struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=120"`
	Clues     []string `json:"clues,omitempty" validate:"omitempty,min=1,max=10,dive,max=300"`
	Reference *string  `json:"reference,omitempty" validate:"omitempty,max=120"`
	Active    *bool    `json:"active,omitempty"`
}

// Service defines scripture game content management.
type Service interface {
	ListVerseScrambles(ctx context.Context, params pagination.Params) (*VersePage, error)
	CreateVerseScramble(ctx context.Context, params VerseScrambleParams) (*VerseScramble, error)
	UpdateVerseScramble(ctx context.Context, id string, params VerseScrambleUpdateParams) (*VerseScramble, error)
	DeleteVerseScramble(ctx context.Context, id string) error

	ListCharacterGuesses(ctx context.Context, params pagination.Params) (*CharacterPage, error)
	CreateCharacterGuess(ctx context.Context, params CharacterGuessParams) (*CharacterGuess, error)
	UpdateCharacterGuess(ctx context.Context, id string, params CharacterGuessUpdateParams) (*CharacterGuess, error)
	DeleteCharacterGuess(ctx context.Context, id string) error
}

type service struct {
	api *apiclient.Client
}

// NewService wires the games dependencies.
func NewService(api *apiclient.Client) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "api client required")
	}
	return &service{api: api}, nil
}

func (s *service) ListVerseScrambles(ctx context.Context, params pagination.Params) (*VersePage, error) {
	payload, err := s.api.Get(ctx, versesPath, &apiclient.RequestOptions{Query: params.Query()})
	if err != nil {
		return nil, err
	}
	page, err := apiclient.Decode[VersePage](payload)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) CreateVerseScramble(ctx context.Context, params VerseScrambleParams) (*VerseScramble, error) {
	return rest.Create[VerseScramble](ctx, s.api, versesPath, params)
}

func (s *service) UpdateVerseScramble(ctx context.Context, id string, params VerseScrambleUpdateParams) (*VerseScramble, error) {
	return rest.Update[VerseScramble](ctx, s.api, rest.ResourcePath(versesPath, id), params)
}

func (s *service) DeleteVerseScramble(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(versesPath, id))
}

func (s *service) ListCharacterGuesses(ctx context.Context, params pagination.Params) (*CharacterPage, error) {
	payload, err := s.api.Get(ctx, charactersPath, &apiclient.RequestOptions{Query: params.Query()})
	if err != nil {
		return nil, err
	}
	page, err := apiclient.Decode[CharacterPage](payload)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *service) CreateCharacterGuess(ctx context.Context, params CharacterGuessParams) (*CharacterGuess, error) {
	return rest.Create[CharacterGuess](ctx, s.api, charactersPath, params)
}

func (s *service) UpdateCharacterGuess(ctx context.Context, id string, params CharacterGuessUpdateParams) (*CharacterGuess, error) {
	return rest.Update[CharacterGuess](ctx, s.api, rest.ResourcePath(charactersPath, id), params)
}

func (s *service) DeleteCharacterGuess(ctx context.Context, id string) error {
	return rest.Delete(ctx, s.api, rest.ResourcePath(charactersPath, id))
}
