package app

import (
	"context"
	"fmt"
	"strings"

	"gopherblog/internal/ai"
	"gopherblog/internal/model"
)

type AIResponseStore interface {
	Create(resp *model.AIResponse) error
	GetByID(id uint) (*model.AIResponse, error)
	List(skip, limit int) ([]model.AIResponse, error)
	ListByUser(userID uint) ([]model.AIResponse, error)
	Delete(id uint) error
}

type TextGenerator interface {
	Generate(ctx context.Context, prompt, model string) (*ai.Completion, error)
}

type AIService struct {
	responses    AIResponseStore
	users        UserGetter
	generator    TextGenerator
	defaultModel string
	publisher    EventPublisher
}

type GenerateInput struct {
	UserID uint
	Prompt string
	Model  string
}

func NewAIService(responses AIResponseStore, users UserGetter, generator TextGenerator, defaultModel string, publisher EventPublisher) *AIService {
	if defaultModel == "" {
		defaultModel = ai.DefaultModel
	}
	return &AIService{
		responses:    responses,
		users:        users,
		generator:    generator,
		defaultModel: defaultModel,
		publisher:    publisher,
	}
}

// Generate confirms the user exists, runs the upstream call to completion
// and only then persists the exchange. Upstream failures collapse to one
// error carrying the upstream's message; nothing is written in that case.
func (s *AIService) Generate(ctx context.Context, input GenerateInput) (*model.AIResponse, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" || input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	modelName := strings.TrimSpace(input.Model)
	if modelName == "" {
		modelName = s.defaultModel
	}

	completion, err := s.generator.Generate(ctx, prompt, modelName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	tokens := completion.TokensUsed
	resp := &model.AIResponse{
		UserID:     input.UserID,
		Prompt:     prompt,
		Response:   completion.Text,
		Model:      modelName,
		TokensUsed: &tokens,
	}
	if err := s.responses.Create(resp); err != nil {
		return nil, err
	}

	publishAudit(s.publisher, "ai_response", "create", resp.ID)
	return resp, nil
}

// Summarize wraps the text in the summarization template and delegates.
func (s *AIService) Summarize(ctx context.Context, userID uint, text, modelName string) (*model.AIResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	return s.Generate(ctx, GenerateInput{
		UserID: userID,
		Prompt: ai.SummaryPrompt(text),
		Model:  modelName,
	})
}

// Translate wraps the text in the translation template and delegates.
// Target language defaults to Japanese.
func (s *AIService) Translate(ctx context.Context, userID uint, text, targetLanguage, modelName string) (*model.AIResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	return s.Generate(ctx, GenerateInput{
		UserID: userID,
		Prompt: ai.TranslationPrompt(text, targetLanguage),
		Model:  modelName,
	})
}

func (s *AIService) List(skip, limit int) ([]model.AIResponse, error) {
	return s.responses.List(skip, limit)
}

func (s *AIService) GetByID(id uint) (*model.AIResponse, error) {
	if id == 0 {
		return nil, ErrResponseNotFound
	}

	resp, err := s.responses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrResponseNotFound
	}
	return resp, nil
}

// ListByUser mirrors ListByAuthor on posts: an unknown user yields an
// empty list, not an error.
func (s *AIService) ListByUser(userID uint) ([]model.AIResponse, error) {
	responses, err := s.responses.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []model.AIResponse{}
	}
	return responses, nil
}

func (s *AIService) Delete(id uint) error {
	resp, err := s.responses.GetByID(id)
	if err != nil {
		return err
	}
	if resp == nil {
		return ErrResponseNotFound
	}

	if err := s.responses.Delete(id); err != nil {
		return err
	}

	publishAudit(s.publisher, "ai_response", "delete", id)
	return nil
}
