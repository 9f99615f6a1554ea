package usecase

import (
	"context"
	"errors"
	"fmt"
	"itemlist/internal/domain"
	"itemlist/internal/ports"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports input rejected before it reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type newItem struct {
	Text string `validate:"required,max=500"`
}

// NormalizeText trims text and checks it is between 1 and domain.MaxTextLength characters.
func NormalizeText(text string) (string, error) {
	in := newItem{Text: strings.TrimSpace(text)}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return "", err
		}
		switch verrs[0].Tag() {
		case "required":
			return "", &ValidationError{Field: "text", Message: "text is required"}
		case "max":
			return "", &ValidationError{Field: "text", Message: fmt.Sprintf("text must be less than %d characters", domain.MaxTextLength)}
		default:
			return "", &ValidationError{Field: "text", Message: verrs[0].Error()}
		}
	}
	return in.Text, nil
}

type Items struct {
	Store ports.ItemStore
}

func (u Items) List(ctx context.Context) ([]domain.Item, error) {
	items, err := u.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (u Items) Create(ctx context.Context, text string) (domain.Item, error) {
	text, err := NormalizeText(text)
	if err != nil {
		return domain.Item{}, err
	}
	it, err := u.Store.Create(ctx, text)
	if err != nil {
		return domain.Item{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}
