package usecase

import (
	"context"
	"errors"
	"itemlist/internal/domain"
	"itemlist/internal/infra/memstore"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr string
	}{
		{name: "plain", in: "buy milk", want: "buy milk"},
		{name: "trimmed", in: "  buy milk \n", want: "buy milk"},
		{name: "empty", in: "", wantErr: "text is required"},
		{name: "whitespace only", in: "   ", wantErr: "text is required"},
		{name: "at limit", in: strings.Repeat("a", domain.MaxTextLength), want: strings.Repeat("a", domain.MaxTextLength)},
		{name: "over limit", in: strings.Repeat("a", domain.MaxTextLength+1), wantErr: "less than 500"},
		{name: "multibyte at limit", in: strings.Repeat("é", domain.MaxTextLength), want: strings.Repeat("é", domain.MaxTextLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeText(tt.in)
			if tt.wantErr != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "text", verr.Field)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingStore struct{ memstore.Store }

func (*failingStore) List(context.Context) ([]domain.Item, error) {
	return nil, errors.New("store down")
}

func TestItems(t *testing.T) {
	ctx := context.Background()
	u := Items{Store: memstore.New()}

	items, err := u.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	it, err := u.Create(ctx, "  first  ")
	require.NoError(t, err)
	assert.Equal(t, domain.Item{ID: 1, Text: "first"}, it)

	_, err = u.Create(ctx, " ")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	items, err = u.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{ID: 1, Text: "first"}}, items)
}

func TestItemsWrapsStoreErrors(t *testing.T) {
	u := Items{Store: &failingStore{}}

	_, err := u.List(context.Background())
	assert.ErrorContains(t, err, "list items: store down")
}
