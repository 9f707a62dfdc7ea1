package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solttameias/store-api/internal/adapter/api/dto"
)

func TestCheckoutValidator(t *testing.T) {
	t.Parallel()

	v := dto.NewCheckoutValidator()

	base := dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: "a3bb189e-8bf9-4c8b-9b70-1c2d3e4f5a6b", Quantity: 2, UnitPrice: 25.90},
			{ProductID: "b4cc289e-8bf9-4c8b-9b70-1c2d3e4f5a6c", Quantity: 1, UnitPrice: 12.00},
		},
	}

	t.Run("total exibido igual à soma dos itens passa", func(t *testing.T) {
		t.Parallel()
		req := base
		req.DisplayTotal = 63.80
		assert.NoError(t, v.Struct(req))
	})

	t.Run("total exibido divergente é rejeitado", func(t *testing.T) {
		t.Parallel()
		req := base
		req.DisplayTotal = 63.81
		assert.Error(t, v.Struct(req))
	})

	t.Run("total omitido não é conferido", func(t *testing.T) {
		t.Parallel()
		req := base
		req.DisplayTotal = 0
		assert.NoError(t, v.Struct(req))
	})

	t.Run("sem itens passa na validação, o carrinho é usado depois", func(t *testing.T) {
		t.Parallel()
		req := dto.CheckoutRequest{}
		assert.NoError(t, v.Struct(req))
	})

	t.Run("quantidade zero é rejeitada", func(t *testing.T) {
		t.Parallel()
		req := base
		req.Items = []dto.CheckoutItemRequest{
			{ProductID: "a3bb189e-8bf9-4c8b-9b70-1c2d3e4f5a6b", Quantity: 0, UnitPrice: 25.90},
		}
		assert.Error(t, v.Struct(req))
	})
}
