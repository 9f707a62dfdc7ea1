package sale_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solttameias/store-api/internal/domain/sale"
)

func address() sale.Address {
	return sale.Address{
		ZipCode:  "01310-100",
		Street:   "Av. Paulista",
		Number:   "1000",
		District: "Bela Vista",
		City:     "São Paulo",
		State:    "SP",
		Country:  "Brasil",
	}
}

func TestNewItem(t *testing.T) {
	t.Parallel()

	item, err := sale.NewItem("p1", 3, 25.90, sale.TypeRetail)
	require.NoError(t, err)
	assert.InDelta(t, 77.70, item.Subtotal, 0.001)
	assert.Equal(t, 0.0, item.Discount)
	assert.InDelta(t, item.Subtotal, item.Total, 0.001)

	_, err = sale.NewItem("p1", 0, 25.90, sale.TypeRetail)
	assert.ErrorIs(t, err, sale.ErrInvalidQuantity)

	_, err = sale.NewItem("p1", 1, -1, sale.TypeRetail)
	assert.ErrorIs(t, err, sale.ErrInvalidUnitPrice)
}

func TestNewSale(t *testing.T) {
	t.Parallel()

	t.Run("totais derivam dos itens", func(t *testing.T) {
		t.Parallel()

		i1, err := sale.NewItem("p1", 2, 25.90, sale.TypeRetail)
		require.NoError(t, err)
		i2, err := sale.NewItem("p2", 10, 7.00, sale.TypeWholesale)
		require.NoError(t, err)

		s, err := sale.NewSale("u1", []*sale.Item{i1, i2}, sale.PaymentPix, "", address())
		require.NoError(t, err)

		assert.Equal(t, sale.StatusPending, s.Status)
		assert.InDelta(t, 121.80, s.Subtotal, 0.001)
		assert.Equal(t, 0.0, s.Discount)
		assert.InDelta(t, s.Subtotal-s.Discount, s.Total, 0.001)

		for _, item := range s.Items {
			assert.Equal(t, s.ID, item.SaleID)
		}
	})

	t.Run("rejeita venda sem itens", func(t *testing.T) {
		t.Parallel()

		_, err := sale.NewSale("u1", nil, sale.PaymentPix, "", address())
		assert.ErrorIs(t, err, sale.ErrNoItems)
	})

	t.Run("rejeita endereço incompleto", func(t *testing.T) {
		t.Parallel()

		item, err := sale.NewItem("p1", 1, 10, sale.TypeRetail)
		require.NoError(t, err)

		addr := address()
		addr.ZipCode = ""
		_, err = sale.NewSale("u1", []*sale.Item{item}, sale.PaymentPix, "", addr)
		assert.ErrorIs(t, err, sale.ErrIncompleteAddress)
	})

	t.Run("complemento do endereço é opcional", func(t *testing.T) {
		t.Parallel()

		addr := address()
		addr.Complement = ""
		assert.True(t, addr.IsComplete())
	})
}

func TestNewNumber(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^\d{8}-[A-HJ-NP-Z2-9]{5}$`)

	n := sale.NewNumber()
	assert.Regexp(t, pattern, n)
	assert.Contains(t, n, time.Now().UTC().Format("20060102"))

	// Sem caracteres ambíguos no sufixo
	assert.NotRegexp(t, `[0O1I]`, n[9:])
}

func TestStatus(t *testing.T) {
	t.Parallel()

	valid := []sale.Status{
		sale.StatusPending, sale.StatusProcessing, sale.StatusPaid,
		sale.StatusShipped, sale.StatusDelivered, sale.StatusCanceled, sale.StatusRefunded,
	}
	for _, st := range valid {
		assert.True(t, st.IsValid(), string(st))
	}
	assert.False(t, sale.Status("EM_ROTA").IsValid())

	assert.True(t, sale.StatusDelivered.IsTerminal())
	assert.True(t, sale.StatusCanceled.IsTerminal())
	assert.True(t, sale.StatusRefunded.IsTerminal())
	assert.False(t, sale.StatusPending.IsTerminal())
	assert.False(t, sale.StatusShipped.IsTerminal())
}
