package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solttameias/store-api/internal/domain/notification"
	"github.com/solttameias/store-api/internal/domain/sale"
)

func TestStatusTemplate(t *testing.T) {
	t.Parallel()

	want := map[sale.Status]notification.Type{
		sale.StatusProcessing: notification.TypeSaleProcessing,
		sale.StatusPaid:       notification.TypeSalePaid,
		sale.StatusShipped:    notification.TypeSaleShipped,
		sale.StatusDelivered:  notification.TypeSaleDelivered,
		sale.StatusCanceled:   notification.TypeSaleCanceled,
		sale.StatusRefunded:   notification.TypeSaleRefunded,
	}

	for status, typ := range want {
		tpl := statusTemplate(status, "20250901-ABCDE")
		assert.Equal(t, typ, tpl.Type, string(status))
		assert.NotEmpty(t, tpl.Title)
		assert.Contains(t, tpl.Message, "20250901-ABCDE")
	}

	// Status sem template próprio cai no genérico
	tpl := statusTemplate(sale.StatusPending, "20250901-ABCDE")
	assert.Equal(t, notification.TypeSaleUpdated, tpl.Type)
}

func TestConfirmationEmailHTML(t *testing.T) {
	t.Parallel()

	i1, err := sale.NewItem("p1", 2, 25.90, sale.TypeRetail)
	require.NoError(t, err)
	i1.ProductName = "Meia Cano Alto Listrada"

	s, err := sale.NewSale("u1", []*sale.Item{i1}, sale.PaymentPix, "", sale.Address{
		ZipCode: "01310-100", Street: "Av. Paulista", Number: "1000",
		District: "Bela Vista", City: "São Paulo", State: "SP", Country: "Brasil",
	})
	require.NoError(t, err)

	html := confirmationEmailHTML("Ana", s)
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, s.Number)
	assert.Contains(t, html, "Meia Cano Alto Listrada")
}
