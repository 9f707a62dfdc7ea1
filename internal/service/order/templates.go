package order

import (
	"fmt"
	"strings"

	"github.com/solttameias/store-api/internal/domain/notification"
	"github.com/solttameias/store-api/internal/domain/sale"
)

// Template define o título, a mensagem e o tipo de notificação de um
// evento do ciclo de vida da venda
type Template struct {
	Type    notification.Type
	Title   string
	Message string
}

// createdTemplate retorna o template do evento de criação da venda
func createdTemplate(s *sale.Sale) Template {
	return Template{
		Type:    notification.TypeSaleCreated,
		Title:   "🧦 Pedido recebido",
		Message: fmt.Sprintf("Recebemos seu pedido %s no valor de R$ %.2f. Assim que o pagamento for confirmado você será avisado.", s.Number, s.Total),
	}
}

// statusTemplate retorna o template correspondente ao novo status da venda.
// Status desconhecidos caem no template genérico de atualização.
func statusTemplate(status sale.Status, number string) Template {
	switch status {
	case sale.StatusProcessing:
		return Template{
			Type:    notification.TypeSaleProcessing,
			Title:   "⏳ Pagamento em processamento",
			Message: fmt.Sprintf("O pagamento do pedido %s está sendo processado. Avisaremos quando for aprovado.", number),
		}
	case sale.StatusPaid:
		return Template{
			Type:    notification.TypeSalePaid,
			Title:   "✅ Pagamento aprovado",
			Message: fmt.Sprintf("O pagamento do pedido %s foi aprovado. Já estamos preparando o envio.", number),
		}
	case sale.StatusShipped:
		return Template{
			Type:    notification.TypeSaleShipped,
			Title:   "📦 Pedido enviado",
			Message: fmt.Sprintf("O pedido %s foi postado e está a caminho. Acompanhe o rastreio na página do pedido.", number),
		}
	case sale.StatusDelivered:
		return Template{
			Type:    notification.TypeSaleDelivered,
			Title:   "🎉 Pedido entregue",
			Message: fmt.Sprintf("O pedido %s foi entregue. Esperamos que aproveite suas meias!", number),
		}
	case sale.StatusCanceled:
		return Template{
			Type:    notification.TypeSaleCanceled,
			Title:   "❌ Pedido cancelado",
			Message: fmt.Sprintf("O pedido %s foi cancelado. Se tiver dúvidas, fale com a gente.", number),
		}
	case sale.StatusRefunded:
		return Template{
			Type:    notification.TypeSaleRefunded,
			Title:   "💸 Pedido reembolsado",
			Message: fmt.Sprintf("O reembolso do pedido %s foi realizado. O valor aparece na sua fatura em alguns dias.", number),
		}
	default:
		return Template{
			Type:    notification.TypeSaleUpdated,
			Title:   "🔔 Pedido atualizado",
			Message: fmt.Sprintf("O pedido %s foi atualizado. Confira os detalhes na página do pedido.", number),
		}
	}
}

// confirmationEmailHTML monta o email de confirmação com o pedido itemizado
func confirmationEmailHTML(userName string, s *sale.Sale) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Olá, %s!</h2>", userName)
	fmt.Fprintf(&b, "<p>Recebemos seu pedido <strong>%s</strong>.</p>", s.Number)
	b.WriteString("<table border=\"0\" cellpadding=\"6\"><tr><th align=\"left\">Produto</th><th>Qtd</th><th align=\"right\">Preço</th><th align=\"right\">Total</th></tr>")
	for _, item := range s.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td align=\"center\">%d</td><td align=\"right\">R$ %.2f</td><td align=\"right\">R$ %.2f</td></tr>",
			item.ProductName, item.Quantity, item.UnitPrice, item.Total)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Subtotal: R$ %.2f<br>Desconto: R$ %.2f<br><strong>Total: R$ %.2f</strong></p>", s.Subtotal, s.Discount, s.Total)
	fmt.Fprintf(&b, "<p>Entrega em: %s, %s - %s, %s/%s - CEP %s</p>",
		s.Address.Street, s.Address.Number, s.Address.District, s.Address.City, s.Address.State, s.Address.ZipCode)
	b.WriteString("<p>Obrigado por comprar com a Soltta Meias!</p>")

	return b.String()
}

// statusEmailHTML monta o email de mudança de status a partir do template
func statusEmailHTML(userName string, s *sale.Sale, tpl Template) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>Olá, %s!</h2>", userName)
	fmt.Fprintf(&b, "<p>%s</p>", tpl.Message)
	fmt.Fprintf(&b, "<p>Pedido: <strong>%s</strong><br>Total: R$ %.2f</p>", s.Number, s.Total)
	b.WriteString("<p>Equipe Soltta Meias</p>")

	return b.String()
}
