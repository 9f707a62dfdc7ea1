package shipping_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solttameias/store-api/internal/gateway/melhorenvio"
	"github.com/solttameias/store-api/internal/service/shipping"
	"github.com/solttameias/store-api/pkg/logger"
)

// instantSleep não espera de verdade, só respeita o cancelamento
func instantSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

type fakeGateway struct {
	mu sync.Mutex

	generateErr   error
	generateCalls int

	listCalls int
	listErrs  map[int]error
	// listByCall retorna uma lista diferente a cada consulta, simulando o
	// provedor preenchendo os códigos de rastreio aos poucos
	listByCall func(call int) []melhorenvio.Shipment
}

func (g *fakeGateway) GenerateLabels(_ context.Context, _ []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generateCalls++
	return g.generateErr
}

func (g *fakeGateway) ListShipments(_ context.Context) ([]melhorenvio.Shipment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if err := g.listErrs[g.listCalls]; err != nil {
		return nil, err
	}
	if g.listByCall != nil {
		return g.listByCall(g.listCalls), nil
	}
	return nil, nil
}

func TestLabelPollerRun(t *testing.T) {
	t.Parallel()

	t.Run("consulta o número fixo de vezes e reporta progresso", func(t *testing.T) {
		t.Parallel()

		gw := &fakeGateway{
			listByCall: func(call int) []melhorenvio.Shipment {
				// s1 ganha código de rastreio a partir da segunda consulta,
				// s2 nunca ganha
				shipments := []melhorenvio.Shipment{
					{ID: "me-1", OrderID: "s1"},
					{ID: "me-2", OrderID: "s2"},
				}
				if call >= 2 {
					shipments[0].Tracking = "BR123456789"
				}
				return shipments
			},
		}
		poller := shipping.NewLabelPoller(gw, logger.NewLogger(), shipping.WithSleep(instantSleep))

		var attempts []int
		shipments, err := poller.Run(context.Background(), []string{"s1", "s2"},
			func(attempt, maxAttempts int, _ []melhorenvio.Shipment) {
				assert.Equal(t, 5, maxAttempts)
				attempts = append(attempts, attempt)
			})
		require.NoError(t, err)

		assert.Equal(t, 1, gw.generateCalls)
		assert.Equal(t, 5, gw.listCalls)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, attempts)

		ready, awaiting := shipping.AwaitingCode([]string{"s1", "s2"}, shipments)
		assert.Equal(t, []string{"s1"}, ready)
		assert.Equal(t, []string{"s2"}, awaiting)
	})

	t.Run("nenhum código após todas as tentativas não é erro", func(t *testing.T) {
		t.Parallel()

		gw := &fakeGateway{
			listByCall: func(int) []melhorenvio.Shipment {
				return []melhorenvio.Shipment{{ID: "me-1", OrderID: "s1"}}
			},
		}
		poller := shipping.NewLabelPoller(gw, logger.NewLogger(), shipping.WithSleep(instantSleep))

		shipments, err := poller.Run(context.Background(), []string{"s1"}, nil)
		require.NoError(t, err)

		ready, awaiting := shipping.AwaitingCode([]string{"s1"}, shipments)
		assert.Empty(t, ready)
		assert.Equal(t, []string{"s1"}, awaiting)
	})

	t.Run("falha na geração aborta sem consultar", func(t *testing.T) {
		t.Parallel()

		gw := &fakeGateway{generateErr: errors.New("saldo insuficiente")}
		poller := shipping.NewLabelPoller(gw, logger.NewLogger(), shipping.WithSleep(instantSleep))

		_, err := poller.Run(context.Background(), []string{"s1"}, nil)
		require.Error(t, err)
		assert.Equal(t, 0, gw.listCalls)

		// A marcação de geração em andamento é desfeita mesmo em erro
		assert.False(t, poller.IsGenerating("s1"))
	})

	t.Run("falha transitória de consulta não interrompe o ciclo", func(t *testing.T) {
		t.Parallel()

		gw := &fakeGateway{
			listErrs: map[int]error{1: errors.New("timeout"), 3: errors.New("timeout")},
			listByCall: func(int) []melhorenvio.Shipment {
				return []melhorenvio.Shipment{{ID: "me-1", OrderID: "s1", Tracking: "BR1"}}
			},
		}
		poller := shipping.NewLabelPoller(gw, logger.NewLogger(), shipping.WithSleep(instantSleep))

		shipments, err := poller.Run(context.Background(), []string{"s1"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 5, gw.listCalls)
		require.Len(t, shipments, 1)
		assert.True(t, shipments[0].HasTracking())
	})

	t.Run("cancelamento do contexto interrompe a espera", func(t *testing.T) {
		t.Parallel()

		gw := &fakeGateway{}
		poller := shipping.NewLabelPoller(gw, logger.NewLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := poller.Run(ctx, []string{"s1"}, nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, poller.IsGenerating("s1"))
	})

	t.Run("marca os pedidos como gerando durante o ciclo", func(t *testing.T) {
		t.Parallel()

		gw := &fakeGateway{}
		var poller *shipping.LabelPoller
		seen := make(chan bool, 1)
		poller = shipping.NewLabelPoller(gw, logger.NewLogger(),
			shipping.WithSleep(func(ctx context.Context, _ time.Duration) error {
				select {
				case seen <- poller.IsGenerating("s1"):
				default:
				}
				return ctx.Err()
			}))

		_, err := poller.Run(context.Background(), []string{"s1"}, nil)
		require.NoError(t, err)

		assert.True(t, <-seen)
		assert.False(t, poller.IsGenerating("s1"))
	})
}

func TestAwaitingCode(t *testing.T) {
	t.Parallel()

	shipments := []melhorenvio.Shipment{
		{OrderID: "s1", Tracking: "BR1"},
		{OrderID: "s2", AuthorizationCode: "AUTH-2"},
		{OrderID: "s3"},
	}

	ready, awaiting := shipping.AwaitingCode([]string{"s1", "s2", "s3", "s4"}, shipments)
	assert.Equal(t, []string{"s1", "s2"}, ready)
	assert.Equal(t, []string{"s3", "s4"}, awaiting)
}
