package shipping

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/solttameias/store-api/internal/gateway/melhorenvio"
	"github.com/solttameias/store-api/pkg/logger"
)

const (
	defaultSettleDelay  = 4 * time.Second
	defaultPollInterval = 3 * time.Second
	defaultMaxAttempts  = 5
)

// Gateway é a visão do provedor de frete que o poller de etiquetas precisa
type Gateway interface {
	GenerateLabels(ctx context.Context, orderIDs []string) error
	ListShipments(ctx context.Context) ([]melhorenvio.Shipment, error)
}

// SleepFunc suspende a execução por uma duração, retornando antes se o
// contexto for cancelado. Injetável para que os testes não dependam do
// relógio real.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Progress é chamado a cada tentativa de poll com a lista de envios mais
// recente, para dar feedback à interface
type Progress func(attempt, maxAttempts int, shipments []melhorenvio.Shipment)

// LabelPoller conduz a geração assíncrona de etiquetas de envio. O
// provedor não retorna o código de rastreio de forma síncrona, então após
// o pedido de geração a lista de envios é consultada um número fixo de
// vezes. Esgotar as tentativas não é um erro: pedidos ainda sem código
// ficam no estado "aguardando código" e o chamador decide o que exibir.
type LabelPoller struct {
	gateway      Gateway
	logger       logger.Logger
	sleep        SleepFunc
	settleDelay  time.Duration
	pollInterval time.Duration
	maxAttempts  int

	mu         sync.Mutex
	generating map[string]bool
}

// Option configura o LabelPoller
type Option func(*LabelPoller)

// WithSleep substitui a função de espera (para testes)
func WithSleep(sleep SleepFunc) Option {
	return func(p *LabelPoller) { p.sleep = sleep }
}

// WithDelays configura o tempo de espera inicial e o intervalo entre polls
func WithDelays(settle, interval time.Duration) Option {
	return func(p *LabelPoller) {
		p.settleDelay = settle
		p.pollInterval = interval
	}
}

// WithMaxAttempts configura o número máximo de tentativas de poll
func WithMaxAttempts(n int) Option {
	return func(p *LabelPoller) { p.maxAttempts = n }
}

// NewLabelPoller cria um novo poller de etiquetas
func NewLabelPoller(gateway Gateway, log logger.Logger, opts ...Option) *LabelPoller {
	p := &LabelPoller{
		gateway:      gateway,
		logger:       log,
		sleep:        sleepContext,
		settleDelay:  defaultSettleDelay,
		pollInterval: defaultPollInterval,
		maxAttempts:  defaultMaxAttempts,
		generating:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsGenerating informa se há um ciclo de geração em andamento para o pedido
func (p *LabelPoller) IsGenerating(orderID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generating[orderID]
}

// Run executa um ciclo completo de geração de etiquetas para os pedidos
// informados: um único pedido de geração ao provedor, uma espera inicial e
// até maxAttempts consultas à lista de envios. Falha imediatamente se o
// pedido de geração for rejeitado; falhas transitórias de consulta são
// registradas e a próxima tentativa segue. O ciclo termina após a última
// tentativa mesmo que nem todos os pedidos tenham código de rastreio,
// cabendo ao chamador inspecionar a lista retornada. A marcação
// "gerando" é desfeita incondicionalmente ao final.
func (p *LabelPoller) Run(ctx context.Context, orderIDs []string, progress Progress) ([]melhorenvio.Shipment, error) {
	p.mark(orderIDs)
	defer p.unmark(orderIDs)

	if err := p.gateway.GenerateLabels(ctx, orderIDs); err != nil {
		return nil, fmt.Errorf("erro ao gerar etiquetas: %w", err)
	}

	// O provedor processa a geração de forma assíncrona; aguardar antes
	// da primeira consulta
	if err := p.sleep(ctx, p.settleDelay); err != nil {
		return nil, err
	}

	var shipments []melhorenvio.Shipment
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		list, err := p.gateway.ListShipments(ctx)
		if err != nil {
			// Falha transitória de consulta: a próxima tentativa pode
			// encontrar o provedor disponível
			p.logger.Warn("erro ao consultar envios durante o poll",
				"attempt", attempt, "error", err)
		} else {
			shipments = list
		}

		if progress != nil {
			progress(attempt, p.maxAttempts, shipments)
		}

		if attempt < p.maxAttempts {
			if err := p.sleep(ctx, p.pollInterval); err != nil {
				return shipments, err
			}
		}
	}

	return shipments, nil
}

// AwaitingCode separa os pedidos que já possuem código de rastreio dos que
// ainda aguardam, a partir da lista de envios mais recente
func AwaitingCode(orderIDs []string, shipments []melhorenvio.Shipment) (ready, awaiting []string) {
	tracked := make(map[string]bool, len(shipments))
	for _, sh := range shipments {
		if sh.HasTracking() {
			tracked[sh.OrderID] = true
		}
	}

	for _, id := range orderIDs {
		if tracked[id] {
			ready = append(ready, id)
		} else {
			awaiting = append(awaiting, id)
		}
	}
	return ready, awaiting
}

func (p *LabelPoller) mark(orderIDs []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range orderIDs {
		p.generating[id] = true
	}
}

func (p *LabelPoller) unmark(orderIDs []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range orderIDs {
		delete(p.generating, id)
	}
}

// sleepContext aguarda a duração informada ou o cancelamento do contexto
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
