package order_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solttameias/store-api/internal/adapter/repository"
	"github.com/solttameias/store-api/internal/domain/notification"
	"github.com/solttameias/store-api/internal/domain/sale"
	"github.com/solttameias/store-api/internal/domain/user"
	"github.com/solttameias/store-api/internal/service/order"
	"github.com/solttameias/store-api/pkg/logger"
)

type fakeSaleRepo struct {
	mu    sync.Mutex
	sales map[string]*sale.Sale

	createErr     error
	casDenied     bool
	existsNumbers map[string]bool
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*sale.Sale)}
}

func (r *fakeSaleRepo) CreateWithItems(_ context.Context, s *sale.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id string) (*sale.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSaleRepo) FindByUser(_ context.Context, userID string, _, _ int) ([]*sale.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*sale.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _, _ int) ([]*sale.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*sale.Sale
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(_ context.Context, id string, from, to sale.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.casDenied {
		return false, nil
	}
	s, ok := r.sales[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (r *fakeSaleRepo) UpdateNotes(_ context.Context, id, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return repository.ErrSaleNotFound
	}
	s.Notes = notes
	return nil
}

func (r *fakeSaleRepo) ExistsByNumber(_ context.Context, number string) (bool, error) {
	return r.existsNumbers[number], nil
}

func (r *fakeSaleRepo) CountByUser(_ context.Context, _ string) (int, error) { return 0, nil }
func (r *fakeSaleRepo) Count(_ context.Context) (int, error)                 { return 0, nil }

type fakeCatalog struct {
	products map[string]*order.ProductPrice
}

func (c *fakeCatalog) FindByID(_ context.Context, id string) (*order.ProductPrice, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

type fakeUserRepo struct {
	users map[string]*user.User
	err   error
}

func (r *fakeUserRepo) Create(_ context.Context, _ *user.User) error { return nil }
func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}
func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, repository.ErrUserNotFound
}
func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*user.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(_ context.Context, _ *user.User) error           { return nil }
func (r *fakeUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type notified struct {
	userID string
	typ    notification.Type
	title  string
}

type fakeSink struct {
	mu        sync.Mutex
	sent      []notified
	notifyErr error
}

func (s *fakeSink) Notify(_ context.Context, userID string, typ notification.Type, title, _, _ string, _ map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, notified{userID: userID, typ: typ, title: title})
	return s.notifyErr
}

type sentEmail struct {
	to      string
	subject string
}

type fakeEmail struct {
	mu      sync.Mutex
	sent    []sentEmail
	sendErr error
}

func (e *fakeEmail) Send(to, subject, _ string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, sentEmail{to: to, subject: subject})
	return e.sendErr
}

type fixture struct {
	svc   *order.Service
	sales *fakeSaleRepo
	sink  *fakeSink
	email *fakeEmail
}

func newFixture() *fixture {
	sales := newFakeSaleRepo()
	catalog := &fakeCatalog{products: map[string]*order.ProductPrice{
		"p1": {ID: "p1", Name: "Meia Cano Alto Listrada", RetailPrice: 25.90, WholesalePrice: 14.50, Active: true},
		"p2": {ID: "p2", Name: "Meia Invisível Lisa", RetailPrice: 12.00, WholesalePrice: 7.00, Active: true},
	}}
	users := &fakeUserRepo{users: map[string]*user.User{
		"u1": {ID: "u1", Name: "Ana", Email: "ana@example.com"},
	}}
	sink := &fakeSink{}
	email := &fakeEmail{}

	svc := order.NewService(sales, catalog, users, sink, email, logger.NewLogger())
	return &fixture{svc: svc, sales: sales, sink: sink, email: email}
}

func validAddress() sale.Address {
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

func TestCreateSale(t *testing.T) {
	t.Parallel()

	t.Run("congela os preços do catálogo e calcula os totais", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		s, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID: "u1",
			Items: []order.ItemInput{
				{ProductID: "p1", Quantity: 2, SaleType: sale.TypeRetail},
				{ProductID: "p2", Quantity: 10, SaleType: sale.TypeWholesale},
			},
			PaymentMethod: sale.PaymentMercadoPago,
			Address:       validAddress(),
		})
		require.NoError(t, err)

		assert.Equal(t, sale.StatusPending, s.Status)
		require.Len(t, s.Items, 2)
		assert.Equal(t, 25.90, s.Items[0].UnitPrice)
		assert.Equal(t, 7.00, s.Items[1].UnitPrice)
		assert.InDelta(t, 2*25.90+10*7.00, s.Subtotal, 0.001)
		assert.Equal(t, 0.0, s.Discount)
		assert.InDelta(t, s.Subtotal, s.Total, 0.001)
		assert.NotEmpty(t, s.Number)

		// Persistida de fato
		stored, err := f.sales.FindByID(context.Background(), s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.Number, stored.Number)
	})

	t.Run("dispara notificação e email de confirmação", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID:        "u1",
			Items:         []order.ItemInput{{ProductID: "p1", Quantity: 1, SaleType: sale.TypeRetail}},
			PaymentMethod: sale.PaymentPix,
			Address:       validAddress(),
		})
		require.NoError(t, err)

		require.Len(t, f.sink.sent, 1)
		assert.Equal(t, "u1", f.sink.sent[0].userID)
		assert.Equal(t, notification.TypeSaleCreated, f.sink.sent[0].typ)

		require.Len(t, f.email.sent, 1)
		assert.Equal(t, "ana@example.com", f.email.sent[0].to)
	})

	t.Run("falha de notificação e email não reverte a venda", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		f.sink.notifyErr = errors.New("fila indisponível")
		f.email.sendErr = errors.New("smtp indisponível")

		s, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID:        "u1",
			Items:         []order.ItemInput{{ProductID: "p1", Quantity: 1, SaleType: sale.TypeRetail}},
			PaymentMethod: sale.PaymentPix,
			Address:       validAddress(),
		})
		require.NoError(t, err)

		_, err = f.sales.FindByID(context.Background(), s.ID)
		assert.NoError(t, err)
	})

	t.Run("rejeita venda sem itens", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID:  "u1",
			Address: validAddress(),
		})
		assert.ErrorIs(t, err, sale.ErrNoItems)
	})

	t.Run("rejeita endereço incompleto", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		addr := validAddress()
		addr.City = ""
		_, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID:  "u1",
			Items:   []order.ItemInput{{ProductID: "p1", Quantity: 1, SaleType: sale.TypeRetail}},
			Address: addr,
		})
		assert.ErrorIs(t, err, sale.ErrIncompleteAddress)
	})

	t.Run("rejeita produto inexistente", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID:  "u1",
			Items:   []order.ItemInput{{ProductID: "nope", Quantity: 1, SaleType: sale.TypeRetail}},
			Address: validAddress(),
		})
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("rejeita quantidade inválida", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
			UserID:  "u1",
			Items:   []order.ItemInput{{ProductID: "p1", Quantity: 0, SaleType: sale.TypeRetail}},
			Address: validAddress(),
		})
		assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
	})
}

func createSale(t *testing.T, f *fixture) *sale.Sale {
	t.Helper()
	s, err := f.svc.CreateSale(context.Background(), order.CreateSaleInput{
		UserID:        "u1",
		Items:         []order.ItemInput{{ProductID: "p1", Quantity: 1, SaleType: sale.TypeRetail}},
		PaymentMethod: sale.PaymentMercadoPago,
		Address:       validAddress(),
	})
	require.NoError(t, err)

	// Zera os efeitos colaterais da criação para os asserts das transições
	f.sink.sent = nil
	f.email.sent = nil
	return s
}

func TestUpdateSaleStatus(t *testing.T) {
	t.Parallel()

	t.Run("transição dispara notificação e email do novo status", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		s := createSale(t, f)

		updated, err := f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.StatusPaid)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusPaid, updated.Status)

		require.Len(t, f.sink.sent, 1)
		assert.Equal(t, notification.TypeSalePaid, f.sink.sent[0].typ)
		require.Len(t, f.email.sent, 1)
	})

	t.Run("status igual ao atual não dispara efeitos colaterais", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		s := createSale(t, f)

		updated, err := f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusPending, updated.Status)

		assert.Empty(t, f.sink.sent)
		assert.Empty(t, f.email.sent)
	})

	t.Run("venda em status final não aceita transições", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		s := createSale(t, f)

		_, err := f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.StatusCanceled)
		require.NoError(t, err)

		_, err = f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.StatusPaid)
		assert.ErrorIs(t, err, sale.ErrTerminalStatus)

		// Também não sai de DELIVERED
		f2 := newFixture()
		s2 := createSale(t, f2)
		_, err = f2.svc.UpdateSaleStatus(context.Background(), s2.ID, sale.StatusDelivered)
		require.NoError(t, err)
		_, err = f2.svc.UpdateSaleStatus(context.Background(), s2.ID, sale.StatusRefunded)
		assert.ErrorIs(t, err, sale.ErrTerminalStatus)
	})

	t.Run("status desconhecido é rejeitado", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		s := createSale(t, f)

		_, err := f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.Status("EM_ROTA"))
		assert.ErrorIs(t, err, sale.ErrInvalidStatus)
		assert.Empty(t, f.sink.sent)
	})

	t.Run("venda inexistente", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.UpdateSaleStatus(context.Background(), "missing", sale.StatusPaid)
		assert.True(t, order.IsNotFound(err))
	})

	t.Run("atualização concorrente retorna conflito", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		s := createSale(t, f)
		f.sales.casDenied = true

		_, err := f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.StatusPaid)
		assert.ErrorIs(t, err, order.ErrStatusConflict)
		assert.Empty(t, f.sink.sent)
	})
}

func TestHandlePaymentResult(t *testing.T) {
	t.Parallel()

	cases := []struct {
		paymentStatus string
		want          sale.Status
	}{
		{"approved", sale.StatusPaid},
		{"in_process", sale.StatusProcessing},
		{"pending", sale.StatusProcessing},
		{"refunded", sale.StatusRefunded},
		{"charged_back", sale.StatusRefunded},
		{"cancelled", sale.StatusCanceled},
		{"rejected", sale.StatusCanceled},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.paymentStatus, func(t *testing.T) {
			t.Parallel()
			f := newFixture()
			s := createSale(t, f)

			updated, err := f.svc.HandlePaymentResult(context.Background(), s.ID, tc.paymentStatus)
			require.NoError(t, err)
			assert.Equal(t, tc.want, updated.Status)
		})
	}

	t.Run("status desconhecido não altera a venda", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		s := createSale(t, f)

		updated, err := f.svc.HandlePaymentResult(context.Background(), s.ID, "mistério")
		require.NoError(t, err)
		assert.Equal(t, sale.StatusPending, updated.Status)
		assert.Empty(t, f.sink.sent)
	})
}

func TestUpdateSaleNotes(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := createSale(t, f)

	// Observações podem ser alteradas mesmo após status final
	_, err := f.svc.UpdateSaleStatus(context.Background(), s.ID, sale.StatusCanceled)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateSaleNotes(context.Background(), s.ID, "cliente pediu cancelamento"))

	stored, err := f.svc.GetSaleByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "cliente pediu cancelamento", stored.Notes)
}
