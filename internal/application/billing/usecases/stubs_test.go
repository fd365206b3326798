package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tagcash-inc/tagcash/internal/application/billing/gateway"
	"github.com/tagcash-inc/tagcash/internal/application/notification"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// --- bill repository stub ---

// stubBillRepo mimics the real repository's read and write semantics:
// reads hand out a detached copy, and Update is a conditional write that
// only lands when the aggregate is newer than the committed version.
type stubBillRepo struct {
	bills     map[uint]*bill.Bill
	committed map[uint]int
	updates   int
	nextID    uint
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{
		bills:     make(map[uint]*bill.Bill),
		committed: make(map[uint]int),
		nextID:    1,
	}
}

func (r *stubBillRepo) Create(_ context.Context, b *bill.Bill) error {
	if err := b.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.bills[b.ID()] = b
	r.committed[b.ID()] = b.Version()
	return nil
}

func (r *stubBillRepo) GetByID(_ context.Context, id uint) (*bill.Bill, error) {
	b, ok := r.bills[id]
	if !ok || b.IsDeleted() {
		return nil, bill.ErrBillNotFound
	}
	return cloneBill(b)
}

func (r *stubBillRepo) GetBySID(_ context.Context, sid string) (*bill.Bill, error) {
	for _, b := range r.bills {
		if b.SID() == sid && !b.IsDeleted() {
			return cloneBill(b)
		}
	}
	return nil, bill.ErrBillNotFound
}

func (r *stubBillRepo) GetByGatewayOrderID(_ context.Context, orderID string) (*bill.Bill, error) {
	for _, b := range r.bills {
		if b.GatewayOrderID() != nil && *b.GatewayOrderID() == orderID {
			return cloneBill(b)
		}
	}
	return nil, bill.ErrBillNotFound
}

func (r *stubBillRepo) Update(_ context.Context, b *bill.Bill) error {
	committed, ok := r.committed[b.ID()]
	if !ok {
		return bill.ErrBillNotFound
	}
	if b.Version() <= committed {
		return bill.ErrConcurrentModification
	}
	r.bills[b.ID()] = b
	r.committed[b.ID()] = b.Version()
	r.updates++
	return nil
}

func cloneBill(b *bill.Bill) (*bill.Bill, error) {
	return bill.ReconstructBill(bill.BillReconstructParams{
		ID:                b.ID(),
		SID:               b.SID(),
		BillNo:            b.BillNo(),
		CustomerID:        b.CustomerID(),
		BrandID:           b.BrandID(),
		PaymentType:       b.PaymentType(),
		Amount:            b.Amount(),
		PaymentStatus:     b.PaymentStatus(),
		GatewayOrderID:    b.GatewayOrderID(),
		GatewayPaymentID:  b.GatewayPaymentID(),
		GatewaySignature:  b.GatewaySignature(),
		ContentType:       b.ContentType(),
		ContentURL:        b.ContentURL(),
		InstaContentURL:   b.InstaContentURL(),
		BillURL:           b.BillURL(),
		Status:            b.Status(),
		BrandStatusDate:   b.BrandStatusDate(),
		Engagement:        b.Engagement(),
		MetaFetchedAt:     b.MetaFetchedAt(),
		RefundStatus:      b.RefundStatus(),
		RefundClaimDate:   b.RefundClaimDate(),
		RefundAmount:      b.RefundAmount(),
		RefundDate:        b.RefundDate(),
		BrandRefundStatus: b.BrandRefundStatus(),
		BrandRefundDate:   b.BrandRefundDate(),
		DeletedAt:         b.DeletedAt(),
		LastActiveAt:      b.LastActiveAt(),
		Version:           b.Version(),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	})
}

func (r *stubBillRepo) List(_ context.Context, filter bill.ListFilter) ([]*bill.Bill, int64, error) {
	var out []*bill.Bill
	for _, b := range r.bills {
		if b.IsDeleted() {
			continue
		}
		if filter.CustomerID != 0 && b.CustomerID() != filter.CustomerID {
			continue
		}
		if filter.BrandID != 0 && b.BrandID() != filter.BrandID {
			continue
		}
		if filter.Status != "" && b.Status() != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

// --- brand repository stubs ---

type stubBrandRepo struct {
	brands  map[uint]*brand.Brand
	updates int
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[uint]*brand.Brand)}
}

func (r *stubBrandRepo) Create(_ context.Context, b *brand.Brand) error {
	r.brands[b.ID()] = b
	return nil
}

func (r *stubBrandRepo) GetByID(_ context.Context, id uint) (*brand.Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, brand.ErrBrandNotFound
	}
	return b, nil
}

func (r *stubBrandRepo) GetBySID(_ context.Context, sid string) (*brand.Brand, error) {
	for _, b := range r.brands {
		if b.SID() == sid {
			return b, nil
		}
	}
	return nil, brand.ErrBrandNotFound
}

func (r *stubBrandRepo) GetByEmail(_ context.Context, email string) (*brand.Brand, error) {
	for _, b := range r.brands {
		if b.Email() == email {
			return b, nil
		}
	}
	return nil, brand.ErrBrandNotFound
}

func (r *stubBrandRepo) Update(_ context.Context, b *brand.Brand) error {
	r.brands[b.ID()] = b
	r.updates++
	return nil
}

type stubBalanceTxRepo struct {
	rows map[string]*brand.BalanceTransaction
}

func newStubBalanceTxRepo() *stubBalanceTxRepo {
	return &stubBalanceTxRepo{rows: make(map[string]*brand.BalanceTransaction)}
}

func (r *stubBalanceTxRepo) Create(_ context.Context, t *brand.BalanceTransaction) error {
	if _, exists := r.rows[t.SettlementID()]; exists {
		return brand.ErrDuplicateSettlement
	}
	r.rows[t.SettlementID()] = t
	return nil
}

func (r *stubBalanceTxRepo) GetBySettlementID(_ context.Context, settlementID string) (*brand.BalanceTransaction, error) {
	t, ok := r.rows[settlementID]
	if !ok {
		return nil, brand.ErrDuplicateSettlement
	}
	return t, nil
}

func (r *stubBalanceTxRepo) ListByBrandID(_ context.Context, brandID uint, _, _ int) ([]*brand.BalanceTransaction, int64, error) {
	var out []*brand.BalanceTransaction
	for _, t := range r.rows {
		if t.BrandID() == brandID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

// --- customer repository stub ---

type stubCustomerRepo struct {
	customers map[uint]*customer.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uint]*customer.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	r.customers[c.ID()] = c
	return nil
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id uint) (*customer.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) GetByEmail(_ context.Context, email string) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, customer.ErrCustomerNotFound
}

func (r *stubCustomerRepo) Update(_ context.Context, c *customer.Customer) error {
	r.customers[c.ID()] = c
	return nil
}

// --- collaborator stubs ---

type stubGateway struct {
	orderID   string
	orderErr  error
	validSigs map[string]bool
	created   int
}

func (g *stubGateway) CreateOrder(_ context.Context, _ gateway.CreateOrderRequest) (*gateway.CreateOrderResponse, error) {
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	g.created++
	return &gateway.CreateOrderResponse{OrderID: g.orderID}, nil
}

func (g *stubGateway) VerifySignature(_, _, signature string) bool {
	return g.validSigs[signature]
}

type stubFetcher struct {
	engagement vo.Engagement
	err        error
	calls      int
	lastURL    string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (vo.Engagement, error) {
	f.calls++
	f.lastURL = url
	if f.err != nil {
		return vo.Engagement{}, f.err
	}
	return f.engagement, nil
}

type stubCache struct {
	hits map[uint]vo.Engagement
	sets int
}

func newStubCache() *stubCache {
	return &stubCache{hits: make(map[uint]vo.Engagement)}
}

func (c *stubCache) Get(_ context.Context, billID uint) (vo.Engagement, bool, error) {
	e, ok := c.hits[billID]
	return e, ok, nil
}

func (c *stubCache) Set(_ context.Context, billID uint, e vo.Engagement) error {
	c.hits[billID] = e
	c.sets++
	return nil
}

type stubSender struct {
	sent []notification.Message
}

func (s *stubSender) Send(_ context.Context, msg notification.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

// raceBillRepo runs a hook right before a conditional write commits,
// letting a test interleave a competing writer.
type raceBillRepo struct {
	*stubBillRepo
	beforeUpdate func()
}

func (r *raceBillRepo) Update(ctx context.Context, b *bill.Bill) error {
	if r.beforeUpdate != nil {
		hook := r.beforeUpdate
		r.beforeUpdate = nil
		hook()
	}
	return r.stubBillRepo.Update(ctx, b)
}

type passTxRunner struct{}

func (passTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- fixtures ---

func seedBrand(t *testing.T, repo *stubBrandRepo, id uint) *brand.Brand {
	t.Helper()
	policy, err := brand.NewRefundPolicy(7, 30, 15000)
	require.NoError(t, err)
	b, err := brand.ReconstructBrand(brand.BrandReconstructParams{
		ID:           id,
		SID:          "br_stub1",
		Name:         "Acme Cosmetics",
		Email:        "billing@acme.example",
		PasswordHash: "$2a$10$hash",
		BalanceCents: 100000,
		Currency:     "INR",
		RefundPolicy: policy,
		Active:       true,
		Version:      1,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func seedCustomer(t *testing.T, repo *stubCustomerRepo, id uint) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(id, "cu_stub1", "style_daily", "style@example.com",
		"$2a$10$hash", true, time.Now().UTC(), time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedBill(t *testing.T, repo *stubBillRepo, customerID, brandID uint, paymentType vo.PaymentType) *bill.Bill {
	t.Helper()
	b, err := bill.NewBill(customerID, brandID, "bill_stub12345", paymentType, vo.NewMoney(50000, "INR"), "https://cdn.example.com/bill.jpg")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func seedApprovedBill(t *testing.T, repo *stubBillRepo, customerID, brandID uint) *bill.Bill {
	t.Helper()
	b := seedBill(t, repo, customerID, brandID, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypePost, "https://instagram.com/p/abc", ""))
	require.NoError(t, b.Decide(vo.StatusApproved, time.Now().UTC()))
	return b
}
