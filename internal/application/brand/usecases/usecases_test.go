package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubBrandRepo struct {
	brands map[uint]*brand.Brand
	nextID uint
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[uint]*brand.Brand), nextID: 1}
}

func (r *stubBrandRepo) Create(_ context.Context, b *brand.Brand) error {
	if b.ID() == 0 {
		if err := b.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
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

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return assert.AnError
	}
	return nil
}

type passTxRunner struct{}

func (passTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func seedBrand(t *testing.T, repo *stubBrandRepo) *brand.Brand {
	t.Helper()
	policy, err := brand.NewRefundPolicy(7, 30, 15000)
	require.NoError(t, err)
	b, err := brand.NewBrand("br_seed12345", "Acme Cosmetics", "billing@acme.example", "hashed:secret", policy)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestRegisterBrand(t *testing.T) {
	repo := newStubBrandRepo()
	uc := NewRegisterBrandUseCase(repo, stubHasher{}, testLogger())

	result, err := uc.Execute(context.Background(), RegisterBrandCommand{
		Name:                  "Acme Cosmetics",
		Email:                 "billing@acme.example",
		Password:              "secret",
		RefundDays:            7,
		RefundPercentage:      30,
		UpToRefundAmountCents: 15000,
	})
	require.NoError(t, err)

	assert.True(t, result.Brand.IsActive())
	assert.Equal(t, "hashed:secret", result.Brand.PasswordHash())
	assert.True(t, result.Brand.RefundPolicy().AllowsRefunds())
}

func TestRegisterBrandDuplicateEmail(t *testing.T) {
	repo := newStubBrandRepo()
	seedBrand(t, repo)
	uc := NewRegisterBrandUseCase(repo, stubHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterBrandCommand{
		Name:     "Copycat",
		Email:    "billing@acme.example",
		Password: "secret",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterBrandInvalidPolicy(t *testing.T) {
	uc := NewRegisterBrandUseCase(newStubBrandRepo(), stubHasher{}, testLogger())
	_, err := uc.Execute(context.Background(), RegisterBrandCommand{
		Name:             "Acme",
		Email:            "a@b.c",
		Password:         "secret",
		RefundPercentage: 150,
	})
	assert.ErrorIs(t, err, brand.ErrInvalidRefundPolicy)
}

func TestTopUpCreditsBalanceAndWritesLedger(t *testing.T) {
	repo := newStubBrandRepo()
	br := seedBrand(t, repo)
	txRepo := newStubBalanceTxRepo()

	uc := NewTopUpUseCase(repo, txRepo, passTxRunner{}, testLogger())
	result, err := uc.Execute(context.Background(), TopUpCommand{
		BrandID:     br.ID(),
		AmountCents: 250000,
		Reference:   "wire transfer #8841",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(250000), result.Brand.BalanceCents())
	require.NotEmpty(t, result.SettlementID)

	row, err := txRepo.GetBySettlementID(context.Background(), result.SettlementID)
	require.NoError(t, err)
	assert.Equal(t, brand.DirectionCredit, row.Direction())
	assert.Equal(t, "wire transfer #8841", row.Reason())
}

func TestTopUpRejectsInactiveBrand(t *testing.T) {
	repo := newStubBrandRepo()
	br := seedBrand(t, repo)
	br.Deactivate()

	uc := NewTopUpUseCase(repo, newStubBalanceTxRepo(), passTxRunner{}, testLogger())
	_, err := uc.Execute(context.Background(), TopUpCommand{BrandID: br.ID(), AmountCents: 1000})
	assert.ErrorIs(t, err, brand.ErrBrandInactive)
}

func TestTopUpRejectsNonPositiveAmount(t *testing.T) {
	repo := newStubBrandRepo()
	br := seedBrand(t, repo)

	uc := NewTopUpUseCase(repo, newStubBalanceTxRepo(), passTxRunner{}, testLogger())
	_, err := uc.Execute(context.Background(), TopUpCommand{BrandID: br.ID(), AmountCents: 0})
	assert.ErrorIs(t, err, brand.ErrInvalidAmount)
}

func TestUpdateRefundPolicy(t *testing.T) {
	repo := newStubBrandRepo()
	br := seedBrand(t, repo)

	uc := NewUpdateRefundPolicyUseCase(repo, testLogger())
	result, err := uc.Execute(context.Background(), UpdateRefundPolicyCommand{
		BrandID:               br.ID(),
		RefundDays:            14,
		RefundPercentage:      50,
		UpToRefundAmountCents: 30000,
	})
	require.NoError(t, err)

	assert.Equal(t, 14, result.Brand.RefundPolicy().RefundDays())
	assert.Equal(t, 50, result.Brand.RefundPolicy().RefundPercentage())
}

func TestGetBalance(t *testing.T) {
	repo := newStubBrandRepo()
	br := seedBrand(t, repo)
	txRepo := newStubBalanceTxRepo()

	topup := NewTopUpUseCase(repo, txRepo, passTxRunner{}, testLogger())
	_, err := topup.Execute(context.Background(), TopUpCommand{BrandID: br.ID(), AmountCents: 50000})
	require.NoError(t, err)

	uc := NewGetBalanceUseCase(repo, txRepo, testLogger())
	result, err := uc.Execute(context.Background(), GetBalanceQuery{BrandID: br.ID()})
	require.NoError(t, err)

	assert.Equal(t, int64(50000), result.Brand.BalanceCents())
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Transactions, 1)
	assert.WithinDuration(t, time.Now().UTC(), result.Transactions[0].CreatedAt(), 5*time.Second)
}
