package handlers

import (
	"context"

	"github.com/tagcash-inc/tagcash/internal/application/billing/usecases"
)

// Use case interfaces for BillHandler

type createBillUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateBillCommand) (*usecases.CreateBillResult, error)
}

type verifyPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyPaymentCommand) (*usecases.VerifyPaymentResult, error)
}

type submitContentUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitContentCommand) (*usecases.SubmitContentResult, error)
}

type updateContentUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateContentCommand) (*usecases.UpdateContentResult, error)
}

type brandDecideUseCase interface {
	Execute(ctx context.Context, cmd usecases.BrandDecideCommand) (*usecases.BrandDecideResult, error)
}

type refreshEngagementUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefreshEngagementCommand) (*usecases.RefreshEngagementResult, error)
}

type getBillUseCase interface {
	Execute(ctx context.Context, q usecases.GetBillQuery) (*usecases.GetBillResult, error)
}

type listBillsUseCase interface {
	Execute(ctx context.Context, q usecases.ListBillsQuery) (*usecases.ListBillsResult, error)
}

type deleteBillUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteBillCommand) error
}
