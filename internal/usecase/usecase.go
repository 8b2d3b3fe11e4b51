package usecase

import "context"

type OrderUC interface {
	SubmitBatch(ctx context.Context, req *SubmitBatchReq) (*SubmitBatchRes, error)
	GetOrdersInfo(ctx context.Context, req *GetOrdersReq) (*GetOrdersRes, error)
	GetOrderSummary(ctx context.Context, reference string) (*OrderSummaryRes, error)
	UpdateItemStatus(ctx context.Context, req *UpdateItemStatusReq) (*ItemStatusRes, error)
	ReviewOrder(ctx context.Context, req *ReviewOrderReq) (*ReviewOrderRes, error)
}
