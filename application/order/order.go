package order

import (
	"context"

	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// Tab selects which order listing the orders view shows.
type Tab string

const (
	TabActive    Tab = "active"
	TabConfirmed Tab = "confirmed"
	TabAll       Tab = "all"
)

type OrderApp interface {
	List(ctx context.Context, telegramUserID int64, tab Tab) (*model.OrderList, error)
}

type orderAppImpl struct {
	api storeapi.Client
}

func NewOrderApp(api storeapi.Client) OrderApp {
	return &orderAppImpl{api: api}
}

func (s *orderAppImpl) List(ctx context.Context, telegramUserID int64, tab Tab) (*model.OrderList, error) {
	var (
		list *model.OrderList
		err  error
	)
	switch tab {
	case TabActive:
		list, err = s.api.GetActiveOrders(ctx, telegramUserID)
	case TabConfirmed:
		list, err = s.api.GetConfirmedOrders(ctx, telegramUserID)
	default:
		list, err = s.api.GetOrders(ctx, telegramUserID)
	}
	if err != nil {
		logger.Error("[Orders] list", zap.String("error", err.Error()),
			zap.String("tab", string(tab)), zap.Int64("telegram_user_id", telegramUserID))
		return nil, err
	}
	return list, nil
}
