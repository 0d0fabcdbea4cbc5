// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListEventsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动列表（条件为 AND 关系，缺省即不约束）
func NewListEventsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListEventsLogic {
	return &ListEventsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListEventsLogic) ListEvents(req *types.ListEventsReq) (*types.ListEventsResp, error) {
	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	result, err := l.svcCtx.EventModel.List(ctx, &model.ListQuery{
		Pagination: model.Pagination{
			Page:     req.Page,
			PageSize: req.PageSize,
		},
		Status:      req.Status,
		OrganizerID: req.OrganizerId,
		Keyword:     req.Search,
		From:        req.From,
		To:          req.To,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	return &types.ListEventsResp{
		Events: toEventInfoList(result.List),
		Total:  result.Total,
	}, nil
}
