// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/repository/cache"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ProctorRepository interface {
	SaveEvent(ctx context.Context, interviewID int64, evt domain.Event) error
	ListEvents(ctx context.Context, interviewID int64) ([]domain.Event, error)
	CacheReport(ctx context.Context, interviewID int64, report domain.TrustReport) error
	CachedReport(ctx context.Context, interviewID int64) (domain.TrustReport, error)
}

var _ ProctorRepository = &proctorRepository{}

type proctorRepository struct {
	dao    dao.BehaviorEventDAO
	cache  cache.TrustReportCache
	logger *elog.Component
}

func NewProctorRepository(d dao.BehaviorEventDAO, c cache.TrustReportCache) ProctorRepository {
	return &proctorRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("ProctorRepository")),
	}
}

func (r *proctorRepository) SaveEvent(ctx context.Context, interviewID int64, evt domain.Event) error {
	_, err := r.dao.Insert(ctx, r.toEntity(interviewID, evt))
	return err
}

func (r *proctorRepository) ListEvents(ctx context.Context, interviewID int64) ([]domain.Event, error) {
	entities, err := r.dao.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.BehaviorEvent) domain.Event {
		return r.toDomain(src)
	}), nil
}

func (r *proctorRepository) CacheReport(ctx context.Context, interviewID int64, report domain.TrustReport) error {
	return r.cache.Set(ctx, interviewID, report)
}

func (r *proctorRepository) CachedReport(ctx context.Context, interviewID int64) (domain.TrustReport, error) {
	return r.cache.Get(ctx, interviewID)
}

func (r *proctorRepository) toEntity(interviewID int64, evt domain.Event) dao.BehaviorEvent {
	res := dao.BehaviorEvent{
		InterviewID: interviewID,
		Type:        evt.Type.String(),
		OccurredAt:  evt.Timestamp,
	}
	var meta any
	switch {
	case evt.Paste != nil:
		meta = evt.Paste
	case evt.Devtools != nil:
		meta = evt.Devtools
	case evt.Visibility != nil:
		meta = evt.Visibility
	}
	if meta != nil {
		data, err := json.Marshal(meta)
		if err != nil {
			r.logger.Error("序列化事件附加字段失败", elog.FieldErr(err))
		} else {
			res.Meta = string(data)
		}
	}
	return res
}

func (r *proctorRepository) toDomain(entity dao.BehaviorEvent) domain.Event {
	res := domain.Event{
		Type:      domain.EventType(entity.Type),
		Timestamp: entity.OccurredAt,
	}
	if entity.Meta == "" {
		return res
	}
	var err error
	switch res.Type {
	case domain.EventTypePaste:
		var meta domain.PasteMeta
		err = json.Unmarshal([]byte(entity.Meta), &meta)
		res.Paste = &meta
	case domain.EventTypeDevtools:
		var meta domain.DevtoolsMeta
		err = json.Unmarshal([]byte(entity.Meta), &meta)
		res.Devtools = &meta
	case domain.EventTypeVisibilityChange:
		var meta domain.VisibilityMeta
		err = json.Unmarshal([]byte(entity.Meta), &meta)
		res.Visibility = &meta
	}
	if err != nil {
		// 脏数据按无附加字段的事件处理，不让一条坏记录拖垮整场重放
		r.logger.Error("反序列化事件附加字段失败",
			elog.FieldErr(err), elog.Int64("eventID", entity.Id))
		res.Paste, res.Devtools, res.Visibility = nil, nil, nil
	}
	return res
}
