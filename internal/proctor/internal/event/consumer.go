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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// BehaviorEventConsumer 消费采集网关转发的行为埋点。
// 埋点允许丢、允许乱序重试，信任分每次全量重放，最终结果不受消费顺序影响。
type BehaviorEventConsumer struct {
	svc      service.TrustService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewBehaviorEventConsumer(svc service.TrustService, q mq.MQ) (*BehaviorEventConsumer, error) {
	groupID := "proctor"
	consumer, err := q.Consumer(behaviorEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &BehaviorEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("BehaviorEventConsumer")),
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *BehaviorEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费行为事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *BehaviorEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt BehaviorEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.ReportEvent(ctx, evt.InterviewID, c.toDomain(evt))
	if err != nil {
		c.logger.Error("记录行为事件失败",
			elog.FieldErr(err),
			elog.Any("消息体", evt),
		)
	}
	return nil
}

func (c *BehaviorEventConsumer) toDomain(evt BehaviorEvent) domain.Event {
	res := domain.Event{
		Type:      domain.EventType(evt.Type),
		Timestamp: evt.Timestamp,
	}
	switch res.Type {
	case domain.EventTypePaste:
		res.Paste = &domain.PasteMeta{
			Length:    evt.PasteLength,
			FromEmpty: evt.PasteFromEmpty,
		}
	case domain.EventTypeDevtools:
		res.Devtools = &domain.DevtoolsMeta{Opened: evt.DevtoolsOpened}
	case domain.EventTypeVisibilityChange:
		if evt.Visible != nil {
			res.Visibility = &domain.VisibilityMeta{Visible: *evt.Visible}
		}
	}
	return res
}

func (c *BehaviorEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
