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
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/vibecode/internal/pkg/mqx"
)

const FinishedTopic = "interview_finished_events"

type FinishedEventProducer mqx.Producer[InterviewFinishedEvent]

func NewFinishedEventProducer(q mq.MQ) (FinishedEventProducer, error) {
	return mqx.NewGeneralProducer[InterviewFinishedEvent](q, FinishedTopic)
}

// InterviewFinishedEvent 面试结算完成后对外广播的事件，
// 下游（通知、报表）按 interview_id 拉取详情
type InterviewFinishedEvent struct {
	InterviewID  int64   `json:"interview_id"`
	SN           string  `json:"sn"`
	OverallScore float64 `json:"overall_score"`
	Grade        string  `json:"grade"`
	Decision     string  `json:"decision"`
	TrustStatus  string  `json:"trust_status"`
}
