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

const behaviorEvents = "interview_behavior_events"

// BehaviorEvent 前端埋点经采集网关转发进 MQ 的消息体
type BehaviorEvent struct {
	InterviewID int64  `json:"interview_id"`
	Type        string `json:"type"`
	// Timestamp 事件发生时间，毫秒
	Timestamp int64 `json:"timestamp"`

	// 以下字段按 Type 选填
	PasteLength    int   `json:"paste_length,omitempty"`
	PasteFromEmpty bool  `json:"paste_from_empty,omitempty"`
	DevtoolsOpened bool  `json:"devtools_opened,omitempty"`
	Visible        *bool `json:"visible,omitempty"`
}
