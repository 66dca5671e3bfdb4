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

package domain

// EventType 前端上报的行为事件类型
type EventType string

const (
	EventTypeKeydown          EventType = "keydown"
	EventTypePaste            EventType = "paste"
	EventTypeCopy             EventType = "copy"
	EventTypeCut              EventType = "cut"
	EventTypeFocus            EventType = "focus"
	EventTypeBlur             EventType = "blur"
	EventTypeVisibilityChange EventType = "visibility_change"
	EventTypeDevtools         EventType = "devtools"
)

func (e EventType) String() string {
	return string(e)
}

// PasteMeta 粘贴事件的载荷
type PasteMeta struct {
	// 粘贴内容长度（字符数）
	Length int `json:"length"`
	// 是否粘贴进了空编辑器
	FromEmpty bool `json:"fromEmpty"`
}

// DevtoolsMeta 开发者工具事件的载荷
type DevtoolsMeta struct {
	Opened bool `json:"opened"`
}

// VisibilityMeta 页面可见性变化事件的载荷
type VisibilityMeta struct {
	Visible bool `json:"visible"`
}

// Event 行为事件。载荷是按事件类型封闭的结构体，
// 不同类型只会带自己的那一份，访问时不用再猜 map 里有什么键。
type Event struct {
	Type EventType
	// 毫秒时间戳
	Timestamp int64

	Paste      *PasteMeta
	Devtools   *DevtoolsMeta
	Visibility *VisibilityMeta
}

// IsFocusLost blur 或者切到不可见都算一次失焦
func (e Event) IsFocusLost() bool {
	if e.Type == EventTypeBlur {
		return true
	}
	return e.Type == EventTypeVisibilityChange &&
		e.Visibility != nil && !e.Visibility.Visible
}

// IsFocusGained 重新聚焦或者切回可见
func (e Event) IsFocusGained() bool {
	if e.Type == EventTypeFocus {
		return true
	}
	return e.Type == EventTypeVisibilityChange &&
		e.Visibility != nil && e.Visibility.Visible
}
