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

package proctor

import (
	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/service"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/web"
)

type Event = domain.Event
type EventType = domain.EventType
type PasteMeta = domain.PasteMeta
type DevtoolsMeta = domain.DevtoolsMeta
type VisibilityMeta = domain.VisibilityMeta
type Signals = domain.Signals
type TaskSolve = domain.TaskSolve
type TrustStatus = domain.TrustStatus
type TrustReport = domain.TrustReport

type TrustService = service.TrustService

type Handler = web.Handler

const (
	TrustStatusOK         = domain.TrustStatusOK
	TrustStatusSuspicious = domain.TrustStatusSuspicious
	TrustStatusHighRisk   = domain.TrustStatusHighRisk
)
