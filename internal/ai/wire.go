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

//go:build wireinject

package ai

import (
	"github.com/ecodeclub/vibecode/internal/ai/internal/service"
	"github.com/ecodeclub/vibecode/internal/ai/internal/service/llm"
	"github.com/ecodeclub/vibecode/internal/ai/internal/service/llm/zhipu"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() (*Module, error) {
	wire.Build(
		initPlatform,
		service.NewAILikenessService,
		service.NewTheoryExamineService,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

func initPlatform() llm.Service {
	hdl, err := zhipu.NewHandler(econf.GetString("ai.apikey"))
	if err != nil {
		panic(err)
	}
	return hdl
}
