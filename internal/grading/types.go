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

package grading

import (
	"github.com/ecodeclub/vibecode/internal/grading/internal/domain"
	"github.com/ecodeclub/vibecode/internal/grading/internal/service"
	"github.com/ecodeclub/vibecode/internal/grading/internal/web"
)

type Grade = domain.Grade
type FourLevelGrade = domain.FourLevelGrade
type GradeCalculation = domain.GradeCalculation

type GradeService = service.GradeService

type Handler = web.Handler

const (
	GradeJunior     = domain.GradeJunior
	GradeJuniorPlus = domain.GradeJuniorPlus
	GradeMiddle     = domain.GradeMiddle
	GradeMiddlePlus = domain.GradeMiddlePlus
	GradeSenior     = domain.GradeSenior
)

func GradeFromIndex(idx int) Grade {
	return domain.GradeFromIndex(idx)
}
