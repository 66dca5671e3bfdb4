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

// Grade 定级用的五档职级。全系统持久化的最终职级都用这套档位，
// 四档变体只在 FourLevelGrade 里出现，两套档位之间只能显式换算。
type Grade string

const (
	GradeJunior     Grade = "junior"
	GradeJuniorPlus Grade = "junior+"
	GradeMiddle     Grade = "middle"
	GradeMiddlePlus Grade = "middle+"
	GradeSenior     Grade = "senior"
)

var gradeOrder = []Grade{GradeJunior, GradeJuniorPlus, GradeMiddle, GradeMiddlePlus, GradeSenior}

func (g Grade) String() string {
	return string(g)
}

// Index 未识别的职级一律按 middle 处理，定级汇总不因脏数据中断
func (g Grade) Index() int {
	for i, grade := range gradeOrder {
		if grade == g {
			return i
		}
	}
	return 2
}

// GradeFromIndex 下标越界时夹到边界档位
func GradeFromIndex(idx int) Grade {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(gradeOrder) {
		idx = len(gradeOrder) - 1
	}
	return gradeOrder[idx]
}

// FourLevelGrade 旧简历解析链路用的四档职级
type FourLevelGrade string

const (
	FourLevelIntern FourLevelGrade = "intern"
	FourLevelJunior FourLevelGrade = "junior"
	FourLevelMiddle FourLevelGrade = "middle"
	FourLevelSenior FourLevelGrade = "senior"
)

var fourLevelOrder = []FourLevelGrade{FourLevelIntern, FourLevelJunior, FourLevelMiddle, FourLevelSenior}

func (g FourLevelGrade) String() string {
	return string(g)
}

func (g FourLevelGrade) Index() int {
	for i, grade := range fourLevelOrder {
		if grade == g {
			return i
		}
	}
	return 2
}

func FourLevelFromIndex(idx int) FourLevelGrade {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(fourLevelOrder) {
		idx = len(fourLevelOrder) - 1
	}
	return fourLevelOrder[idx]
}

// ToFiveLevel 四档换算到五档：intern 并入 junior，其余同名对位
func (g FourLevelGrade) ToFiveLevel() Grade {
	switch g {
	case FourLevelIntern, FourLevelJunior:
		return GradeJunior
	case FourLevelMiddle:
		return GradeMiddle
	case FourLevelSenior:
		return GradeSenior
	default:
		return GradeMiddle
	}
}

// GradeCalculation 一场面试的定级快照。完成面试时整体算一次落库，
// 重算覆盖旧快照，输入不变时重算结果恒等。
type GradeCalculation struct {
	InterviewID int64

	// 输入
	YearsOfExperience float64
	SelfClaimedGrade  Grade

	// 输出
	CodingScore  float64
	TheoryScore  float64
	OverallScore float64
	GradeIndex   int
	Grade        Grade
	// ProgressPercent 距下一档的进度 [0,100]
	ProgressPercent float64
	// PointsToNext 距下一档还差多少总分，顶档为 0
	PointsToNext float64
}
