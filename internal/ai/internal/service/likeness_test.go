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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/vibecode/internal/ai/internal/domain"
	aimocks "github.com/ecodeclub/vibecode/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseScore(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		wantRes float64
		wantErr bool
	}{
		{
			name:    "纯数字",
			answer:  "85",
			wantRes: 85,
		},
		{
			name:    "带说明文字",
			answer:  "评分：72，代码结构工整",
			wantRes: 72,
		},
		{
			name:    "百分号",
			answer:  "90%",
			wantRes: 90,
		},
		{
			name:    "小数",
			answer:  "0.8",
			wantRes: 0.8,
		},
		{
			name:    "解析不出来",
			answer:  "这段代码写得很好",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := parseScore(tc.answer)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestAILikenessService_CheckCode(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		err     error
		wantRes float64
		wantErr bool
	}{
		{
			name:    "百分制回复",
			answer:  "88",
			wantRes: 88,
		},
		{
			name:    "0-1刻度归一到百分制",
			answer:  "0.9",
			wantRes: 90,
		},
		{
			name:    "调用失败向上返回错误",
			err:     errors.New("mock error"),
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			llmSvc := aimocks.NewMockService(ctrl)
			llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				Return(domain.LLMResponse{Answer: tc.answer}, tc.err)

			svc := NewAILikenessService(llmSvc)
			res, err := svc.CheckCode(context.Background(), "def two_sum(): ...")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
