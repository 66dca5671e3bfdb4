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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/vibecode/internal/proctor/internal/domain"
	"github.com/pkg/errors"
)

var ErrReportNotFound = errors.New("信任报告未缓存")

type TrustReportCache interface {
	Set(ctx context.Context, interviewID int64, report domain.TrustReport) error
	Get(ctx context.Context, interviewID int64) (domain.TrustReport, error)
}

var _ TrustReportCache = &trustReportCache{}

type trustReportCache struct {
	ec ecache.Cache
}

func NewTrustReportCache(ec ecache.Cache) TrustReportCache {
	return &trustReportCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "trust:report:",
		},
	}
}

func (c *trustReportCache) Set(ctx context.Context, interviewID int64, report domain.TrustReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "序列化信任报告失败")
	}
	return c.ec.Set(ctx, c.key(interviewID), string(data), 24*time.Hour)
}

func (c *trustReportCache) Get(ctx context.Context, interviewID int64) (domain.TrustReport, error) {
	val := c.ec.Get(ctx, c.key(interviewID))
	if val.KeyNotFound() {
		return domain.TrustReport{}, ErrReportNotFound
	}
	if val.Err != nil {
		return domain.TrustReport{}, val.Err
	}
	data, err := val.String()
	if err != nil {
		return domain.TrustReport{}, err
	}
	var report domain.TrustReport
	err = json.Unmarshal([]byte(data), &report)
	return report, errors.Wrap(err, "反序列化信任报告失败")
}

func (c *trustReportCache) key(interviewID int64) string {
	return fmt.Sprintf("%d", interviewID)
}
