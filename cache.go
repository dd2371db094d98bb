// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rebuilding a million-key batch takes seconds, keep reports for 30 minutes
	reportCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	reportCacheCleanup = 5 * time.Minute
)

// NewReportCache creates a cache for batch reports
func NewReportCache() *cache.Cache {
	return cache.New(reportCacheExpiration, reportCacheCleanup)
}

// reportKey identifies a report by engine and by the exact file contents
// it was built from (path, size and modification time).
func reportKey(path, engine string, info os.FileInfo, checked bool) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return fmt.Sprintf("%s|%s|%d|%d|%t", normalizeEngine(engine), path, info.Size(), info.ModTime().UnixNano(), checked)
}

func CacheReport(c *cache.Cache, info os.FileInfo, report *BatchReport) {
	if c == nil || report == nil {
		return
	}
	c.Set(reportKey(report.Path, report.Engine, info, report.Checked), report, reportCacheExpiration)
}

// GetReport returns the cached report or nil.
func GetReport(c *cache.Cache, path, engine string, info os.FileInfo, checked bool) *BatchReport {
	if c == nil {
		return nil
	}
	val, ok := c.Get(reportKey(path, engine, info, checked))
	if !ok {
		return nil
	}
	return val.(*BatchReport)
}
