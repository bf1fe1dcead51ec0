// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

package prometheus

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/maypok86/spin"
	"github.com/maypok86/spin/stats"
)

func TestCollector_Describe(t *testing.T) {
	counter := stats.NewCounter()
	collector := NewCollector("test", "lock", counter)
	descsCh := make(chan *prometheus.Desc, 3)

	collector.Describe(descsCh)

	close(descsCh)

	descs := testutil.CollectAndCount(
		collector,
		"test_lock_acquisitions",
		"test_lock_failures",
		"test_lock_releases",
	)
	if descs != 3 {
		t.Errorf("unexpected number of descs: %d", descs)
	}
}

func TestCollector_Collect(t *testing.T) {
	counter := stats.NewCounter()
	l := spin.NewWithOptions(0, &spin.Options{
		StatsRecorder: counter,
	})
	g, ok := l.TryLock()
	if !ok {
		t.Fatal("the lock should have been acquired")
	}
	if _, ok := l.TryLock(); ok {
		t.Fatal("the lock should have been held")
	}
	g.Release()

	collector := NewCollector("test", "lock", counter)
	metricsCh := make(chan prometheus.Metric, 3)

	collector.Collect(metricsCh)

	close(metricsCh)

	metrics := testutil.CollectAndCount(
		collector,
		"test_lock_acquisitions",
		"test_lock_failures",
		"test_lock_releases",
	)
	if metrics != 3 {
		t.Errorf("unexpected number of metrics: %d", metrics)
	}

	expected := strings.NewReader(`# HELP test_lock_acquisitions Number of acquisition attempts that were granted a guard.
# TYPE test_lock_acquisitions counter
test_lock_acquisitions 1
# HELP test_lock_failures Number of acquisition attempts refused due to contention.
# TYPE test_lock_failures counter
test_lock_failures 1
# HELP test_lock_releases Number of guards that have been released.
# TYPE test_lock_releases counter
test_lock_releases 1
`)
	if err := testutil.CollectAndCompare(collector, expected); err != nil {
		t.Errorf("unexpected metric values: %v", err)
	}
}
