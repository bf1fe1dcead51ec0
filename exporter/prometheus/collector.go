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

// Package prometheus exposes lock usage statistics to Prometheus.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maypok86/spin/stats"
)

// StatsProvider provides lock usage statistics.
type StatsProvider interface {
	Snapshot() stats.Stats
}

// Collector collects statistics from a lock's stats.Counter and exposes them to Prometheus.
type Collector struct {
	provider         StatsProvider
	acquisitionsDesc *prometheus.Desc
	failuresDesc     *prometheus.Desc
	releasesDesc     *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - acquisitions
// - failures
// - releases
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		acquisitionsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "acquisitions"),
			"Number of acquisition attempts that were granted a guard.",
			nil, nil,
		),
		failuresDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "failures"),
			"Number of acquisition attempts refused due to contention.",
			nil, nil,
		),
		releasesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "releases"),
			"Number of guards that have been released.",
			nil, nil,
		),
	}
}

// Describe implements the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquisitionsDesc
	ch <- c.failuresDesc
	ch <- c.releasesDesc
}

// Collect implements the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.provider.Snapshot()

	ch <- prometheus.MustNewConstMetric(
		c.acquisitionsDesc,
		prometheus.CounterValue,
		float64(s.Acquisitions()),
	)
	ch <- prometheus.MustNewConstMetric(
		c.failuresDesc,
		prometheus.CounterValue,
		float64(s.Failures()),
	)
	ch <- prometheus.MustNewConstMetric(
		c.releasesDesc,
		prometheus.CounterValue,
		float64(s.Releases()),
	)
}
