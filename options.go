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

package spin

import (
	"github.com/maypok86/spin/stats"
)

// Options should be passed to the *WithOptions constructors to configure a lock.
//
// The zero value is valid and configures nothing.
type Options struct {
	// StatsRecorder accumulates statistics during the operation of a lock.
	//
	// Statistics are disabled by default.
	StatsRecorder stats.Recorder
	// Logger specifies the Logger implementation that will be used for reporting
	// usage violations before the lock panics.
	//
	// Logging is disabled by default.
	Logger Logger
}

func (o *Options) getStatsRecorder() stats.Recorder {
	if o != nil && o.StatsRecorder != nil {
		return o.StatsRecorder
	}
	return noopRecorder{}
}

func (o *Options) getLogger() Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return noopLogger{}
}

type noopRecorder struct{}

func (nr noopRecorder) RecordAcquisitions(count int) {}
func (nr noopRecorder) RecordFailures(count int)     {}
func (nr noopRecorder) RecordReleases(count int)     {}
