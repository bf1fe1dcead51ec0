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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maypok86/spin/stats"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	var o *Options
	require.IsType(t, noopRecorder{}, o.getStatsRecorder())
	require.IsType(t, noopLogger{}, o.getLogger())

	o = &Options{}
	require.IsType(t, noopRecorder{}, o.getStatsRecorder())
	require.IsType(t, noopLogger{}, o.getLogger())
}

func TestOptions_Configured(t *testing.T) {
	t.Parallel()

	counter := stats.NewCounter()
	cl := &capturingLogger{}
	o := &Options{
		StatsRecorder: counter,
		Logger:        cl,
	}
	require.Same(t, counter, o.getStatsRecorder())
	require.Same(t, cl, o.getLogger())
}
