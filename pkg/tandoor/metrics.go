// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package tandoor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/mchmarny/recipe-printer/pkg/errors"
)

const (
	opGetRecipe = "get_recipe"
	opSignIn    = "sign_in"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_printer_tandoor_request_duration_seconds",
			Help:    "Duration of recipe service requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	requestResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_printer_tandoor_requests_total",
			Help: "Total number of recipe service requests by result",
		},
		[]string{"operation", "result"},
	)
)

func observe(op string, start time.Time, err error) {
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	result := "ok"
	if err != nil {
		result = string(apperrors.CodeOf(err))
	}
	requestResults.WithLabelValues(op, result).Inc()
}
