/*
Copyright 2018 Turbine Labs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scaledown

import (
	"log"
	"time"

	tbntime "github.com/turbinelabs/nonstdlib/time"

	"github.com/Signiant/ecs-custom-metrics/aws"
	"github.com/Signiant/ecs-custom-metrics/constants"
	"github.com/Signiant/ecs-custom-metrics/metric"
)

// StatisticsWindow is how far back reservation averages look.
const StatisticsWindow = 5 * time.Minute

// Result is the outcome of one evaluation.
type Result struct {
	CPU         float64
	HaveCPU     bool
	Memory      float64
	HaveMemory  bool
	ClusterSize int
	Decision    int
}

// Datapoint returns the ScaleDown metric for the cluster.
func (r Result) Datapoint(cluster string) metric.Datapoint {
	return metric.Datapoint{
		Namespace: constants.Namespace,
		Name:      constants.ScaleDownMetric,
		Dimensions: []metric.Dimension{
			{Name: constants.ClusterDimension, Value: cluster},
		},
		Value: float64(r.Decision),
	}
}

// below compares after truncating avg to an integer, so 49.9 is below 50 and
// 50.9 is not.
func below(avg float64, threshold int) bool {
	return int(avg) < threshold
}

// Decide returns 1 if both reservation averages are below their thresholds
// and the cluster is larger than its minimum size, 0 otherwise.
func Decide(cpu, mem float64, clusterSize int, t Thresholds) int {
	if below(cpu, t.CPU) && below(mem, t.Memory) && clusterSize > t.MinClusterSize {
		return 1
	}
	return 0
}

// Evaluator decides whether a cluster should scale down.
type Evaluator struct {
	client   aws.Client
	time     tbntime.Source
	debugLog *log.Logger
	infoLog  *log.Logger
}

// NewEvaluator returns an Evaluator that reads reservation statistics and
// cluster size through client.
func NewEvaluator(
	client aws.Client,
	src tbntime.Source,
	debugLog *log.Logger,
	infoLog *log.Logger,
) Evaluator {
	return Evaluator{client, src, debugLog, infoLog}
}

// Evaluate computes the scale down decision for cluster. A resource with no
// datapoints in the window never counts as below its threshold.
func (e Evaluator) Evaluate(cluster string, t Thresholds) (Result, error) {
	end := e.time.Now()
	start := end.Add(-StatisticsWindow)

	r := Result{}

	var err error
	r.CPU, r.HaveCPU, err = e.client.ReservationAverage(
		cluster,
		constants.CPUReservationMetric,
		start,
		end,
	)
	if err != nil {
		return Result{}, err
	}

	r.Memory, r.HaveMemory, err = e.client.ReservationAverage(
		cluster,
		constants.MemoryReservationMetric,
		start,
		end,
	)
	if err != nil {
		return Result{}, err
	}

	r.ClusterSize, err = e.client.CountContainerInstances(cluster)
	if err != nil {
		return Result{}, err
	}

	e.logAverage("CPU", r.CPU, r.HaveCPU, t.CPU)
	e.logAverage("memory", r.Memory, r.HaveMemory, t.Memory)
	e.debugLog.Printf("cluster %s has %d container instances, minimum %d", cluster, r.ClusterSize, t.MinClusterSize)

	if !r.HaveCPU || !r.HaveMemory {
		e.infoLog.Printf("missing reservation statistics for %s, not scaling down", cluster)
		return r, nil
	}

	r.Decision = Decide(r.CPU, r.Memory, r.ClusterSize, t)

	switch {
	case r.Decision == 1:
		e.infoLog.Printf(
			"CPU and memory are below thresholds and %s is above its minimum size, scaling down",
			cluster,
		)
	case below(r.CPU, t.CPU) && below(r.Memory, t.Memory):
		e.debugLog.Printf(
			"CPU and memory are below thresholds, but %s is already at its minimum size",
			cluster,
		)
	}

	return r, nil
}

func (e Evaluator) logAverage(resource string, avg float64, ok bool, threshold int) {
	if !ok {
		e.debugLog.Printf("no %s reservation datapoints in the last %s", resource, StatisticsWindow)
		return
	}

	verdict := "does not need"
	if below(avg, threshold) {
		verdict = "needs"
	}
	e.debugLog.Printf(
		"average %s reservation over the last %s = %8.2f, threshold %d: %s a scale down",
		resource,
		StatisticsWindow,
		avg,
		threshold,
		verdict,
	)
}
