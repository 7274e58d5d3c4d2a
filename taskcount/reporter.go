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

package taskcount

import (
	"log"

	ecsmetrics "github.com/Signiant/ecs-custom-metrics"
	"github.com/Signiant/ecs-custom-metrics/aws"
	"github.com/Signiant/ecs-custom-metrics/constants"
	"github.com/Signiant/ecs-custom-metrics/metadata"
	"github.com/Signiant/ecs-custom-metrics/metric"
	"github.com/Signiant/ecs-custom-metrics/tasks"
)

// Reporter publishes TaskCount metrics.
type Reporter struct {
	client    aws.Client
	publisher metric.Publisher
	debugLog  *log.Logger
	errorLog  *log.Logger
}

// NewReporter returns a Reporter that reads tasks through client and
// publishes through publisher.
func NewReporter(client aws.Client, publisher metric.Publisher, logs ecsmetrics.Logs) Reporter {
	return Reporter{
		client:    client,
		publisher: publisher,
		debugLog:  logs.Debug,
		errorLog:  logs.Error,
	}
}

func taskCountDatapoint(family string, count int, dims ...metric.Dimension) metric.Datapoint {
	return metric.Datapoint{
		Namespace: constants.Namespace,
		Name:      constants.TaskCountMetric,
		Dimensions: append(
			dims,
			metric.Dimension{Name: constants.TaskFamilyDimension, Value: family},
		),
		Value: float64(count),
		Unit:  metric.UnitCount,
	}
}

func clusterDimension(cluster string) metric.Dimension {
	return metric.Dimension{Name: constants.ClusterDimension, Value: cluster}
}

// clusterFilter selects every task in the cluster belonging to the family,
// by service name for service tasks and by task definition family otherwise.
func clusterFilter(family string, fc *tasks.FamilyCount) aws.TaskFilter {
	if fc.Type == tasks.GroupService {
		return aws.TaskFilter{ServiceName: family}
	}
	return aws.TaskFilter{Family: family}
}

func (r Reporter) aggregate(cluster string, filter aws.TaskFilter) (tasks.FamilyAggregate, error) {
	arns, err := r.client.ListTasks(cluster, filter)
	if err != nil {
		return nil, err
	}
	r.debugLog.Printf("found %d running tasks in %s %+v", len(arns), cluster, filter)

	described, err := r.client.DescribeTasks(cluster, arns)
	if err != nil {
		return nil, err
	}

	agg := tasks.Aggregate(described)
	for _, family := range agg.Conflicts() {
		r.errorLog.Printf(
			"family %s has tasks of more than one group type, counting all as %s",
			family,
			agg[family].Type,
		)
	}

	return agg, nil
}

// ReportInstance publishes, for each task family running on the container
// instance, the number of its tasks on that instance and then the number of
// its tasks in the whole cluster.
func (r Reporter) ReportInstance(id metadata.Identity) error {
	agg, err := r.aggregate(id.Cluster, aws.TaskFilter{ContainerInstance: id.ContainerInstanceARN})
	if err != nil {
		return err
	}

	families := agg.Families()

	for _, family := range families {
		dp := taskCountDatapoint(
			family,
			agg[family].Count,
			clusterDimension(id.Cluster),
			metric.Dimension{Name: constants.InstanceIDDimension, Value: id.InstanceID},
		)
		if err := r.publisher.Publish(dp); err != nil {
			return err
		}
	}

	for _, family := range families {
		arns, err := r.client.ListTasks(id.Cluster, clusterFilter(family, agg[family]))
		if err != nil {
			return err
		}

		dp := taskCountDatapoint(family, len(arns), clusterDimension(id.Cluster))
		if err := r.publisher.Publish(dp); err != nil {
			return err
		}
	}

	return nil
}

// ReportCluster publishes the number of running tasks of each task family in
// the cluster.
func (r Reporter) ReportCluster(cluster string) error {
	agg, err := r.aggregate(cluster, aws.TaskFilter{})
	if err != nil {
		return err
	}

	for _, family := range agg.Families() {
		dp := taskCountDatapoint(family, agg[family].Count, clusterDimension(cluster))
		if err := r.publisher.Publish(dp); err != nil {
			return err
		}
	}

	return nil
}
