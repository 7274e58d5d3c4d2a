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

// Package aws adapts the ECS, CloudWatch and CloudFormation APIs to the
// operations ecs-metrics needs.
package aws

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ecs"

	"github.com/turbinelabs/nonstdlib/ptr"

	"github.com/Signiant/ecs-custom-metrics/constants"
	"github.com/Signiant/ecs-custom-metrics/metric"
	"github.com/Signiant/ecs-custom-metrics/tasks"
)

const (
	DescribeTasksWindowSz          = 100
	ListContainerInstancesPageSz   = 50
	ReservationStatisticsPeriodSec = 60
)

//go:generate $TBN_HOME/scripts/mockgen_internal.sh -type ecsInterface,cloudwatchInterface,cloudformationInterface -source $GOFILE -destination mock_$GOFILE -package $GOPACKAGE --write_package_comment=false

// TaskFilter narrows a task listing. At most one of ContainerInstance,
// ServiceName and Family is normally set; all empty lists every running task
// in the cluster.
type TaskFilter struct {
	ContainerInstance string
	ServiceName       string
	Family            string
}

// Client represents an adapter that handles making calls to AWS.
type Client interface {
	metric.Putter

	// ListTasks returns the ARNs of running tasks in a cluster matching the
	// filter, following continuation tokens until the last page. If a page
	// request fails with a server-side status the ARNs collected so far are
	// returned without error and the failure is logged. Other errors are
	// returned.
	ListTasks(cluster string, filter TaskFilter) ([]string, error)

	// DescribeTasks loads the given tasks. Tasks ECS reports as failures are
	// logged and omitted.
	DescribeTasks(cluster string, taskARNs []string) ([]tasks.Task, error)

	// CountContainerInstances returns the number of container instances
	// registered to the cluster, with the same paging and failure behavior as
	// ListTasks.
	CountContainerInstances(cluster string) (int, error)

	// ReservationAverage returns the mean of the one minute Average
	// datapoints of an AWS/ECS cluster reservation metric between start and
	// end. The bool is false if CloudWatch returned no datapoints.
	ReservationAverage(cluster, metricName string, start, end time.Time) (float64, bool, error)

	// StackParameters returns the parameters of a CloudFormation stack as a
	// map of key to value.
	StackParameters(stackName string) (map[string]string, error)
}

// ecsInterface is an interface that allows us to mock an ECS client, see
// github.com/aws/aws-sdk-go/service/ecs/api.go for method docs.
type ecsInterface interface {
	ListTasks(*ecs.ListTasksInput) (*ecs.ListTasksOutput, error)
	DescribeTasks(*ecs.DescribeTasksInput) (*ecs.DescribeTasksOutput, error)
	ListContainerInstances(
		*ecs.ListContainerInstancesInput) (*ecs.ListContainerInstancesOutput, error)
}

// cloudwatchInterface is an interface that allows us to mock a CloudWatch
// client, see github.com/aws/aws-sdk-go/service/cloudwatch/api.go.
type cloudwatchInterface interface {
	GetMetricStatistics(
		*cloudwatch.GetMetricStatisticsInput) (*cloudwatch.GetMetricStatisticsOutput, error)
	PutMetricData(*cloudwatch.PutMetricDataInput) (*cloudwatch.PutMetricDataOutput, error)
}

// cloudformationInterface is an interface that allows us to mock a
// CloudFormation client, see
// github.com/aws/aws-sdk-go/service/cloudformation/api.go.
type cloudformationInterface interface {
	DescribeStacks(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
}

type awsAdapter struct {
	ecs            ecsInterface
	cloudwatch     cloudwatchInterface
	cloudformation cloudformationInterface
	errorLog       *log.Logger

	describeTasksWindowSz int
}

var _ Client = awsAdapter{}

func newClient(
	ecs ecsInterface,
	cw cloudwatchInterface,
	cfn cloudformationInterface,
	errorLog *log.Logger,
) Client {
	return awsAdapter{ecs, cw, cfn, errorLog, DescribeTasksWindowSz}
}

var badWindowSize = errors.New("invalid window size")

// isListingAnomaly reports whether a listing call failed because the service
// answered with an unexpected server-side status, as opposed to a network,
// credential or throttling failure.
func isListingAnomaly(err error) bool {
	if reqErr, ok := err.(awserr.RequestFailure); ok {
		return reqErr.StatusCode() >= 500
	}
	return false
}

func hasMore(token *string) bool {
	return ptr.StringValue(token) != ""
}

func (a awsAdapter) ListTasks(cluster string, filter TaskFilter) ([]string, error) {
	arg := &ecs.ListTasksInput{Cluster: ptr.String(cluster)}
	if filter.ContainerInstance != "" {
		arg.ContainerInstance = ptr.String(filter.ContainerInstance)
	}
	if filter.ServiceName != "" {
		arg.ServiceName = ptr.String(filter.ServiceName)
	}
	if filter.Family != "" {
		arg.Family = ptr.String(filter.Family)
	}

	taskARNs := []string{}

	moreTasks := true
	for moreTasks {
		out, err := a.ecs.ListTasks(arg)
		if err != nil {
			if isListingAnomaly(err) {
				a.errorLog.Printf(
					"listing tasks in %s %+v stopped after %d tasks: %s",
					cluster,
					filter,
					len(taskARNs),
					err.Error(),
				)
				return taskARNs, nil
			}
			return nil, err
		}
		if out == nil {
			a.errorLog.Printf("empty task listing response for %s %+v", cluster, filter)
			return taskARNs, nil
		}

		for _, sptr := range out.TaskArns {
			taskARNs = append(taskARNs, ptr.StringValue(sptr))
		}

		arg.NextToken = out.NextToken
		moreTasks = hasMore(arg.NextToken)
	}

	return taskARNs, nil
}

func min(i, j int) int {
	if i < j {
		return i
	}
	return j
}

func sliceWalk(windowSz int, input []*string, fn func([]*string) error) error {
	if windowSz < 1 {
		return badWindowSize
	}

	cnt := len(input)
	for i := 0; i < cnt; i += windowSz {
		err := fn(input[i : i+min(windowSz, cnt-i)])
		if err != nil {
			return err
		}
	}
	return nil
}

func (a awsAdapter) DescribeTasks(cluster string, taskARNs []string) ([]tasks.Task, error) {
	if len(taskARNs) == 0 {
		return nil, nil
	}

	result := make([]tasks.Task, 0, len(taskARNs))
	err := sliceWalk(a.describeTasksWindowSz, ptr.StringSlice(taskARNs), func(ids []*string) error {
		arg := &ecs.DescribeTasksInput{Cluster: ptr.String(cluster), Tasks: ids}

		out, err := a.ecs.DescribeTasks(arg)
		if err != nil {
			return err
		}

		for _, f := range out.Failures {
			a.errorLog.Printf("%s: %s", ptr.StringValue(f.Arn), ptr.StringValue(f.Reason))
		}

		for _, t := range out.Tasks {
			if t == nil {
				continue
			}
			result = append(result, tasks.Task{
				ARN:   ptr.StringValue(t.TaskArn),
				Group: ptr.StringValue(t.Group),
			})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (a awsAdapter) CountContainerInstances(cluster string) (int, error) {
	arg := &ecs.ListContainerInstancesInput{
		Cluster:    ptr.String(cluster),
		MaxResults: aws.Int64(ListContainerInstancesPageSz),
	}

	count := 0

	moreInstances := true
	for moreInstances {
		out, err := a.ecs.ListContainerInstances(arg)
		if err != nil {
			if isListingAnomaly(err) {
				a.errorLog.Printf(
					"listing container instances in %s stopped after %d: %s",
					cluster,
					count,
					err.Error(),
				)
				return count, nil
			}
			return 0, err
		}
		if out == nil {
			a.errorLog.Printf("empty container instance listing response for %s", cluster)
			return count, nil
		}

		count += len(out.ContainerInstanceArns)

		arg.NextToken = out.NextToken
		moreInstances = hasMore(arg.NextToken)
	}

	return count, nil
}

func (a awsAdapter) ReservationAverage(
	cluster string,
	metricName string,
	start time.Time,
	end time.Time,
) (float64, bool, error) {
	arg := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  ptr.String(constants.ReservationNamespace),
		MetricName: ptr.String(metricName),
		Dimensions: []*cloudwatch.Dimension{
			{
				Name:  ptr.String(constants.ReservationDimension),
				Value: ptr.String(cluster),
			},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int64(ReservationStatisticsPeriodSec),
		Statistics: []*string{ptr.String(cloudwatch.StatisticAverage)},
	}

	out, err := a.cloudwatch.GetMetricStatistics(arg)
	if err != nil {
		return 0, false, err
	}

	if len(out.Datapoints) == 0 {
		return 0, false, nil
	}

	total := 0.0
	for _, dp := range out.Datapoints {
		total += aws.Float64Value(dp.Average)
	}

	return total / float64(len(out.Datapoints)), true, nil
}

func (a awsAdapter) StackParameters(stackName string) (map[string]string, error) {
	arg := &cloudformation.DescribeStacksInput{StackName: ptr.String(stackName)}
	out, err := a.cloudformation.DescribeStacks(arg)
	if err != nil {
		return nil, err
	}

	if len(out.Stacks) == 0 || out.Stacks[0] == nil {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	params := map[string]string{}
	for _, p := range out.Stacks[0].Parameters {
		if p == nil {
			continue
		}
		params[ptr.StringValue(p.ParameterKey)] = ptr.StringValue(p.ParameterValue)
	}

	return params, nil
}

func (a awsAdapter) PutMetric(dp metric.Datapoint) error {
	arg := &cloudwatch.PutMetricDataInput{
		Namespace:  ptr.String(dp.Namespace),
		MetricData: []*cloudwatch.MetricDatum{metricDatum(dp)},
	}

	_, err := a.cloudwatch.PutMetricData(arg)
	return err
}

func metricDatum(dp metric.Datapoint) *cloudwatch.MetricDatum {
	dims := make([]*cloudwatch.Dimension, 0, len(dp.Dimensions))
	for _, d := range dp.Dimensions {
		dims = append(dims, &cloudwatch.Dimension{
			Name:  ptr.String(d.Name),
			Value: ptr.String(d.Value),
		})
	}

	datum := &cloudwatch.MetricDatum{
		MetricName: ptr.String(dp.Name),
		Dimensions: dims,
		Value:      aws.Float64(dp.Value),
	}
	if dp.Unit != "" {
		datum.Unit = ptr.String(dp.Unit)
	}
	if !dp.Timestamp.IsZero() {
		datum.Timestamp = aws.Time(dp.Timestamp)
	}

	return datum
}
