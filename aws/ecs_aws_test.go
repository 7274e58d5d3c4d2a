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

package aws

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/golang/mock/gomock"

	"github.com/turbinelabs/nonstdlib/ptr"
	"github.com/turbinelabs/test/assert"
	testlog "github.com/turbinelabs/test/log"

	"github.com/Signiant/ecs-custom-metrics/metric"
	"github.com/Signiant/ecs-custom-metrics/tasks"
)

var (
	boom        = errors.New("boooooom")
	serverError = awserr.NewRequestFailure(awserr.New("ServerException", "kaboom", nil), 500, "req-1")
	throttled   = awserr.NewRequestFailure(awserr.New("ThrottlingException", "slow down", nil), 400, "req-2")
)

type adapterMocks struct {
	ecs *mockEcsInterface
	cw  *mockCloudwatchInterface
	cfn *mockCloudformationInterface
	log interface{ String() string }
}

func mkAwsAdapter(t *testing.T) (awsAdapter, adapterMocks, func()) {
	ctrl := gomock.NewController(assert.Tracing(t))
	errorLog, buf := testlog.NewBufferLogger()
	m := adapterMocks{
		ecs: newMockEcsInterface(ctrl),
		cw:  newMockCloudwatchInterface(ctrl),
		cfn: newMockCloudformationInterface(ctrl),
		log: buf,
	}
	return awsAdapter{m.ecs, m.cw, m.cfn, errorLog, 2}, m, ctrl.Finish
}

func TestNewClientWindowSize(t *testing.T) {
	c, ok := newClient(nil, nil, nil, nil).(awsAdapter)
	assert.True(t, ok)
	assert.Equal(t, c.describeTasksWindowSz, 100)
}

var sliceWalkInput = ptr.StringSlice([]string{"one", "two", "three", "four", "five", "six", "seven"})

func TestSliceWalkFull(t *testing.T) {
	seen := [][]*string{}

	assert.Nil(t,
		sliceWalk(3, sliceWalkInput, func(in []*string) error {
			seen = append(seen, in)
			return nil
		}),
	)

	assert.DeepEqual(t, seen, [][]*string{
		ptr.StringSlice([]string{"one", "two", "three"}),
		ptr.StringSlice([]string{"four", "five", "six"}),
		ptr.StringSlice([]string{"seven"}),
	})
}

func TestSliceWalkAbort(t *testing.T) {
	seen := [][]*string{}
	i := 0

	assert.DeepEqual(t,
		sliceWalk(3, sliceWalkInput, func(in []*string) error {
			i++
			seen = append(seen, in)

			if i == 2 {
				return boom
			}
			return nil
		}),
		boom,
	)

	assert.Equal(t, len(seen), 2)
}

func TestSliceWalkBadWindow(t *testing.T) {
	assert.DeepEqual(t, sliceWalk(0, sliceWalkInput, nil), badWindowSize)
	assert.DeepEqual(t, sliceWalk(-1, sliceWalkInput, nil), badWindowSize)
}

func TestIsListingAnomaly(t *testing.T) {
	assert.True(t, isListingAnomaly(serverError))
	assert.False(t, isListingAnomaly(throttled))
	assert.False(t, isListingAnomaly(boom))
	assert.False(t, isListingAnomaly(nil))
}

func listTasksInput(token *string) *ecs.ListTasksInput {
	return &ecs.ListTasksInput{
		Cluster:           ptr.String("prod"),
		ContainerInstance: ptr.String("ci-arn"),
		NextToken:         token,
	}
}

func TestListTasksPaginates(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	// the adapter reuses its input, so match on the token seen at call time
	tokens := []*string{}
	recordToken := func(in *ecs.ListTasksInput) {
		tokens = append(tokens, in.NextToken)
	}

	gomock.InOrder(
		m.ecs.EXPECT().ListTasks(gomock.Any()).Do(recordToken).Return(
			&ecs.ListTasksOutput{
				TaskArns:  ptr.StringSlice([]string{"t1", "t2"}),
				NextToken: ptr.String("page2"),
			},
			nil,
		),
		m.ecs.EXPECT().ListTasks(gomock.Any()).Do(recordToken).Return(
			&ecs.ListTasksOutput{TaskArns: ptr.StringSlice([]string{"t3"})},
			nil,
		),
	)

	got, err := a.ListTasks("prod", TaskFilter{ContainerInstance: "ci-arn"})
	assert.Nil(t, err)
	assert.ArrayEqual(t, got, []string{"t1", "t2", "t3"})
	assert.DeepEqual(t, tokens, []*string{nil, ptr.String("page2")})
}

func TestListTasksFilters(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	gomock.InOrder(
		m.ecs.EXPECT().
			ListTasks(&ecs.ListTasksInput{Cluster: ptr.String("prod"), ServiceName: ptr.String("web")}).
			Return(&ecs.ListTasksOutput{TaskArns: ptr.StringSlice([]string{"s1"})}, nil),
		m.ecs.EXPECT().
			ListTasks(&ecs.ListTasksInput{Cluster: ptr.String("prod"), Family: ptr.String("batch")}).
			Return(&ecs.ListTasksOutput{}, nil),
		m.ecs.EXPECT().
			ListTasks(&ecs.ListTasksInput{Cluster: ptr.String("prod")}).
			Return(&ecs.ListTasksOutput{TaskArns: ptr.StringSlice([]string{"a", "b"})}, nil),
	)

	got, err := a.ListTasks("prod", TaskFilter{ServiceName: "web"})
	assert.Nil(t, err)
	assert.ArrayEqual(t, got, []string{"s1"})

	got, err = a.ListTasks("prod", TaskFilter{Family: "batch"})
	assert.Nil(t, err)
	assert.Equal(t, len(got), 0)

	got, err = a.ListTasks("prod", TaskFilter{})
	assert.Nil(t, err)
	assert.ArrayEqual(t, got, []string{"a", "b"})
}

func TestListTasksEmptyTokenEndsListing(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.ecs.EXPECT().
		ListTasks(listTasksInput(nil)).
		Return(&ecs.ListTasksOutput{TaskArns: ptr.StringSlice([]string{"t1"}), NextToken: ptr.String("")}, nil)

	got, err := a.ListTasks("prod", TaskFilter{ContainerInstance: "ci-arn"})
	assert.Nil(t, err)
	assert.ArrayEqual(t, got, []string{"t1"})
}

func TestListTasksAnomalyReturnsPartial(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	gomock.InOrder(
		m.ecs.EXPECT().ListTasks(gomock.Any()).Return(
			&ecs.ListTasksOutput{
				TaskArns:  ptr.StringSlice([]string{"t1"}),
				NextToken: ptr.String("page2"),
			},
			nil,
		),
		m.ecs.EXPECT().ListTasks(gomock.Any()).Return(nil, serverError),
	)

	got, err := a.ListTasks("prod", TaskFilter{ContainerInstance: "ci-arn"})
	assert.Nil(t, err)
	assert.ArrayEqual(t, got, []string{"t1"})
	assert.StringContains(t, m.log.String(), "stopped after 1 tasks")
}

func TestListTasksNilOutput(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.ecs.EXPECT().ListTasks(gomock.Any()).Return(nil, nil)

	got, err := a.ListTasks("prod", TaskFilter{})
	assert.Nil(t, err)
	assert.Equal(t, len(got), 0)
	assert.StringContains(t, m.log.String(), "empty task listing response")
}

func TestListTasksError(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.ecs.EXPECT().ListTasks(gomock.Any()).Return(nil, throttled)

	got, err := a.ListTasks("prod", TaskFilter{})
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "slow down")
}

func TestDescribeTasksEmpty(t *testing.T) {
	a, _, fin := mkAwsAdapter(t)
	defer fin()

	got, err := a.DescribeTasks("prod", nil)
	assert.Nil(t, got)
	assert.Nil(t, err)
}

func TestDescribeTasksWindows(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	mkTask := func(id, group string) *ecs.Task {
		return &ecs.Task{TaskArn: ptr.String(id), Group: ptr.String(group)}
	}

	gomock.InOrder(
		m.ecs.EXPECT().
			DescribeTasks(&ecs.DescribeTasksInput{
				Cluster: ptr.String("prod"),
				Tasks:   ptr.StringSlice([]string{"a", "b"}),
			}).
			Return(
				&ecs.DescribeTasksOutput{
					Tasks: []*ecs.Task{mkTask("a", "service:web"), nil, mkTask("b", "family:batch")},
				},
				nil,
			),
		m.ecs.EXPECT().
			DescribeTasks(&ecs.DescribeTasksInput{
				Cluster: ptr.String("prod"),
				Tasks:   ptr.StringSlice([]string{"c"}),
			}).
			Return(
				&ecs.DescribeTasksOutput{
					Failures: []*ecs.Failure{{Arn: ptr.String("c"), Reason: ptr.String("MISSING")}},
				},
				nil,
			),
	)

	got, err := a.DescribeTasks("prod", []string{"a", "b", "c"})
	assert.Nil(t, err)
	assert.DeepEqual(t, got, []tasks.Task{
		{ARN: "a", Group: "service:web"},
		{ARN: "b", Group: "family:batch"},
	})
	assert.Equal(t, m.log.String(), "c: MISSING\n")
}

func TestDescribeTasksError(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.ecs.EXPECT().DescribeTasks(gomock.Any()).Return(nil, boom)

	got, err := a.DescribeTasks("prod", []string{"a"})
	assert.Nil(t, got)
	assert.DeepEqual(t, err, boom)
}

func TestCountContainerInstances(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	tokens := []*string{}
	recordToken := func(in *ecs.ListContainerInstancesInput) {
		assert.Equal(t, ptr.StringValue(in.Cluster), "prod")
		assert.Equal(t, aws.Int64Value(in.MaxResults), int64(50))
		tokens = append(tokens, in.NextToken)
	}

	gomock.InOrder(
		m.ecs.EXPECT().ListContainerInstances(gomock.Any()).Do(recordToken).Return(
			&ecs.ListContainerInstancesOutput{
				ContainerInstanceArns: ptr.StringSlice([]string{"i1", "i2"}),
				NextToken:             ptr.String("more"),
			},
			nil,
		),
		m.ecs.EXPECT().ListContainerInstances(gomock.Any()).Do(recordToken).Return(
			&ecs.ListContainerInstancesOutput{
				ContainerInstanceArns: ptr.StringSlice([]string{"i3"}),
			},
			nil,
		),
	)

	n, err := a.CountContainerInstances("prod")
	assert.Nil(t, err)
	assert.Equal(t, n, 3)
	assert.DeepEqual(t, tokens, []*string{nil, ptr.String("more")})
}

func TestCountContainerInstancesAnomaly(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	gomock.InOrder(
		m.ecs.EXPECT().ListContainerInstances(gomock.Any()).Return(
			&ecs.ListContainerInstancesOutput{
				ContainerInstanceArns: ptr.StringSlice([]string{"i1", "i2"}),
				NextToken:             ptr.String("more"),
			},
			nil,
		),
		m.ecs.EXPECT().ListContainerInstances(gomock.Any()).Return(nil, serverError),
	)

	n, err := a.CountContainerInstances("prod")
	assert.Nil(t, err)
	assert.Equal(t, n, 2)
	assert.StringContains(t, m.log.String(), "stopped after 2")
}

func TestCountContainerInstancesError(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.ecs.EXPECT().ListContainerInstances(gomock.Any()).Return(nil, boom)

	n, err := a.CountContainerInstances("prod")
	assert.Equal(t, n, 0)
	assert.DeepEqual(t, err, boom)
}

func TestReservationAverage(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	end := time.Unix(1500000300, 0)
	start := end.Add(-5 * time.Minute)

	m.cw.EXPECT().
		GetMetricStatistics(&cloudwatch.GetMetricStatisticsInput{
			Namespace:  ptr.String("AWS/ECS"),
			MetricName: ptr.String("CPUReservation"),
			Dimensions: []*cloudwatch.Dimension{
				{Name: ptr.String("ClusterName"), Value: ptr.String("prod")},
			},
			StartTime:  aws.Time(start),
			EndTime:    aws.Time(end),
			Period:     aws.Int64(60),
			Statistics: []*string{ptr.String("Average")},
		}).
		Return(
			&cloudwatch.GetMetricStatisticsOutput{
				Datapoints: []*cloudwatch.Datapoint{
					{Average: aws.Float64(40)},
					{Average: aws.Float64(50)},
					{Average: aws.Float64(60)},
				},
			},
			nil,
		)

	avg, ok, err := a.ReservationAverage("prod", "CPUReservation", start, end)
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, avg, 50.0)
}

func TestReservationAverageNoDatapoints(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.cw.EXPECT().GetMetricStatistics(gomock.Any()).Return(&cloudwatch.GetMetricStatisticsOutput{}, nil)

	avg, ok, err := a.ReservationAverage("prod", "MemoryReservation", time.Now(), time.Now())
	assert.Nil(t, err)
	assert.False(t, ok)
	assert.Equal(t, avg, 0.0)
}

func TestReservationAverageError(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.cw.EXPECT().GetMetricStatistics(gomock.Any()).Return(nil, boom)

	_, ok, err := a.ReservationAverage("prod", "MemoryReservation", time.Now(), time.Now())
	assert.False(t, ok)
	assert.DeepEqual(t, err, boom)
}

func TestStackParameters(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.cfn.EXPECT().
		DescribeStacks(&cloudformation.DescribeStacksInput{StackName: ptr.String("ecs-prod")}).
		Return(
			&cloudformation.DescribeStacksOutput{
				Stacks: []*cloudformation.Stack{
					{
						Parameters: []*cloudformation.Parameter{
							{ParameterKey: ptr.String("ScaleDownCPU"), ParameterValue: ptr.String("50")},
							nil,
							{ParameterKey: ptr.String("ClusterMinSize"), ParameterValue: ptr.String("3")},
						},
					},
				},
			},
			nil,
		)

	params, err := a.StackParameters("ecs-prod")
	assert.Nil(t, err)
	assert.DeepEqual(t, params, map[string]string{"ScaleDownCPU": "50", "ClusterMinSize": "3"})
}

func TestStackParametersNotFound(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.cfn.EXPECT().DescribeStacks(gomock.Any()).Return(&cloudformation.DescribeStacksOutput{}, nil)

	params, err := a.StackParameters("ecs-prod")
	assert.Nil(t, params)
	assert.ErrorContains(t, err, "stack ecs-prod not found")
}

func TestStackParametersError(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.cfn.EXPECT().DescribeStacks(gomock.Any()).Return(nil, boom)

	params, err := a.StackParameters("ecs-prod")
	assert.Nil(t, params)
	assert.DeepEqual(t, err, boom)
}

func TestPutMetric(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	ts := time.Unix(1500000000, 0)

	m.cw.EXPECT().
		PutMetricData(&cloudwatch.PutMetricDataInput{
			Namespace: ptr.String("ECS"),
			MetricData: []*cloudwatch.MetricDatum{
				{
					MetricName: ptr.String("TaskCount"),
					Dimensions: []*cloudwatch.Dimension{
						{Name: ptr.String("Cluster"), Value: ptr.String("prod")},
						{Name: ptr.String("InstanceId"), Value: ptr.String("i-123")},
						{Name: ptr.String("TaskFamily"), Value: ptr.String("web")},
					},
					Value:     aws.Float64(3),
					Unit:      ptr.String("Count"),
					Timestamp: aws.Time(ts),
				},
			},
		}).
		Return(&cloudwatch.PutMetricDataOutput{}, nil)

	err := a.PutMetric(metric.Datapoint{
		Namespace: "ECS",
		Name:      "TaskCount",
		Dimensions: []metric.Dimension{
			{Name: "Cluster", Value: "prod"},
			{Name: "InstanceId", Value: "i-123"},
			{Name: "TaskFamily", Value: "web"},
		},
		Value:     3,
		Unit:      metric.UnitCount,
		Timestamp: ts,
	})
	assert.Nil(t, err)
}

func TestMetricDatumOmitsEmptyUnit(t *testing.T) {
	datum := metricDatum(metric.Datapoint{
		Namespace:  "ECS",
		Name:       "ScaleDown",
		Dimensions: []metric.Dimension{{Name: "Cluster", Value: "prod"}},
		Value:      1,
	})

	assert.DeepEqual(t, datum, &cloudwatch.MetricDatum{
		MetricName: ptr.String("ScaleDown"),
		Dimensions: []*cloudwatch.Dimension{
			{Name: ptr.String("Cluster"), Value: ptr.String("prod")},
		},
		Value: aws.Float64(1),
	})
}

func TestPutMetricError(t *testing.T) {
	a, m, fin := mkAwsAdapter(t)
	defer fin()

	m.cw.EXPECT().PutMetricData(gomock.Any()).Return(nil, boom)

	assert.DeepEqual(t, a.PutMetric(metric.Datapoint{Namespace: "ECS", Name: "ScaleDown"}), boom)
}
