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

// Package taskcount publishes the number of running ECS tasks per task family
// as the ECS/TaskCount CloudWatch metric.
package taskcount

import (
	"github.com/turbinelabs/cli/command"
	tbnflag "github.com/turbinelabs/nonstdlib/flag"

	ecsmetrics "github.com/Signiant/ecs-custom-metrics"
	"github.com/Signiant/ecs-custom-metrics/constants"
	"github.com/Signiant/ecs-custom-metrics/metadata"
)

const (
	instanceScope = "instance"
	clusterScope  = "cluster"
)

const description = `Publishes the ECS/TaskCount CloudWatch metric.

With --scope=instance (the default), the running tasks on one container
instance are grouped by task family. For each family, the number of its tasks
on the instance is published with the Cluster, InstanceId and TaskFamily
dimensions, followed by the number of its tasks in the whole cluster with the
Cluster and TaskFamily dimensions. Families started by a service are counted
by service name, others by task definition family.

With --scope=cluster, every running task in the cluster is grouped by task
family and only the cluster-wide counts are published.

Values not given on the command line are read from the ECS agent and the EC2
instance metadata service on this host. Setting the ` + constants.VerboseEnv + `
environment variable to a true value is equivalent to --verbose.`

// Cmd configures the parameters needed for running the task-count command.
func Cmd() *command.Cmd {
	r := &runner{
		scope: tbnflag.NewChoice(instanceScope, clusterScope).WithDefault(instanceScope),
	}

	cmd := &command.Cmd{
		Name:        "task-count",
		Summary:     "publish running task counts per task family",
		Usage:       "[OPTIONS]",
		Description: description,
		Runner:      r,
	}

	flags := tbnflag.Wrap(&cmd.Flags)
	r.reporterFlags = ecsmetrics.NewReporterFromFlags(
		flags,
		ecsmetrics.WithVerboseEnv(constants.VerboseEnv),
	)

	flags.StringVar(
		&r.instanceID,
		"instance-id",
		"",
		"The EC2 instance id to report for. If not given, it is read from the EC2 instance metadata service.",
	)

	flags.StringVar(
		&r.instanceARN,
		"instance-arn",
		"",
		"The container instance ARN to report for. If not given, it is read from the local ECS agent.",
	)

	flags.Var(
		&r.scope,
		"scope",
		"Report tasks on one container instance and their cluster totals (instance), or all tasks in the cluster (cluster).",
	)

	return cmd
}

type runner struct {
	reporterFlags ecsmetrics.ReporterFromFlags
	instanceID    string
	instanceARN   string
	scope         tbnflag.Choice
}

func (r *runner) Run(cmd *command.Cmd, args []string) command.CmdErr {
	logs := r.reporterFlags.Logs()
	needInstance := r.scope.String() == instanceScope

	id, err := r.reporterFlags.ResolveIdentity(
		metadata.Identity{
			ContainerInstanceARN: r.instanceARN,
			InstanceID:           r.instanceID,
		},
		needInstance,
	)
	if err != nil {
		return cmd.BadInput(err)
	}
	logs.Debug.Printf(
		"cluster %s in %s, instance %s (%s)",
		id.Cluster,
		id.Region,
		id.InstanceID,
		id.ContainerInstanceARN,
	)

	client, err := r.reporterFlags.MakeClient(id.Region)
	if err != nil {
		return cmd.Error(err)
	}

	reporter := NewReporter(client, r.reporterFlags.MakePublisher(client), logs)

	if needInstance {
		err = reporter.ReportInstance(id)
	} else {
		err = reporter.ReportCluster(id.Cluster)
	}
	if err != nil {
		return cmd.Error(err)
	}

	return command.NoError()
}
