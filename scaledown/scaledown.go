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

// Package scaledown publishes a 0/1 ScaleDown metric for an ECS cluster
// based on its CPU and memory reservation.
package scaledown

import (
	"github.com/turbinelabs/cli/command"
	tbnflag "github.com/turbinelabs/nonstdlib/flag"
	tbntime "github.com/turbinelabs/nonstdlib/time"

	ecsmetrics "github.com/Signiant/ecs-custom-metrics"
	"github.com/Signiant/ecs-custom-metrics/metadata"
)

const description = `Publishes the ECS/ScaleDown CloudWatch metric for a cluster.

The metric is 1 when the cluster's average CPU and memory reservation over the
last five minutes are both below their thresholds and the cluster has more
container instances than its minimum size, and 0 otherwise. Averages are
truncated to whole percentages before comparison.

Thresholds come either from --cpu, --mem and --min-cluster-size, or from the
ScaleDownCPU, ScaleDownMemory and ClusterMinSize parameters of the
CloudFormation stack named by --stack-name. If --region or --cluster are not
given, they are read from the ECS agent on this host.`

// Cmd configures the parameters needed for running the scale-down command.
func Cmd() *command.Cmd {
	r := &runner{time: tbntime.NewSource()}

	cmd := &command.Cmd{
		Name:        "scale-down",
		Summary:     "publish the cluster scale down signal",
		Usage:       "[OPTIONS]",
		Description: description,
		Runner:      r,
	}

	flags := tbnflag.Wrap(&cmd.Flags)
	r.reporterFlags = ecsmetrics.NewReporterFromFlags(flags)
	r.thresholdFlags = NewThresholdsFromFlags(flags)

	return cmd
}

type runner struct {
	reporterFlags  ecsmetrics.ReporterFromFlags
	thresholdFlags ThresholdsFromFlags
	time           tbntime.Source
}

func (r *runner) Run(cmd *command.Cmd, args []string) command.CmdErr {
	logs := r.reporterFlags.Logs()

	src, err := r.thresholdFlags.Source(logs.Info)
	if err != nil {
		return cmd.BadInput(err)
	}
	logs.Debug.Printf("thresholds from %s", src.Describe())

	id, err := r.reporterFlags.ResolveIdentity(metadata.Identity{}, false)
	if err != nil {
		return cmd.BadInput(err)
	}
	logs.Debug.Printf("cluster %s in %s", id.Cluster, id.Region)

	client, err := r.reporterFlags.MakeClient(id.Region)
	if err != nil {
		return cmd.Error(err)
	}

	thresholds, err := src.Resolve(client)
	if err != nil {
		if _, ok := err.(ConfigurationError); ok {
			return cmd.BadInput(err)
		}
		return cmd.Error(err)
	}
	logs.Debug.Printf("thresholds: %s", thresholds)

	result, err := NewEvaluator(client, r.time, logs.Debug, logs.Info).Evaluate(id.Cluster, thresholds)
	if err != nil {
		return cmd.Error(err)
	}

	publisher := r.reporterFlags.MakePublisher(client)
	if err := publisher.Publish(result.Datapoint(id.Cluster)); err != nil {
		return cmd.Error(err)
	}

	return command.NoError()
}
