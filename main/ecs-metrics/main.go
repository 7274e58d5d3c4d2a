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

package main

import (
	"flag"

	"github.com/turbinelabs/cli"
	tbnflag "github.com/turbinelabs/nonstdlib/flag"
	"github.com/turbinelabs/nonstdlib/log/console"

	"github.com/Signiant/ecs-custom-metrics/constants"
	"github.com/Signiant/ecs-custom-metrics/scaledown"
	"github.com/Signiant/ecs-custom-metrics/taskcount"
)

const desc = `
Publishes custom ECS metrics to CloudWatch. Each sub-command is a one-shot job
meant to be run periodically, for example from cron on a container instance.

task-count publishes the number of running tasks per task family, for one
container instance and for the whole cluster. scale-down publishes a 0/1
signal indicating that the cluster's CPU and memory reservation are low enough
to remove a container instance.

AWS credentials come from --profile if given, otherwise from the environment
or the instance role.
`

func mkCLI() cli.CLI {
	globalFlags := tbnflag.Wrap(&flag.FlagSet{})
	console.Init(globalFlags)

	c := cli.NewWithSubCmds(
		desc,
		constants.Version,
		taskcount.Cmd(),
		scaledown.Cmd(),
	)

	c.SetFlags(globalFlags.Unwrap())

	return c
}

func main() {
	mkCLI().Main()
}
