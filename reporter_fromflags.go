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

// Package ecsmetrics holds the configuration shared by the ecs-metrics
// sub-commands: AWS credentials, region and cluster selection, logging and
// dry-run publishing.
package ecsmetrics

//go:generate mockgen -source $GOFILE -destination mock_$GOFILE -package $GOPACKAGE --write_package_comment=false

import (
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws/session"

	tbnflag "github.com/turbinelabs/nonstdlib/flag"
	"github.com/turbinelabs/nonstdlib/log/console"
	tbntime "github.com/turbinelabs/nonstdlib/time"

	"github.com/Signiant/ecs-custom-metrics/aws"
	"github.com/Signiant/ecs-custom-metrics/metadata"
	"github.com/Signiant/ecs-custom-metrics/metric"
)

// Logs are the loggers handed to each component.
type Logs struct {
	Debug *log.Logger
	Info  *log.Logger
	Error *log.Logger
}

// ReporterFromFlags produces the pieces every report needs from the
// command-line flags.
type ReporterFromFlags interface {
	// Logs returns the loggers for this run. If verbose output was
	// requested the Debug logger always writes to stderr, regardless of
	// --console.level.
	Logs() Logs

	// DryRun reports whether publishing is suppressed.
	DryRun() bool

	// ResolveIdentity applies --region and --cluster to any empty fields of
	// id and resolves whatever is still missing from the ECS agent and EC2
	// instance metadata.
	ResolveIdentity(id metadata.Identity, needInstance bool) (metadata.Identity, error)

	// MakeClient produces an aws.Client for the given region.
	MakeClient(region string) (aws.Client, error)

	// MakePublisher produces a metric.Publisher that writes through putter,
	// or one that only logs if --dryrun was given.
	MakePublisher(putter metric.Putter) metric.Publisher
}

// ReporterOption configures a ReporterFromFlags.
type ReporterOption func(*reporterFromFlags)

// WithVerboseEnv enables verbose output when the named environment variable
// holds a true value as understood by strconv.ParseBool. An unset, empty or
// unparsable value is false. --verbose enables verbose output regardless.
func WithVerboseEnv(name string) ReporterOption {
	return func(ff *reporterFromFlags) {
		ff.verboseEnv = name
	}
}

// NewReporterFromFlags installs a ReporterFromFlags into the given FlagSet.
func NewReporterFromFlags(fs tbnflag.FlagSet, opts ...ReporterOption) ReporterFromFlags {
	ff := &reporterFromFlags{
		clientFromFlags:     aws.NewClientFromFlags(fs),
		lookupEnv:           os.LookupEnv,
		time:                tbntime.NewSource(),
		newInstanceIDSource: metadata.NewInstanceIDSource,
		newResolver: func(ids metadata.InstanceIDSource, debugLog *log.Logger) metadata.Resolver {
			return metadata.NewResolver(ids, debugLog)
		},
	}

	fs.StringVar(
		&ff.region,
		"region",
		"",
		"The AWS region. If not given, it is taken from the container instance ARN reported by the local ECS agent.",
	)

	fs.StringVar(
		&ff.cluster,
		"cluster",
		"",
		"The ECS cluster name. If not given, it is taken from the local ECS agent.",
	)

	fs.BoolVar(
		&ff.verbose,
		"verbose",
		false,
		"Log debug output to stderr.",
	)

	fs.BoolVar(
		&ff.dryRun,
		"dryrun",
		false,
		"Log the metrics that would be published instead of publishing them.",
	)

	for _, apply := range opts {
		apply(ff)
	}

	return ff
}

type reporterFromFlags struct {
	clientFromFlags aws.ClientFromFlags
	region          string
	cluster         string
	verbose         bool
	dryRun          bool
	verboseEnv      string

	lookupEnv           func(string) (string, bool)
	time                tbntime.Source
	newInstanceIDSource func(*session.Session) metadata.InstanceIDSource
	newResolver         func(metadata.InstanceIDSource, *log.Logger) metadata.Resolver
}

func (ff *reporterFromFlags) isVerbose() bool {
	if ff.verbose {
		return true
	}

	if ff.verboseEnv == "" {
		return false
	}

	v, ok := ff.lookupEnv(ff.verboseEnv)
	if !ok {
		return false
	}

	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (ff *reporterFromFlags) Logs() Logs {
	logs := Logs{
		Debug: console.Debug(),
		Info:  console.Info(),
		Error: console.Error(),
	}

	if ff.isVerbose() {
		logs.Debug = log.New(os.Stderr, "[debug] ", log.LstdFlags)
	}

	return logs
}

func (ff *reporterFromFlags) DryRun() bool {
	return ff.dryRun
}

func (ff *reporterFromFlags) ResolveIdentity(
	id metadata.Identity,
	needInstance bool,
) (metadata.Identity, error) {
	if id.Region == "" {
		id.Region = ff.region
	}
	if id.Cluster == "" {
		id.Cluster = ff.cluster
	}

	var instanceIDs metadata.InstanceIDSource
	if needInstance && id.InstanceID == "" {
		sess, err := ff.clientFromFlags.MakeSession(id.Region)
		if err != nil {
			return metadata.Identity{}, err
		}
		instanceIDs = ff.newInstanceIDSource(sess)
	}

	return ff.newResolver(instanceIDs, ff.Logs().Debug).Resolve(id, needInstance)
}

func (ff *reporterFromFlags) MakeClient(region string) (aws.Client, error) {
	return ff.clientFromFlags.MakeClient(region, ff.Logs().Error)
}

func (ff *reporterFromFlags) MakePublisher(putter metric.Putter) metric.Publisher {
	logs := ff.Logs()
	if ff.dryRun {
		return metric.NewDryRunPublisher(logs.Info)
	}
	return metric.NewCloudWatchPublisher(putter, ff.time, logs.Info)
}
