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

//go:generate mockgen -source $GOFILE -destination mock_$GOFILE -package $GOPACKAGE --write_package_comment=false

import (
	"errors"
	"fmt"
	"log"
	"strings"

	multierror "github.com/hashicorp/go-multierror"

	tbnflag "github.com/turbinelabs/nonstdlib/flag"
)

const (
	stackNameFlag      = "stack-name"
	cpuFlag            = "cpu"
	memFlag            = "mem"
	minClusterSizeFlag = "min-cluster-size"
)

var errNoThresholdSource = errors.New(
	"need either --stack-name or all of --cpu, --mem and --min-cluster-size",
)

// ThresholdsFromFlags selects a ThresholdSource from the command line.
type ThresholdsFromFlags interface {
	// Source returns the selected ThresholdSource. It makes no network
	// calls, so configuration problems are found before any are made. A
	// stack name takes precedence over explicit values, which are then
	// ignored with a message on infoLog.
	Source(infoLog *log.Logger) (ThresholdSource, error)
}

// NewThresholdsFromFlags installs a ThresholdsFromFlags into the given
// FlagSet.
func NewThresholdsFromFlags(fs tbnflag.FlagSet) ThresholdsFromFlags {
	ff := &thresholdsFromFlags{}

	fs.StringVar(
		&ff.stackName,
		stackNameFlag,
		"",
		"The CloudFormation stack whose ScaleDownCPU, ScaleDownMemory and ClusterMinSize parameters "+
			"supply the thresholds. Takes precedence over --cpu, --mem and --min-cluster-size.",
	)

	fs.StringVar(
		&ff.cpu,
		cpuFlag,
		"",
		"Scale down when the average CPU reservation, in percent, is below this value.",
	)

	fs.StringVar(
		&ff.mem,
		memFlag,
		"",
		"Scale down when the average memory reservation, in percent, is below this value.",
	)

	fs.StringVar(
		&ff.minClusterSize,
		minClusterSizeFlag,
		"",
		"Never scale down a cluster with this many container instances or fewer.",
	)

	return ff
}

type thresholdsFromFlags struct {
	stackName      string
	cpu            string
	mem            string
	minClusterSize string
}

func (ff *thresholdsFromFlags) Source(infoLog *log.Logger) (ThresholdSource, error) {
	if ff.stackName != "" {
		if ff.cpu != "" || ff.mem != "" || ff.minClusterSize != "" {
			infoLog.Printf(
				"--%s given, ignoring --%s, --%s and --%s",
				stackNameFlag,
				cpuFlag,
				memFlag,
				minClusterSizeFlag,
			)
		}
		return StackThresholds{StackName: ff.stackName}, nil
	}

	if ff.cpu == "" && ff.mem == "" && ff.minClusterSize == "" {
		return nil, ConfigurationError{errNoThresholdSource}
	}

	var errs *multierror.Error
	for _, f := range []struct{ name, value string }{
		{cpuFlag, ff.cpu},
		{memFlag, ff.mem},
		{minClusterSizeFlag, ff.minClusterSize},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = multierror.Append(
				errs,
				fmt.Errorf("--%s is required without --%s", f.name, stackNameFlag),
			)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, ConfigurationError{err}
	}

	explicit, err := ParseExplicitThresholds(ff.cpu, ff.mem, ff.minClusterSize)
	if err != nil {
		return nil, err
	}

	return explicit, nil
}
