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
	"fmt"
	"strconv"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/Signiant/ecs-custom-metrics/aws"
	"github.com/Signiant/ecs-custom-metrics/constants"
)

const defaultMinClusterSize = 1

// Thresholds decide when a cluster should scale down: both reservation
// averages must be below CPU and Memory, in percent, and the cluster must have
// more than MinClusterSize container instances.
type Thresholds struct {
	CPU            int
	Memory         int
	MinClusterSize int
}

func (t Thresholds) String() string {
	return fmt.Sprintf("cpu<%d mem<%d min-size=%d", t.CPU, t.Memory, t.MinClusterSize)
}

// ConfigurationError reports thresholds that are missing or invalid.
type ConfigurationError struct {
	Err error
}

func (e ConfigurationError) Error() string {
	return e.Err.Error()
}

// ThresholdSource produces the Thresholds for a run.
type ThresholdSource interface {
	// Resolve returns the Thresholds, using client if they must be looked
	// up. Missing or invalid values produce a ConfigurationError.
	Resolve(client aws.Client) (Thresholds, error)

	// Describe returns a short description of where the thresholds come
	// from, for logging.
	Describe() string
}

// ExplicitThresholds are given directly on the command line.
type ExplicitThresholds struct {
	Thresholds
}

var _ ThresholdSource = ExplicitThresholds{}

// ParseExplicitThresholds parses the given values as integers. All invalid
// values are reported together in a ConfigurationError.
func ParseExplicitThresholds(cpu, mem, minClusterSize string) (ExplicitThresholds, error) {
	var errs *multierror.Error
	parse := func(name, value string) int {
		i, err := strconv.Atoi(value)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("--%s must be an integer, got %q", name, value))
		}
		return i
	}

	t := Thresholds{
		CPU:            parse(cpuFlag, cpu),
		Memory:         parse(memFlag, mem),
		MinClusterSize: parse(minClusterSizeFlag, minClusterSize),
	}

	if err := errs.ErrorOrNil(); err != nil {
		return ExplicitThresholds{}, ConfigurationError{err}
	}

	return ExplicitThresholds{t}, nil
}

func (e ExplicitThresholds) Resolve(aws.Client) (Thresholds, error) {
	return e.Thresholds, nil
}

func (e ExplicitThresholds) Describe() string {
	return fmt.Sprintf("flags (%s)", e.Thresholds)
}

// StackThresholds are read from the parameters of a CloudFormation stack.
// ClusterMinSize defaults to 1 when the stack does not define it.
type StackThresholds struct {
	StackName string
}

var _ ThresholdSource = StackThresholds{}

func (s StackThresholds) Resolve(client aws.Client) (Thresholds, error) {
	params, err := client.StackParameters(s.StackName)
	if err != nil {
		return Thresholds{}, err
	}

	var errs *multierror.Error
	param := func(key string, required bool, dflt int) int {
		value, ok := params[key]
		if !ok {
			if required {
				errs = multierror.Append(
					errs,
					fmt.Errorf("stack %s has no %s parameter", s.StackName, key),
				)
			}
			return dflt
		}

		i, err := strconv.Atoi(value)
		if err != nil {
			errs = multierror.Append(
				errs,
				fmt.Errorf("stack %s parameter %s must be an integer, got %q", s.StackName, key, value),
			)
		}
		return i
	}

	t := Thresholds{
		CPU:            param(constants.StackCPUParameter, true, 0),
		Memory:         param(constants.StackMemoryParameter, true, 0),
		MinClusterSize: param(constants.StackMinClusterSizeParameter, false, defaultMinClusterSize),
	}

	if err := errs.ErrorOrNil(); err != nil {
		return Thresholds{}, ConfigurationError{err}
	}

	return t, nil
}

func (s StackThresholds) Describe() string {
	return "stack " + s.StackName
}
