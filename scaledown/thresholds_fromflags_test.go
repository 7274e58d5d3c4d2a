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
	"testing"

	tbnflag "github.com/turbinelabs/nonstdlib/flag"
	"github.com/turbinelabs/test/assert"
	testlog "github.com/turbinelabs/test/log"
)

func TestNewThresholdsFromFlags(t *testing.T) {
	fs := tbnflag.NewTestFlagSet()
	ff := NewThresholdsFromFlags(fs).(*thresholdsFromFlags)

	fs.Parse([]string{
		"-stack-name=ecs-prod",
		"-cpu=50",
		"-mem=40",
		"-min-cluster-size=3",
	})

	assert.Equal(t, *ff, thresholdsFromFlags{
		stackName:      "ecs-prod",
		cpu:            "50",
		mem:            "40",
		minClusterSize: "3",
	})
}

func TestThresholdsFromFlagsNoSource(t *testing.T) {
	info, buf := testlog.NewBufferLogger()
	ff := &thresholdsFromFlags{}

	src, err := ff.Source(info)
	assert.Nil(t, src)
	assert.DeepEqual(t, err, ConfigurationError{errNoThresholdSource})
	assert.Equal(t, buf.String(), "")
}

func TestThresholdsFromFlagsStackWins(t *testing.T) {
	info, buf := testlog.NewBufferLogger()
	ff := &thresholdsFromFlags{stackName: "ecs-prod", cpu: "50"}

	src, err := ff.Source(info)
	assert.Nil(t, err)
	assert.Equal(t, src, StackThresholds{StackName: "ecs-prod"})
	assert.Equal(t, buf.String(), "--stack-name given, ignoring --cpu, --mem and --min-cluster-size\n")
}

func TestThresholdsFromFlagsStackOnly(t *testing.T) {
	info, buf := testlog.NewBufferLogger()
	ff := &thresholdsFromFlags{stackName: "ecs-prod"}

	src, err := ff.Source(info)
	assert.Nil(t, err)
	assert.Equal(t, src, StackThresholds{StackName: "ecs-prod"})
	assert.Equal(t, buf.String(), "")
}

func TestThresholdsFromFlagsExplicit(t *testing.T) {
	info, _ := testlog.NewBufferLogger()
	ff := &thresholdsFromFlags{cpu: "50", mem: "40", minClusterSize: "3"}

	src, err := ff.Source(info)
	assert.Nil(t, err)
	assert.Equal(t, src, ExplicitThresholds{Thresholds{CPU: 50, Memory: 40, MinClusterSize: 3}})
}

func TestThresholdsFromFlagsPartialExplicit(t *testing.T) {
	info, _ := testlog.NewBufferLogger()
	ff := &thresholdsFromFlags{cpu: "50"}

	src, err := ff.Source(info)
	assert.Nil(t, src)

	_, ok := err.(ConfigurationError)
	assert.True(t, ok)
	assert.StringContains(t, err.Error(), "--mem is required without --stack-name")
	assert.StringContains(t, err.Error(), "--min-cluster-size is required without --stack-name")
}

func TestThresholdsFromFlagsInvalidExplicit(t *testing.T) {
	info, _ := testlog.NewBufferLogger()
	ff := &thresholdsFromFlags{cpu: "50", mem: "lots", minClusterSize: "3"}

	src, err := ff.Source(info)
	assert.Nil(t, src)
	assert.ErrorContains(t, err, `--mem must be an integer, got "lots"`)
}
