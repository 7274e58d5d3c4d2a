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
	"testing"

	"github.com/aws/aws-sdk-go/aws"

	tbnflag "github.com/turbinelabs/nonstdlib/flag"
	"github.com/turbinelabs/test/assert"
	testlog "github.com/turbinelabs/test/log"
)

func TestNewClientFromFlags(t *testing.T) {
	fs := tbnflag.NewTestFlagSet()
	ff := NewClientFromFlags(fs)
	assert.NonNil(t, ff)
	assert.Equal(t, ff.Profile(), "")

	fs.Parse([]string{"-profile=ops"})
	assert.Equal(t, ff.Profile(), "ops")
}

func TestClientFromFlagsMakeSession(t *testing.T) {
	ff := &clientFromFlags{}

	s, err := ff.MakeSession("us-west-2")
	assert.Nil(t, err)
	assert.NonNil(t, s)
	assert.Equal(t, aws.StringValue(s.Config.Region), "us-west-2")
}

func TestClientFromFlagsMakeClient(t *testing.T) {
	ff := &clientFromFlags{}
	errorLog, _ := testlog.NewBufferLogger()

	c, err := ff.MakeClient("eu-central-1", errorLog)
	assert.Nil(t, err)

	adapter, ok := c.(awsAdapter)
	assert.True(t, ok)
	assert.NonNil(t, adapter.ecs)
	assert.NonNil(t, adapter.cloudwatch)
	assert.NonNil(t, adapter.cloudformation)
	assert.Equal(t, adapter.errorLog, errorLog)
	assert.Equal(t, adapter.describeTasksWindowSz, DescribeTasksWindowSz)
}
