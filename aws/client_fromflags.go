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

//go:generate mockgen -source $GOFILE -destination mock_$GOFILE -package $GOPACKAGE --write_package_comment=false

import (
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/ecs"
	tbnflag "github.com/turbinelabs/nonstdlib/flag"
)

// ClientFromFlags represents the command-line flags specifying configuration
// of an AWS client session.
type ClientFromFlags interface {
	// Profile returns the configured shared credentials profile, if any.
	Profile() string

	// MakeSession produces an AWS client session for the given region. An
	// empty region leaves the region to the SDK's environment and shared
	// config lookup.
	MakeSession(region string) (*session.Session, error)

	// MakeClient produces a Client backed by a new session for the given
	// region. Listing anomalies and describe failures are written to
	// errorLog.
	MakeClient(region string, errorLog *log.Logger) (Client, error)
}

// NewClientFromFlags produces a ClientFromFlags, adding necessary flags to the
// provided flag.FlagSet.
func NewClientFromFlags(fs tbnflag.FlagSet) ClientFromFlags {
	ff := &clientFromFlags{}

	fs.StringVar(
		&ff.profile,
		"profile",
		"",
		"The name of a shared credentials profile to use. If not given, "+
			"environment or instance role credentials are used.",
	)

	return ff
}

type clientFromFlags struct {
	profile string
}

func (ff *clientFromFlags) Profile() string {
	return ff.profile
}

func (ff *clientFromFlags) MakeSession(region string) (*session.Session, error) {
	cfg := aws.Config{}
	if region != "" {
		cfg.Region = aws.String(region)
	}

	return session.NewSessionWithOptions(session.Options{
		Config:            cfg,
		Profile:           ff.profile,
		SharedConfigState: session.SharedConfigEnable,
	})
}

func (ff *clientFromFlags) MakeClient(region string, errorLog *log.Logger) (Client, error) {
	s, err := ff.MakeSession(region)
	if err != nil {
		return nil, err
	}

	return newClient(ecs.New(s), cloudwatch.New(s), cloudformation.New(s), errorLog), nil
}
