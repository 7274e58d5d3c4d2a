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

// Package metadata resolves the region, cluster and container instance a
// report is about, falling back to the ECS agent and EC2 instance metadata for
// anything not given on the command line.
package metadata

//go:generate mockgen -source $GOFILE -destination mock_$GOFILE -package $GOPACKAGE --write_package_comment=false

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/Signiant/ecs-custom-metrics/constants"
)

const instanceIDPath = "instance-id"

// Identity names the cluster, and optionally the container instance, a report
// is published for.
type Identity struct {
	Region               string
	Cluster              string
	ContainerInstanceARN string
	InstanceID           string
}

// InstanceIDSource looks up EC2 instance metadata by path. It is satisfied by
// *ec2metadata.EC2Metadata.
type InstanceIDSource interface {
	GetMetadata(path string) (string, error)
}

// NewInstanceIDSource returns an InstanceIDSource that queries the EC2
// instance metadata service using the given session.
func NewInstanceIDSource(sess *session.Session) InstanceIDSource {
	return ec2metadata.New(sess)
}

// Resolver fills in the missing parts of an Identity.
type Resolver interface {
	// Resolve returns explicit with any empty Region, Cluster and, if
	// needInstance is true, ContainerInstanceARN and InstanceID filled in.
	// Explicit values are never replaced. The ECS agent is asked at most
	// once, and only if something it knows about is missing. Any value that
	// cannot be resolved produces an error.
	Resolve(explicit Identity, needInstance bool) (Identity, error)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolver)

// WithAgentURL overrides the ECS agent introspection endpoint.
func WithAgentURL(url string) ResolverOption {
	return func(r *resolver) {
		r.agentURL = url
	}
}

// WithHTTPClient overrides the http.Client used to query the ECS agent.
func WithHTTPClient(c *http.Client) ResolverOption {
	return func(r *resolver) {
		r.httpClient = c
	}
}

// NewResolver returns a Resolver that queries the ECS agent and the given
// InstanceIDSource. Probes are logged to debugLog.
func NewResolver(
	instanceIDs InstanceIDSource,
	debugLog *log.Logger,
	opts ...ResolverOption,
) Resolver {
	r := &resolver{
		agentURL:    constants.AgentMetadataURL,
		httpClient:  http.DefaultClient,
		instanceIDs: instanceIDs,
		debugLog:    debugLog,
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

type resolver struct {
	agentURL    string
	httpClient  *http.Client
	instanceIDs InstanceIDSource
	debugLog    *log.Logger
}

// agentMetadata is the subset of the ECS agent's /v1/metadata response we use.
type agentMetadata struct {
	Cluster              string `json:"Cluster"`
	ContainerInstanceArn string `json:"ContainerInstanceArn"`
}

func (r *resolver) needsAgent(id Identity, needInstance bool) bool {
	return id.Cluster == "" ||
		(id.Region == "" && id.ContainerInstanceARN == "") ||
		(needInstance && id.ContainerInstanceARN == "")
}

func (r *resolver) Resolve(explicit Identity, needInstance bool) (Identity, error) {
	id := explicit

	if r.needsAgent(id, needInstance) {
		md, err := r.agentMetadata()
		if err != nil {
			return Identity{}, err
		}

		if id.Cluster == "" {
			id.Cluster = md.Cluster
		}
		if id.ContainerInstanceARN == "" {
			id.ContainerInstanceARN = md.ContainerInstanceArn
		}
	}

	if id.Cluster == "" {
		return Identity{}, errors.New("could not determine cluster: set --cluster")
	}

	if id.Region == "" {
		if id.ContainerInstanceARN == "" {
			return Identity{}, errors.New("could not determine region: set --region")
		}
		region, err := RegionFromARN(id.ContainerInstanceARN)
		if err != nil {
			return Identity{}, err
		}
		id.Region = region
	}

	if !needInstance {
		return id, nil
	}

	if id.ContainerInstanceARN == "" {
		return Identity{}, errors.New("could not determine container instance: set --instance-arn")
	}

	if id.InstanceID == "" {
		if r.instanceIDs == nil {
			return Identity{}, errors.New("could not determine instance id: set --instance-id")
		}
		r.debugLog.Printf("looking up %s from EC2 instance metadata", instanceIDPath)
		instanceID, err := r.instanceIDs.GetMetadata(instanceIDPath)
		if err != nil {
			return Identity{}, fmt.Errorf("could not determine instance id: %s", err)
		}
		id.InstanceID = strings.TrimSpace(instanceID)
	}

	return id, nil
}

func (r *resolver) agentMetadata() (agentMetadata, error) {
	r.debugLog.Printf("querying ECS agent at %s", r.agentURL)

	resp, err := r.httpClient.Get(r.agentURL)
	if err != nil {
		return agentMetadata{}, fmt.Errorf("could not reach ECS agent: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return agentMetadata{}, fmt.Errorf("ECS agent returned %s", resp.Status)
	}

	md := agentMetadata{}
	if err := json.NewDecoder(resp.Body).Decode(&md); err != nil {
		return agentMetadata{}, fmt.Errorf("could not decode ECS agent metadata: %s", err)
	}

	return md, nil
}

// RegionFromARN returns the region segment of an ARN, e.g. "us-east-1" for
// "arn:aws:ecs:us-east-1:123456789012:container-instance/abc".
func RegionFromARN(arn string) (string, error) {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) < 6 || parts[0] != "arn" || parts[3] == "" {
		return "", fmt.Errorf("malformed ARN %q", arn)
	}
	return parts[3], nil
}
