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

// Package metric defines the datapoints ecs-metrics publishes and the
// publishers that deliver them.
package metric

//go:generate mockgen -source $GOFILE -destination mock_$GOFILE -package $GOPACKAGE --write_package_comment=false

import (
	"fmt"
	"log"
	"strings"
	"time"

	tbntime "github.com/turbinelabs/nonstdlib/time"
)

// UnitCount is the CloudWatch unit for plain counts.
const UnitCount = "Count"

// Dimension is a single name/value pair attached to a Datapoint.
type Dimension struct {
	Name  string
	Value string
}

// Datapoint is a single named metric value. Dimensions are ordered. An empty
// Unit is omitted when published. A zero Timestamp is filled in by the
// publisher.
type Datapoint struct {
	Namespace  string
	Name       string
	Dimensions []Dimension
	Value      float64
	Unit       string
	Timestamp  time.Time
}

func (dp Datapoint) String() string {
	dims := make([]string, 0, len(dp.Dimensions))
	for _, d := range dp.Dimensions {
		dims = append(dims, d.Name+"="+d.Value)
	}
	unit := ""
	if dp.Unit != "" {
		unit = " " + dp.Unit
	}
	return fmt.Sprintf(
		"%s/%s{%s} = %v%s",
		dp.Namespace,
		dp.Name,
		strings.Join(dims, ","),
		dp.Value,
		unit,
	)
}

// Putter writes a single Datapoint to a monitoring backend.
type Putter interface {
	PutMetric(Datapoint) error
}

// Publisher publishes Datapoints. Each call to Publish results in at most
// one write to the backend. Publishing is not idempotent: publishing the same
// Datapoint twice records it twice.
type Publisher interface {
	Publish(Datapoint) error
}

// NewCloudWatchPublisher returns a Publisher that stamps each Datapoint with
// the current time (unless it already has one) and hands it to the Putter.
func NewCloudWatchPublisher(
	putter Putter,
	source tbntime.Source,
	infoLog *log.Logger,
) Publisher {
	return &putPublisher{putter: putter, time: source, infoLog: infoLog}
}

type putPublisher struct {
	putter  Putter
	time    tbntime.Source
	infoLog *log.Logger
}

func (p *putPublisher) Publish(dp Datapoint) error {
	if dp.Timestamp.IsZero() {
		dp.Timestamp = p.time.Now()
	}
	p.infoLog.Printf("publishing %s", dp)
	return p.putter.PutMetric(dp)
}

// NewDryRunPublisher returns a Publisher that only logs what it would have
// published.
func NewDryRunPublisher(infoLog *log.Logger) Publisher {
	return dryRunPublisher{infoLog}
}

type dryRunPublisher struct {
	infoLog *log.Logger
}

func (p dryRunPublisher) Publish(dp Datapoint) error {
	p.infoLog.Printf("dry run, not publishing %s", dp)
	return nil
}
