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

// Package constants contains constants shared across ecs-metrics packages.
package constants

const (
	// Version is the current version of the ecs-metrics binary.
	Version = "0.3.0"

	// Namespace is the CloudWatch namespace custom metrics are published to.
	Namespace = "ECS"

	// TaskCountMetric is the name of the running task count metric.
	TaskCountMetric = "TaskCount"

	// ScaleDownMetric is the name of the 0/1 scale down signal metric.
	ScaleDownMetric = "ScaleDown"

	// ClusterDimension, InstanceIDDimension and TaskFamilyDimension name the
	// dimensions attached to published metrics.
	ClusterDimension    = "Cluster"
	InstanceIDDimension = "InstanceId"
	TaskFamilyDimension = "TaskFamily"

	// ReservationNamespace is the CloudWatch namespace ECS publishes cluster
	// reservation statistics to.
	ReservationNamespace = "AWS/ECS"

	// ReservationDimension is the dimension ECS uses to identify a cluster in
	// ReservationNamespace.
	ReservationDimension = "ClusterName"

	CPUReservationMetric    = "CPUReservation"
	MemoryReservationMetric = "MemoryReservation"

	// Stack parameter keys holding scale down thresholds.
	StackCPUParameter            = "ScaleDownCPU"
	StackMemoryParameter         = "ScaleDownMemory"
	StackMinClusterSizeParameter = "ClusterMinSize"

	// AgentMetadataURL is the ECS container agent introspection endpoint.
	AgentMetadataURL = "http://localhost:51678/v1/metadata"

	// VerboseEnv is consulted by task-count when --verbose is not given.
	VerboseEnv = "VERBOSE"
)
