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

// Package tasks groups running ECS tasks by family and counts them.
package tasks

import (
	"sort"
	"strings"
)

// GroupType is the kind of task group encoded in an ECS task's group string.
type GroupType string

const (
	// GroupService marks tasks started by an ECS service.
	GroupService GroupType = "service"

	// GroupFamily marks tasks started directly from a task definition family.
	GroupFamily GroupType = "family"
)

// Task is a running ECS task as returned by DescribeTasks. Group has the
// form "<type>:<family>".
type Task struct {
	ARN   string
	Group string
}

// ParseGroup splits an ECS group string. The type is everything before the
// first colon and the family everything after the last one, so
// "service:web" yields (GroupService, "web"). A group without a colon has an
// empty type and is its own family.
func ParseGroup(group string) (GroupType, string) {
	first := strings.Index(group, ":")
	if first < 0 {
		return "", group
	}
	last := strings.LastIndex(group, ":")
	return GroupType(group[:first]), group[last+1:]
}

// FamilyCount is the number of tasks seen for one family, along with the
// group type of the first task seen.
type FamilyCount struct {
	Type  GroupType
	Count int

	// types seen after the first that differ from Type
	conflicting []GroupType
}

// FamilyAggregate maps family name to its count.
type FamilyAggregate map[string]*FamilyCount

// Aggregate counts tasks by family. The type recorded for a family is taken
// from the first task seen for it; tasks of the same family reporting a
// different type are still counted and are listed by Conflicts.
func Aggregate(tasks []Task) FamilyAggregate {
	agg := FamilyAggregate{}
	for _, t := range tasks {
		agg.Add(t.Group)
	}
	return agg
}

// Add counts a single task with the given group string.
func (agg FamilyAggregate) Add(group string) {
	typ, family := ParseGroup(group)
	fc, ok := agg[family]
	if !ok {
		agg[family] = &FamilyCount{Type: typ, Count: 1}
		return
	}
	fc.Count++
	if fc.Type != typ {
		fc.conflicting = append(fc.conflicting, typ)
	}
}

// Families returns the family names in sorted order.
func (agg FamilyAggregate) Families() []string {
	names := make([]string, 0, len(agg))
	for name := range agg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Conflicts returns, in sorted order, the families that were seen under more
// than one group type.
func (agg FamilyAggregate) Conflicts() []string {
	names := []string{}
	for _, name := range agg.Families() {
		if len(agg[name].conflicting) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// Total returns the number of tasks counted across all families.
func (agg FamilyAggregate) Total() int {
	total := 0
	for _, fc := range agg {
		total += fc.Count
	}
	return total
}
