package common

import (
	"sort"

	"dockit/internal/model"
)

// ClassGroup is the records of one class, in source order
type ClassGroup struct {
	ClassName string
	Package   string
	Records   []*model.MethodRecord
}

// SortRecords returns a copy of records ordered by class, then URL, then
// method name. Records with equal keys keep their source order.
func SortRecords(records []*model.MethodRecord) []*model.MethodRecord {
	sorted := make([]*model.MethodRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ClassName != b.ClassName {
			return a.ClassName < b.ClassName
		}
		if a.RequestURL != b.RequestURL {
			return a.RequestURL < b.RequestURL
		}
		return a.MethodName < b.MethodName
	})
	return sorted
}

// GroupByClass merges the report's sources by class name, ordered by class
// name. Two files declaring the same class name end up in one group.
func GroupByClass(report *model.Report) []ClassGroup {
	index := make(map[string]int)
	var groups []ClassGroup

	for _, src := range report.Sources {
		i, ok := index[src.ClassName]
		if !ok {
			i = len(groups)
			index[src.ClassName] = i
			groups = append(groups, ClassGroup{ClassName: src.ClassName, Package: src.Package})
		}
		groups[i].Records = append(groups[i].Records, src.Records...)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ClassName < groups[j].ClassName
	})
	return groups
}

// CountDiagnostics returns the number of malformed argument descriptors in records
func CountDiagnostics(records []*model.MethodRecord) int {
	count := 0
	for _, rec := range records {
		for _, list := range [][]*model.Argument{rec.RequestArgList, rec.ResponseArgList} {
			for _, row := range FlattenArguments(list) {
				if row.Arg.IsDiagnostic() {
					count++
				}
			}
		}
	}
	return count
}
