package id3

import "github.com/pbanos/id3/dataset"

/*
MajorityClass takes a table and returns its most frequent class label.
When several labels share the highest count, the one found first going
through the rows wins. It returns an empty string for an empty table.
*/
func MajorityClass(t dataset.Table) string {
	if len(t) == 0 {
		return ""
	}
	var result dataset.ValueCount
	for _, vc := range t.CountValues(t.ClassColumn()) {
		if vc.Count > result.Count {
			result = vc
		}
	}
	return result.Value
}
