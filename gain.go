package id3

import (
	"math"

	"github.com/pbanos/id3/dataset"
)

/*
Entropy takes a table and returns the expected information, in bits,
needed to classify one of its rows: -Σ p·log2(p) over the proportion p
of rows holding each distinct class label. It returns 0 for an empty
table.
*/
func Entropy(t dataset.Table) float64 {
	if len(t) == 0 {
		return 0.0
	}
	return entropy(t.CountValues(t.ClassColumn()), len(t))
}

/*
ConditionalEntropy takes a table and the index of one of its attribute
columns and returns the expected information needed to classify one of
its rows once its value for that attribute is known: the sum over each
distinct value of the proportion of rows holding it times the entropy of
those rows.
*/
func ConditionalEntropy(t dataset.Table, col int) float64 {
	if len(t) == 0 {
		return 0.0
	}
	total := float64(len(t))
	classCol := t.ClassColumn()
	groups := make(map[string]dataset.Table)
	for _, row := range t {
		groups[row[col]] = append(groups[row[col]], row)
	}
	var result float64
	for _, v := range t.Values(col) {
		g := groups[v]
		result += float64(len(g)) / total * entropy(g.CountValues(classCol), len(g))
	}
	return result
}

/*
InformationGain takes a table and the index of one of its attribute
columns and returns the reduction in entropy obtained by partitioning the
table on that attribute.
*/
func InformationGain(t dataset.Table, col int) float64 {
	return Entropy(t) - ConditionalEntropy(t, col)
}

/*
Gains takes a table and the number of attribute columns to consider and
returns the information gain of each of them, in column order.
*/
func Gains(t dataset.Table, n int) []float64 {
	base := Entropy(t)
	gains := make([]float64, n)
	for i := range gains {
		gains[i] = base - ConditionalEntropy(t, i)
	}
	return gains
}

/*
SelectAttribute takes a table and the names of the candidate attributes,
aligned with its leading columns, and returns the index of the candidate
with the highest information gain.

Candidates are scanned in order and the best index only changes on a
strictly greater gain, starting from a best gain of 0. Ties therefore go
to the earliest candidate, and when no candidate has a positive gain the
first one, index 0, is returned.
*/
func SelectAttribute(t dataset.Table, candidates []string) int {
	return selectIndex(Gains(t, len(candidates)))
}

func selectIndex(gains []float64) int {
	var best int
	var highest float64
	for i, g := range gains {
		if g > highest {
			highest = g
			best = i
		}
	}
	return best
}

func entropy(counts []dataset.ValueCount, total int) float64 {
	var result float64
	for _, vc := range counts {
		p := float64(vc.Count) / float64(total)
		if p > 0 {
			result -= p * math.Log2(p)
		}
	}
	return result
}
