package id3

import (
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
)

func TestBuysComputerGains(t *testing.T) {
	table := dataset.BuysComputer().Table
	assert.InDelta(t, 0.940, Entropy(table), 1e-3)
	assert.InDelta(t, 0.694, ConditionalEntropy(table, 0), 1e-3)
	gains := Gains(table, 4)
	assert.InDelta(t, 0.247, gains[0], 1e-3)
	assert.InDelta(t, 0.029, gains[1], 1e-3)
	assert.InDelta(t, 0.152, gains[2], 1e-3)
	assert.InDelta(t, 0.048, gains[3], 1e-3)
	for i, g := range gains {
		assert.InDelta(t, InformationGain(table, i), g, 1e-12)
	}
}

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(nil))
	assert.Equal(t, 0.0, Entropy(dataset.Table{{"yes"}, {"yes"}}))
	assert.InDelta(t, 1.0, Entropy(dataset.Table{{"yes"}, {"no"}}), 1e-12)
	assert.InDelta(t, 2.0, Entropy(dataset.Table{{"a"}, {"b"}, {"c"}, {"d"}}), 1e-12)
}

func TestSelectAttribute(t *testing.T) {
	tests := []struct {
		name  string
		table dataset.Table
		want  int
	}{
		{
			name: "highest gain wins",
			table: dataset.Table{
				{"x", "p", "yes"},
				{"x", "q", "no"},
				{"y", "p", "yes"},
				{"y", "q", "no"},
			},
			want: 1,
		},
		{
			name: "ties go to the earliest candidate",
			table: dataset.Table{
				{"p", "p", "yes"},
				{"q", "q", "no"},
				{"p", "p", "yes"},
			},
			want: 0,
		},
		{
			name: "no positive gain defaults to the first candidate",
			table: dataset.Table{
				{"x", "p", "yes"},
				{"x", "q", "no"},
				{"y", "p", "no"},
				{"y", "q", "yes"},
			},
			want: 0,
		},
		{
			name: "pure partition defaults to the first candidate",
			table: dataset.Table{
				{"x", "p", "yes"},
				{"y", "q", "yes"},
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectAttribute(tt.table, []string{"a", "b"}))
		})
	}
}

func TestSelectIndexStartsFromZeroGain(t *testing.T) {
	assert.Equal(t, 0, selectIndex([]float64{-0.5, -0.1, 0}))
	assert.Equal(t, 2, selectIndex([]float64{0, 0, 0.3, 0.3}))
	assert.Equal(t, 0, selectIndex(nil))
}

func TestMajorityClass(t *testing.T) {
	assert.Equal(t, "no", MajorityClass(dataset.Table{{"no"}, {"yes"}, {"yes"}, {"no"}}))
	assert.Equal(t, "yes", MajorityClass(dataset.Table{{"a", "no"}, {"b", "yes"}, {"c", "yes"}}))
	assert.Equal(t, "yes", MajorityClass(dataset.BuysComputer().Table))
	assert.Equal(t, "", MajorityClass(nil))
}
