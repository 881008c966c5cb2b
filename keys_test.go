package approute_test

import (
	"testing"

	"github.com/approute/approute"
	"github.com/stretchr/testify/require"
)

func TestByKeyUniqueSort(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    []approute.Key
		expected []approute.Key
	}{
		{"Nil", nil, approute.ByKey{}},
		{"Zero-Value", []approute.Key{}, []approute.Key{}},
		{"Many-Zero", make([]approute.Key, 99), []approute.Key{}},
		{"Sorted", []approute.Key{"a", "c", "e", "d"}, []approute.Key{"a", "c", "d", "e"}},
		{"Uniqued", []approute.Key{"a", "a", "a"}, []approute.Key{"a"}},
		{"Filtered-Zero-Value", []approute.Key{"", "a", "", "b", ""}, []approute.Key{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual := approute.ByKey(tc.input).UniqueSort()
			require.Equal(t, tc.expected, []approute.Key(actual))
		})
	}
}
