package cache

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildRanges(t *testing.T) {
	cases := []struct {
		name    string
		numbers []int64
		want    []Range
	}{
		{"empty", nil, []Range{}},
		{"single", []int64{7}, []Range{{7, 7}}},
		{"contiguous", []int64{1, 2, 3, 4}, []Range{{1, 4}}},
		{"gap", []int64{1, 2, 4, 5}, []Range{{1, 2}, {4, 5}}},
		{"islands", []int64{0, 2, 4}, []Range{{0, 0}, {2, 2}, {4, 4}}},
		{"mixed", []int64{1, 2, 3, 7, 9, 10}, []Range{{1, 3}, {7, 7}, {9, 10}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildRanges(tc.numbers)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildRanges(%v) (-want +got):\n%s", tc.numbers, diff)
			}
		})
	}
}

func TestStatusJSONShape(t *testing.T) {
	status := buildStatus(3, []int64{1, 2, 5})

	data, err := json.Marshal(status)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"3","ranges":[{"start":1,"end":2},{"start":5,"end":5}]}`
	if string(data) != want {
		t.Errorf("JSON shape:\n got %s\nwant %s", data, want)
	}
}

func TestStatusEmptyCacheMarshalsEmptyRanges(t *testing.T) {
	data, err := json.Marshal(buildStatus(0, nil))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"version":"0","ranges":[]}`
	if string(data) != want {
		t.Errorf("JSON shape: got %s, want %s", data, want)
	}
}
