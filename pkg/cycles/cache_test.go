package cycles

import "testing"

func TestMemoCacheSearchRoundTrip(t *testing.T) {
	mc := NewMemoCache()
	key := searchKey([]int{1, 2}, []bool{false, true})

	if _, ok := mc.getSearch(key); ok {
		t.Fatalf("expected cache miss before put")
	}

	mc.putSearch(key, []Cycle{{}})
	got, ok := mc.getSearch(key)
	if !ok || len(got) != 1 {
		t.Errorf("expected cached search result to round-trip")
	}
}

func TestSearchKeyDistinguishesShareVectors(t *testing.T) {
	a := searchKey([]int{1, 2}, []bool{false, true})
	b := searchKey([]int{1, 2}, []bool{true, false})
	if a == b {
		t.Errorf("expected different share vectors to produce different keys")
	}
}

func TestMemoCachePartitionsRoundTrip(t *testing.T) {
	mc := NewMemoCache()
	if _, ok := mc.getPartitions(5); ok {
		t.Fatalf("expected cache miss before put")
	}
	mc.putPartitions(5, [][]int{{5}, {1, 4}})
	got, ok := mc.getPartitions(5)
	if !ok || len(got) != 2 {
		t.Errorf("expected cached partitions to round-trip")
	}
}
