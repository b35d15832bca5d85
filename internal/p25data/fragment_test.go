package p25data

import "testing"

func TestFragments(t *testing.T) {
	const packetBytes = 2

	frags := Fragments(packetBytes, []byte{1})
	want := [][]byte{{1}}
	assertFragmentsEqual(t, frags, want)

	frags = Fragments(packetBytes, []byte{1, 2, 3, 4})
	want = [][]byte{{1, 2}, {3, 4}}
	assertFragmentsEqual(t, frags, want)

	frags = Fragments(packetBytes, []byte{1, 2, 3, 4, 5})
	want = [][]byte{{1, 2}, {3, 4}, {5}}
	assertFragmentsEqual(t, frags, want)
}

func assertFragmentsEqual(t *testing.T, got, want [][]byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if string(got[i]) != string(want[i]) {
			t.Fatalf("fragment %d = %v, want %v", i, got[i], want[i])
		}
	}
}
