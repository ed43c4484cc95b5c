package natsort_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/coursefaces/internal/app/system/natsort"
)

func TestSortBy_CaseInsensitive(t *testing.T) {
	names := []string{"carla", "Ben", "anna"}
	natsort.SortBy(names, func(s string) string { return s })

	want := []string{"anna", "Ben", "carla"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestSortBy_Accents(t *testing.T) {
	// é sorts with e, not after z.
	names := []string{"Zoe", "Émile", "Adam"}
	natsort.SortBy(names, func(s string) string { return s })

	want := []string{"Adam", "Émile", "Zoe"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestSortBy_EmbeddedNumbers(t *testing.T) {
	names := []string{"User 10", "User 9", "User 1"}
	natsort.SortBy(names, func(s string) string { return s })

	want := []string{"User 1", "User 9", "User 10"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestSortBy_Stable(t *testing.T) {
	type u struct {
		First string
		Last  string
	}
	users := []u{{"ana", "Young"}, {"Ana", "Brown"}, {"ana", "Adams"}}
	natsort.SortBy(users, func(x u) string { return x.First })

	// Equal keys keep their original relative order.
	want := []u{{"ana", "Young"}, {"Ana", "Brown"}, {"ana", "Adams"}}
	if !reflect.DeepEqual(users, want) {
		t.Errorf("got %v, want %v", users, want)
	}
}

func TestCompare_Adjacent(t *testing.T) {
	sorted := []string{"Ana", "ben", "Céline", "User 2", "User 11"}
	for i := 0; i < len(sorted)-1; i++ {
		if natsort.Compare(sorted[i], sorted[i+1]) > 0 {
			t.Errorf("Compare(%q, %q) > 0, want <= 0", sorted[i], sorted[i+1])
		}
	}
}
