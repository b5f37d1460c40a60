package history

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
)

// makeEntries builds n synthetic snapshots; names are not significant
// for paging, which windows an already-ordered list.
func makeEntries(n int) []Snapshot {
	entries := make([]Snapshot, n)
	for i := range entries {
		entries[i] = Snapshot{
			Resource: ResourceSettings,
			Name:     fmt.Sprintf("20230615T1430%02d.json", n-i-1),
		}
	}
	return entries
}

func TestPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		cursor   string
		wantLen  int
		wantNext string
	}{
		{
			name:     "first page of 25",
			total:    25,
			cursor:   "",
			wantLen:  10,
			wantNext: "10",
		},
		{
			name:     "second page of 25",
			total:    25,
			cursor:   "10",
			wantLen:  10,
			wantNext: "20",
		},
		{
			name:     "final partial page of 25",
			total:    25,
			cursor:   "20",
			wantLen:  5,
			wantNext: "",
		},
		{
			name:     "exactly one page",
			total:    10,
			cursor:   "",
			wantLen:  10,
			wantNext: "",
		},
		{
			name:     "fewer than one page",
			total:    3,
			cursor:   "",
			wantLen:  3,
			wantNext: "",
		},
		{
			name:     "empty list",
			total:    0,
			cursor:   "",
			wantLen:  0,
			wantNext: "",
		},
		{
			name:     "cursor past the end",
			total:    5,
			cursor:   "50",
			wantLen:  0,
			wantNext: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, next, err := Page(makeEntries(tt.total), tt.cursor)
			if err != nil {
				t.Fatalf("Page() failed: %v", err)
			}
			if len(page) != tt.wantLen {
				t.Errorf("len(page) = %d, want %d", len(page), tt.wantLen)
			}
			if next != tt.wantNext {
				t.Errorf("next = %q, want %q", next, tt.wantNext)
			}
		})
	}
}

func TestPage_PreservesOrder(t *testing.T) {
	entries := makeEntries(25)

	page, _, err := Page(entries, "10")
	if err != nil {
		t.Fatal(err)
	}
	for i, snap := range page {
		if snap != entries[10+i] {
			t.Errorf("page[%d] = %+v, want entries[%d]", i, snap, 10+i)
		}
	}
}

func TestPage_InvalidCursor(t *testing.T) {
	for _, cursor := range []string{"abc", "-1", "1.5", "10x"} {
		_, _, err := Page(makeEntries(5), cursor)
		if !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("Page(cursor=%q) error = %v, want ErrInvalidCursor", cursor, err)
		}
	}
}
