package history

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// PageSize is the number of snapshots returned per page.
const PageSize = 10

// Page windows an already-materialized entry list for incremental
// consumption. The cursor is a decimal offset encoded as text; an empty
// cursor starts at 0. The returned next cursor is offset+PageSize,
// present only while more entries remain beyond the page.
//
// Page is pure and stateless; no cursor state is retained between calls.
func Page(entries []Snapshot, cursor string) (page []Snapshot, next string, err error) {
	offset := 0
	if cursor != "" {
		offset, err = strconv.Atoi(cursor)
		if err != nil || offset < 0 {
			return nil, "", errors.Wrapf(ErrInvalidCursor, "%q", cursor)
		}
	}

	if offset >= len(entries) {
		return nil, "", nil
	}

	end := offset + PageSize
	if end > len(entries) {
		end = len(entries)
	}

	page = entries[offset:end]
	if end < len(entries) {
		next = strconv.Itoa(offset + PageSize)
	}
	return page, next, nil
}
