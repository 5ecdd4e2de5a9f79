package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countingFetch(total int64, calls *int) FetchPageFunc {
	return func(offset, limit int64) ([]interface{}, int64, error) {
		*calls++

		remaining := total - offset
		if remaining < 0 {
			remaining = 0
		}
		n := limit
		if remaining < n {
			n = remaining
		}

		rows := make([]interface{}, n)
		for i := range rows {
			rows[i] = offset + int64(i)
		}
		return rows, total, nil
	}
}

func TestPagerLoadMore(t *testing.T) {
	calls := 0
	p := NewPager(countingFetch(120, &calls), 50)

	assert.True(t, p.HasMore(), "fresh pager must report more")

	added, err := p.LoadMore()
	assert.Nil(t, err, "wrong LoadMore")
	assert.Equal(t, 50, added, "wrong first page size")
	assert.True(t, p.HasMore(), "more rows expected after first page")

	added, err = p.LoadMore()
	assert.Nil(t, err, "wrong LoadMore")
	assert.Equal(t, 50, added, "wrong second page size")
	assert.True(t, p.HasMore(), "more rows expected after second page")

	added, err = p.LoadMore()
	assert.Nil(t, err, "wrong LoadMore")
	assert.Equal(t, 20, added, "wrong last page size")
	assert.False(t, p.HasMore(), "no rows expected after last page")
	assert.Equal(t, 3, calls, "wrong fetch count")

	// exhausted pager must not hit the server again
	added, err = p.LoadMore()
	assert.Nil(t, err, "wrong LoadMore")
	assert.Equal(t, 0, added, "wrong added count when exhausted")
	assert.Equal(t, 3, calls, "exhausted pager fetched again")

	assert.Len(t, p.Rows(), 120, "wrong accumulated row count")
	assert.Equal(t, int64(120), p.Total(), "wrong total")
}

func TestPagerAccumulationIsMonotonic(t *testing.T) {
	calls := 0
	p := NewPager(countingFetch(30, &calls), 10)

	var previous int
	for p.HasMore() {
		_, err := p.LoadMore()
		assert.Nil(t, err, "wrong LoadMore")
		assert.True(t, len(p.Rows()) >= previous, "rows must never shrink")
		previous = len(p.Rows())
	}

	for i, row := range p.Rows() {
		assert.Equal(t, int64(i), row, "row order broken at %d", i)
	}
}

func TestPagerFetchError(t *testing.T) {
	p := NewPager(func(offset, limit int64) ([]interface{}, int64, error) {
		return nil, 0, fmt.Errorf("boom")
	}, 10)

	added, err := p.LoadMore()
	assert.NotNil(t, err, "expected fetch error")
	assert.Equal(t, 0, added, "wrong added count on error")
	assert.True(t, p.HasMore(), "failed fetch must remain retryable")
	assert.Empty(t, p.Rows(), "no rows expected on error")
}
