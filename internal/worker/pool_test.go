package worker

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessKeepsInputOrder(t *testing.T) {
	items := []int{5, 3, 9, 1, 7, 2}

	out, err := Process(items, 3, func(job Job[int]) (string, error) {
		return strconv.Itoa(job.Data), nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "3", "9", "1", "7", "2"}, out)
}

func TestProcessReportsFirstError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Process([]int{1, 2, 3}, 2, func(job Job[int]) (int, error) {
		if job.Data == 2 {
			return 0, boom
		}
		return job.Data, nil
	}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestProcessProgressCountsEveryJob(t *testing.T) {
	var calls atomic.Int32

	_, err := Process([]int{1, 2, 3, 4}, 8, func(job Job[int]) (int, error) {
		return job.Data, nil
	}, func(completed, total int) {
		calls.Add(1)
		assert.Equal(t, 4, total)
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
}

func TestProcessEmptyInput(t *testing.T) {
	out, err := Process(nil, 4, func(job Job[int]) (int, error) { return 0, nil }, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}
