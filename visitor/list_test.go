package visitor

import (
	"container/list"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestListVisitorOf(t *testing.T) {
	aList := list.New()
	aList.PushBack("a")
	aList.PushBack(2)
	aList.PushFront(true)

	actual, err := Collect(ListVisitorOf(aList))
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{true, "a", 2}, actual)

	empty, err := Collect(ListVisitorOf(list.New()))
	assert.Nil(t, err)
	assert.Empty(t, empty)
}

func TestListVisitorOf_Error(t *testing.T) {
	aList := list.New()
	aList.PushBack(1)
	aList.PushBack(2)
	expect := errors.New("stop")
	var keys []int
	err := ListVisitorOf(aList)(func(key int, element any) (bool, error) {
		keys = append(keys, key)
		if key == 1 {
			return false, expect
		}
		return true, nil
	})
	assert.ErrorIs(t, err, expect)
	assert.EqualValues(t, []int{0, 1}, keys)
}
