package boardextract

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestSelectBoard(t *testing.T) {
	boards := []Candidate{
		{X: 0, Y: 0, Width: 40, Height: 40},
		{X: 100, Y: 0, Width: 96, Height: 96},
		{X: 0, Y: 100, Width: 64, Height: 64},
	}

	c, ok, err := SelectBoard(boards, SelectLargest)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, c, test.ShouldResemble, boards[1])

	c, ok, err = SelectBoard(boards, SelectSmallest)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, c, test.ShouldResemble, boards[0])

	// input order is untouched
	test.That(t, boards[0].Width, test.ShouldEqual, 40)
}

func TestSelectBoardEmpty(t *testing.T) {
	_, ok, err := SelectBoard(nil, SelectLargest)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestSelectBoardBadMode(t *testing.T) {
	_, _, err := SelectBoard([]Candidate{{Width: 1, Height: 1}}, SelectMode(7))
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)

	_, err = ParseSelectMode("biggest")
	test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)

	m, err := ParseSelectMode(" Smallest ")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldEqual, SelectSmallest)

	m, err = ParseSelectMode("")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldEqual, SelectLargest)
}
