package main

import (
	"errors"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlinked/lib/list"
	"github.com/benz9527/xlinked/xlog"
)

type printable interface {
	PrintList(w io.Writer) error
	String() string
}

// demo prints every list state to out and logs the same rendering.
type demo struct {
	logger xlog.XLogger
	out    io.Writer
	err    error
}

func (d *demo) print(scenario string, l printable, fields ...zap.Field) {
	d.err = multierr.Append(d.err, l.PrintList(d.out))
	d.logger.Info(scenario, append([]zap.Field{zap.String("list", l.String())}, fields...)...)
}

func (d *demo) singly() {
	cycleNode := list.NewSinglyNode[int](5)
	l := list.NewSinglyLinkedListWith[int](1)
	l.Insert(2)
	l.Insert(3)
	l.InsertNode(cycleNode)
	d.print("singly inserted", l)

	if err := l.Reverse(); err != nil {
		d.err = multierr.Append(d.err, err)
		return
	}
	d.print("singly reversed", l)

	if mid, ok := l.FindMiddleNode(); ok {
		d.logger.Info("singly middle", zap.Int("value", mid.Value))
	}
	d.logger.Info("singly search",
		zap.Bool("contains 3", l.Search(3)),
		zap.Bool("contains 4", l.Search(4)),
	)

	if v, ok := l.Remove(); ok {
		d.print("singly removed head", l, zap.Int("removed", v))
	}

	// 5 is the tail now, linking it in front of the head closes the chain.
	l.InsertNode(cycleNode)
	d.err = multierr.Append(d.err, l.PrintList(d.out))
	if _, err := l.Values(); errors.Is(err, list.ErrCycleDetected) {
		d.logger.Warn("singly list is cyclic",
			zap.Bool("hasCycle", l.HasCycle()),
			zap.Error(err),
		)
	}
}

func (d *demo) doubly() {
	l := list.NewDoublyLinkedListWith[int](1)
	l.InsertToTail(2)
	l.InsertToTail(3)
	l.InsertToHead(0)
	d.print("doubly inserted", l, zap.Int64("len", l.Len()))

	for _, fromHead := range []bool{true, true, false, false, false} {
		var (
			v  int
			ok bool
		)
		scenario := "doubly removed tail"
		if fromHead {
			scenario = "doubly removed head"
			v, ok = l.RemoveFromHead()
		} else {
			v, ok = l.RemoveFromTail()
		}
		if !ok {
			d.logger.Info("doubly list is empty", zap.Int64("len", l.Len()))
			continue
		}
		d.print(scenario, l, zap.Int("removed", v))
	}
}

func (d *demo) merge() {
	merged := list.MergeSorted[int](
		list.NewSinglyLinkedListFromValues[int](1, 3, 5),
		list.NewSinglyLinkedListFromValues[int](2, 4, 6),
	)
	d.print("merged", merged)

	merged = list.MergeSorted[int](
		list.NewSinglyLinkedList[int](),
		list.NewSinglyLinkedListFromValues[int](1, 2),
	)
	d.print("merged with empty", merged)
}

func runDemo(logger xlog.XLogger, out io.Writer) error {
	d := &demo{logger: logger, out: out}
	d.singly()
	d.doubly()
	d.merge()
	return d.err
}
