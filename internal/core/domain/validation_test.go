package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningLog(t *testing.T) {
	log := NewWarningLog()
	assert.Empty(t, log.List())

	log.Append(Warning{Message: "first"})
	log.Append(Warning{Message: "second", Tag: "245"}, Warning{Message: "third", Subfield: "a"})

	assert.Equal(t, 3, log.Len())
	list := log.List()
	assert.Equal(t, "first", list[0].Message)
	assert.Equal(t, "third", list[2].Message)

	list[0].Message = "changed"
	assert.Equal(t, "first", log.List()[0].Message, "List returns a copy")

	log.Clear()
	assert.Equal(t, 0, log.Len())
	assert.Empty(t, log.List())
}

func TestWarningLog_Drain(t *testing.T) {
	log := NewWarningLog()
	assert.Empty(t, log.Drain())

	log.Append(Warning{Message: "first"}, Warning{Message: "second"})
	drained := log.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, log.Len())

	log.Append(Warning{Message: "third"})
	assert.Len(t, drained, 2, "later appends do not touch drained warnings")
	assert.Equal(t, "third", log.Drain()[0].Message)
}

func TestWarningLog_DrainConcurrentLosesNothing(t *testing.T) {
	log := NewWarningLog()
	const writers, perWriter = 8, 200

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				log.Append(Warning{Message: "w"})
			}
		}()
	}

	done := make(chan struct{})
	drained := make(chan int)
	go func() {
		total := 0
		for {
			select {
			case <-done:
				drained <- total
				return
			default:
				total += len(log.Drain())
			}
		}
	}()

	wg.Wait()
	close(done)
	total := <-drained + len(log.Drain())
	assert.Equal(t, writers*perWriter, total)
}

func TestWarningLog_Concurrent(t *testing.T) {
	log := NewWarningLog()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Append(Warning{Message: "w"})
			_ = log.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, log.Len())
}

func TestField_IsLast(t *testing.T) {
	f := Field{Subfields: []Subfield{{Code: "a"}, {Code: "b"}}}

	assert.False(t, f.IsLast(0))
	assert.True(t, f.IsLast(1))
	assert.False(t, f.IsLast(2))
}
