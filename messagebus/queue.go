// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"reflect"
	"strconv"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Message - message to put into a queue
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a 1:1 queue
type Queue struct {
	c    chan Message
	size int
}

// BroadcastQueue - a 1:M queue
//
// every subscriber attached by Chan gets its own channel and a send
// fans out to all of them; a message with no subscribers is dropped
type BroadcastQueue struct {
	sync.Mutex
	out   []chan Message
	size  int
	cache *cache.Cache
}

// busses - all available message queues
type busses struct {
	Broadcast *BroadcastQueue `size:"1000"` // to broadcast committed records
	TestQueue *Queue          `size:"50"`   // for testing use
}

// Bus - global access to all of the queues
var Bus busses

// lifetime of the broadcast de-duplication records
const (
	cacheTimeout    = 1 * time.Minute
	cacheExpiration = 2 * time.Minute
)

// append announcements are de-duplicated, they repeat their bytes
// only when they really are duplicates; an update announcement keeps
// the same bytes when the same entry is replaced again, so it must
// never be suppressed
var cacheableCommand = map[string]struct{}{
	"temperature": {},
	"key":         {},
}

// create all the queues
func init() {

	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		queueSize, err := strconv.Atoi(sizeTag)
		if nil != err || queueSize < 1 {
			panic("queue: " + fieldInfo.Name + " has invalid size: \"" + sizeTag + "\"")
		}

		switch fieldInfo.Type {

		case reflect.TypeOf((*Queue)(nil)):
			q := &Queue{
				c:    make(chan Message, queueSize),
				size: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		case reflect.TypeOf((*BroadcastQueue)(nil)):
			q := &BroadcastQueue{
				out:   make([]chan Message, 0, 10),
				size:  queueSize,
				cache: cache.New(cacheTimeout, cacheExpiration),
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		default:
			panic("queue: " + fieldInfo.Name + " has invalid type")
		}
	}
}

// Send - send a message to a 1:1 queue
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - drain any unread messages
func (queue *Queue) Release() {
drain:
	for {
		select {
		case <-queue.c:
		default:
			break drain
		}
	}
}

// Send - fan a message out to all attached subscribers
//
// a cacheable message already sent recently is suppressed
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	message := Message{
		Command:    command,
		Parameters: parameters,
	}

	if _, ok := cacheableCommand[command]; ok {
		key := cacheKey(message)
		if _, found := queue.cache.Get(key); found {
			return
		}
		queue.cache.Set(key, struct{}{}, cache.DefaultExpiration)
	}

	queue.Lock()
	defer queue.Unlock()

	for _, out := range queue.out {
		out <- message
	}
}

// Chan - attach a new subscriber channel to a broadcast queue
//
// a size of zero or less selects the default queue size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queue.size
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - detach and close all subscriber channels
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, out := range queue.out {
		close(out)
	}
	queue.out = nil
}

// DropCache - remove a message from the de-duplication cache so an
// identical send goes out again
func DropCache(message Message) {
	Bus.Broadcast.cache.Delete(cacheKey(message))
}

func cacheKey(message Message) string {
	key := message.Command
	for _, parameter := range message.Parameters {
		key += string(parameter)
	}
	return key
}
