// Copyright 2025-2026 The fuzz_exporter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tailer

import (
	"container/list"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// implements Tailer
type bufferedTailer struct {
	out  chan *Line
	orig Tailer
}

func (b *bufferedTailer) Lines() chan *Line {
	return b.out
}

func (b *bufferedTailer) Errors() chan Error {
	return b.orig.Errors()
}

func (b *bufferedTailer) Close() {
	b.orig.Close()
}

// BufferedTailer wraps a tailer so that its lines channel is consumed
// quickly: the wrapped tailer keeps reading from its input while already
// read lines wait in an unbounded in-memory buffer. If lines are constantly
// produced faster than they are consumed we eventually run out of memory,
// which is why the peak buffer load per second is reported through the
// optional observer.
func BufferedTailer(orig Tailer, load prometheus.Observer) Tailer {
	buffer := list.New()
	bufferSync := sync.NewCond(&sync.Mutex{}) // coordinate producer and consumer
	out := make(chan *Line)

	// producer
	go func() {
		peakLoad := 0
		tick := time.NewTicker(1 * time.Second)
		defer tick.Stop()
		for {
			select {
			case line, ok := <-orig.Lines():
				bufferSync.L.Lock()
				if ok {
					if buffer.Len() > peakLoad {
						peakLoad = buffer.Len()
					}
					buffer.PushBack(line)
				} else {
					buffer = nil // make the consumer quit
				}
				bufferSync.Signal()
				bufferSync.L.Unlock()
				if !ok {
					return
				}
			case <-tick.C:
				if load != nil {
					load.Observe(float64(peakLoad))
				}
				peakLoad = 0
			}
		}
	}()

	// consumer
	go func() {
		for {
			bufferSync.L.Lock()
			for buffer != nil && buffer.Len() == 0 {
				bufferSync.Wait()
			}
			if buffer == nil {
				bufferSync.L.Unlock()
				close(out)
				return
			}
			first := buffer.Front()
			buffer.Remove(first)
			bufferSync.L.Unlock()
			out <- first.Value.(*Line)
		}
	}()
	return &bufferedTailer{
		out:  out,
		orig: orig,
	}
}
