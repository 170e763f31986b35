// Package debounce реализует отложенный вызов функции: при серии вызовов
// выполняется только последний, после периода тишины. Используется живым
// поиском адреса, чтобы не отправлять запрос на каждое нажатие клавиши.
package debounce

import (
	"sync"
	"time"
)

// Debouncer откладывает выполнение функции на заданный интервал.
// Каждый новый вызов Do сбрасывает таймер; выполняется только функция
// из последнего вызова.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New создаёт Debouncer с заданным интервалом тишины.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Do планирует выполнение fn после периода тишины.
// Ранее запланированная функция отменяется.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop отменяет запланированное выполнение, если оно есть.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
