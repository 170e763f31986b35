package address

import (
	"context"
	"sync"
	"time"

	"github.com/memora/intake/internal/lib/debounce"
)

// DefaultDebounceInterval — период тишины живого поиска.
const DefaultDebounceInterval = 300 * time.Millisecond

// LiveSearcher выполняет живой поиск адреса с дебаунсом: при серии вызовов
// Query отправляется не более одного запроса за период тишины, устаревший
// незавершённый запрос отменяется. Ошибки поиска молча очищают результаты.
type LiveSearcher struct {
	picker    Picker
	deb       *debounce.Debouncer
	onResults func([]Candidate)

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewLiveSearcher создаёт LiveSearcher. onResults вызывается с кандидатами
// последнего завершившегося поиска либо с nil при неудаче или коротком запросе.
func NewLiveSearcher(picker Picker, interval time.Duration, onResults func([]Candidate)) *LiveSearcher {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &LiveSearcher{
		picker:    picker,
		deb:       debounce.New(interval),
		onResults: onResults,
	}
}

// Query планирует поиск по новой строке запроса. Предыдущий запланированный
// или незавершённый поиск отменяется.
func (l *LiveSearcher) Query(ctx context.Context, query string) {
	l.deb.Do(func() {
		l.run(ctx, query)
	})
}

func (l *LiveSearcher) run(ctx context.Context, query string) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	searchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	if len([]rune(query)) < 2 {
		l.onResults(nil)
		return
	}

	candidates, err := l.picker.Candidates(searchCtx, query)
	if err != nil {
		l.onResults(nil)
		return
	}
	l.onResults(candidates)
}

// Close отменяет запланированный и незавершённый поиск.
func (l *LiveSearcher) Close() {
	l.deb.Stop()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
