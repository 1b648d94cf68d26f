package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEachFrame прогоняет fn по всем кадрам результата через пул воркеров.
// Кадры независимы, порядок вызовов не гарантируется; первая ошибка
// останавливает запуск новых кадров и возвращается наружу.
func (res *Result) ForEachFrame(ctx context.Context, workers int, fn func(frame int) error) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for frame := 0; frame < res.TotalFrames; frame++ {
		if ctx.Err() != nil {
			break
		}
		frame := frame
		g.Go(func() error {
			return fn(frame)
		})
	}
	return g.Wait()
}
