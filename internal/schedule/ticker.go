package schedule

import (
	"context"
	"time"
)

// DefaultIndicatorInterval период пересчета индикатора текущего времени
const DefaultIndicatorInterval = 30 * time.Second

// Tick вызывает fn сразу и затем каждые interval, пока контекст не отменен
// или fn не вернет ошибку. Используется для периодического пересчета
// индикатора текущего времени; отмена контекста гарантирует, что таймер
// не переживет свой экран.
func Tick(ctx context.Context, interval time.Duration, fn func(now time.Time) error) error {
	if err := fn(time.Now()); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := fn(now); err != nil {
				return err
			}
		}
	}
}
