package ports

import "context"

// EmbeddingNotifier : fire-and-forget события для пересчета эмбеддингов
// вакансий во внешнем векторном сервисе.
type EmbeddingNotifier interface {
	JobUpserted(ctx context.Context, jobUUID string) error
	JobDeleted(ctx context.Context, jobUUID string) error
	Close() error
}
