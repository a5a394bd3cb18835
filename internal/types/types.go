// internal/types/types.go
package types

// EntityID — идентификатор сущности (танка). Пули держат его как
// невладеющую ссылку на хозяина: если танк уже убран, уведомление
// о смерти пули просто теряется.
type EntityID uint64
