// internal/types/types.go
package types

// EntityID - уникальный идентификатор сущности в ECS.
// Ноль никогда не выдаётся и означает «нет сущности».
type EntityID uint64
