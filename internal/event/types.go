// internal/event/types.go
package event

const (
	BulletFired      EventType = "BulletFired"      // Танк выстрелил
	BrickDestroyed   EventType = "BrickDestroyed"   // Кирпич разбит пулей
	BlockImpact      EventType = "BlockImpact"      // Пуля ударилась о неразрушаемый тайл
	BaseDestroyed    EventType = "BaseDestroyed"    // База уничтожена — немедленный проигрыш
	TankDestroyed    EventType = "TankDestroyed"    // Вражеский танк уничтожен
	PlayerHit        EventType = "PlayerHit"        // Игрок получил попадание
	BulletsCancelled EventType = "BulletsCancelled" // Две встречные пули погасили друг друга
	EnemySpawned     EventType = "EnemySpawned"     // Заспаунился новый враг
	PowerUpSpawned   EventType = "PowerUpSpawned"   // На поле появился бонус
	PowerUpCollected EventType = "PowerUpCollected" // Игрок подобрал бонус
	StageCleared     EventType = "StageCleared"     // Этап пройден
	GameOver         EventType = "GameOver"         // Конец игры (Data — причина)
)
