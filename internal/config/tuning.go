package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tuning - игровые параметры, которые можно переопределить из JSON-файла.
// Поля, отсутствующие в файле, сохраняют значения по умолчанию.
type Tuning struct {
	InitialLives      int     `json:"initial_lives"`
	ShootRate         float64 `json:"shoot_rate"`          // Интервал между выстрелами, сек
	TwoShootTime      float64 `json:"two_shoot_time"`      // Длительность двойного выстрела, сек
	InvincibleTime    float64 `json:"invincible_time"`     // Неуязвимость после урона, сек
	RewardSpawnRate   float64 `json:"reward_spawn_rate"`   // Интервал появления бонусов, сек
	BossScoreStep     int     `json:"boss_score_step"`     // Порог очков для босса
	HitDuration       float64 `json:"hit_duration"`        // Анимация попадания, сек
	DeathDuration     float64 `json:"death_duration"`      // Анимация смерти, сек
	DoubleTapInterval float64 `json:"double_tap_interval"` // Окно двойного тапа, сек
	BombCooldown      float64 `json:"bomb_cooldown"`       // Перезарядка бомбы, сек
}

// DefaultTuning возвращает значения по умолчанию.
func DefaultTuning() Tuning {
	return Tuning{
		InitialLives:      3,
		ShootRate:         0.5,
		TwoShootTime:      5,
		InvincibleTime:    1,
		RewardSpawnRate:   3,
		BossScoreStep:     10000,
		HitDuration:       0.25,
		DeathDuration:     0.5,
		DoubleTapInterval: 0.2,
		BombCooldown:      1,
	}
}

// LoadTuning читает JSON поверх значений по умолчанию.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate проверяет, что параметры имеют смысл.
func (t Tuning) Validate() error {
	var errs []error
	if t.InitialLives <= 0 {
		errs = append(errs, fmt.Errorf("initial_lives must be positive, got %d", t.InitialLives))
	}
	if t.ShootRate <= 0 {
		errs = append(errs, fmt.Errorf("shoot_rate must be positive, got %v", t.ShootRate))
	}
	if t.TwoShootTime < 0 {
		errs = append(errs, fmt.Errorf("two_shoot_time must not be negative, got %v", t.TwoShootTime))
	}
	if t.InvincibleTime < 0 {
		errs = append(errs, fmt.Errorf("invincible_time must not be negative, got %v", t.InvincibleTime))
	}
	if t.RewardSpawnRate <= 0 {
		errs = append(errs, fmt.Errorf("reward_spawn_rate must be positive, got %v", t.RewardSpawnRate))
	}
	if t.BossScoreStep <= 0 {
		errs = append(errs, fmt.Errorf("boss_score_step must be positive, got %d", t.BossScoreStep))
	}
	if t.HitDuration <= 0 || t.DeathDuration <= 0 {
		errs = append(errs, errors.New("hit_duration and death_duration must be positive"))
	}
	if t.DoubleTapInterval <= 0 {
		errs = append(errs, fmt.Errorf("double_tap_interval must be positive, got %v", t.DoubleTapInterval))
	}
	if t.BombCooldown < 0 {
		errs = append(errs, fmt.Errorf("bomb_cooldown must not be negative, got %v", t.BombCooldown))
	}
	return errors.Join(errs...)
}
