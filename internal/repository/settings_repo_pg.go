package repository

import (
	"context"

	"github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository interface {
	GetRates(ctx context.Context) (pricing.RateConfig, error)
	UpdateRates(ctx context.Context, rates pricing.RateConfig) error
}

// PGSettingsRepository reads rate settings from the admin-managed settings
// table. Absent keys stay nil so pricing falls back to its defaults.
type PGSettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) SettingsRepository {
	return &PGSettingsRepository{db: db}
}

const (
	settingTaxRate        = "tax_rate"
	settingServiceFeeRate = "service_fee_rate"
)

func (r *PGSettingsRepository) GetRates(ctx context.Context) (pricing.RateConfig, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM settings WHERE key = ANY($1)`, []string{settingTaxRate, settingServiceFeeRate})
	if err != nil {
		return pricing.RateConfig{}, err
	}
	defer rows.Close()

	var cfg pricing.RateConfig
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return pricing.RateConfig{}, err
		}
		v := value
		switch key {
		case settingTaxRate:
			cfg.TaxRate = &v
		case settingServiceFeeRate:
			cfg.ServiceFeeRate = &v
		}
	}
	return cfg, rows.Err()
}

func (r *PGSettingsRepository) UpdateRates(ctx context.Context, rates pricing.RateConfig) error {
	upsert := func(key string, value *float64) error {
		if value == nil {
			_, err := r.db.Exec(ctx, `DELETE FROM settings WHERE key=$1`, key)
			return err
		}
		_, err := r.db.Exec(ctx, `INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=now()`, key, *value)
		return err
	}
	if err := upsert(settingTaxRate, rates.TaxRate); err != nil {
		return err
	}
	return upsert(settingServiceFeeRate, rates.ServiceFeeRate)
}

var _ SettingsRepository = (*PGSettingsRepository)(nil)
