package database

import (
	"database/sql"
	"fmt"

	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/entity"
)

type presetRepo struct {
	db dbConn
}

func newPresetRepo(db dbConn) contract.PresetRepo {
	return &presetRepo{db: db}
}

func (r *presetRepo) Create(preset *entity.Preset) error {
	query := `
		INSERT INTO presets (channel_id, label, start_date, end_date, position)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		preset.ChannelID,
		preset.Label,
		preset.Start.String(),
		preset.End.String(),
		preset.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to create preset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	preset.ID = id
	return nil
}

// GetByLabel matches the label case-insensitively
func (r *presetRepo) GetByLabel(channelID int64, label string) (*entity.Preset, error) {
	query := `
		SELECT id, channel_id, label, start_date, end_date, position, created_at
		FROM presets
		WHERE channel_id = ? AND label = ? COLLATE NOCASE
	`

	preset, err := scanPreset(r.db.QueryRow(query, channelID, label))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}

	return preset, nil
}

func (r *presetRepo) ListByChannel(channelID int64) ([]*entity.Preset, error) {
	query := `
		SELECT id, channel_id, label, start_date, end_date, position, created_at
		FROM presets
		WHERE channel_id = ?
		ORDER BY position, id
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var presets []*entity.Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		presets = append(presets, preset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate presets: %w", err)
	}

	return presets, nil
}

func (r *presetRepo) Count(channelID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM presets WHERE channel_id = ?`, channelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count presets: %w", err)
	}
	return count, nil
}

func (r *presetRepo) Delete(channelID int64, label string) error {
	query := `DELETE FROM presets WHERE channel_id = ? AND label = ? COLLATE NOCASE`

	_, err := r.db.Exec(query, channelID, label)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPreset(row rowScanner) (*entity.Preset, error) {
	preset := &entity.Preset{}
	var start, end string

	err := row.Scan(
		&preset.ID,
		&preset.ChannelID,
		&preset.Label,
		&start,
		&end,
		&preset.Position,
		&preset.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if preset.Start, err = calendar.Parse(start); err != nil {
		return nil, fmt.Errorf("preset %d start: %w", preset.ID, err)
	}
	if preset.End, err = calendar.Parse(end); err != nil {
		return nil, fmt.Errorf("preset %d end: %w", preset.ID, err)
	}

	return preset, nil
}
